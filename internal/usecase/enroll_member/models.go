package enroll_member

// Request модель запроса на запись участника на занятие
type Request struct {
	CitizenID  string // Citizen ID участника
	ScheduleID string // ID занятия (например, "CL-1-001")
}

// Response модель ответа с результатом записи
type Response struct {
	MemberID   string // ID участника
	ScheduleID string // ID занятия
	Status     string // Статус бронирования для показа участнику
	// QueuePosition заполняется только для waitlist-бронирований:
	// сколько ожидающих в очереди перед этим
	QueuePosition *int
}
