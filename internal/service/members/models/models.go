package models

import (
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// Человеко-читаемый статус: Pending просит оплатить бронирование
const pendingStatusText = "Pending. Please Pay to Confirm Booking"

// RegisterMemberRequest запрос на регистрацию участника
type RegisterMemberRequest struct {
	CitizenID  string `json:"citizenId"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Membership string `json:"membership"` // Monthly | Annual | Student
}

// MemberResponse ответ с данными участника
type MemberResponse struct {
	ID         string `json:"id"`
	CitizenID  string `json:"citizenId"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Membership string `json:"membership"`
}

// ReserveLockerRequest запрос на бронирование шкафчика
type ReserveLockerRequest struct {
	MemberID  string `json:"memberId"`
	RoomID    string `json:"roomId"`
	Kind      string `json:"kind"` // Normal | VIP
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// TrainingBookingView бронирование занятия глазами участника
type TrainingBookingView struct {
	ScheduleID string `json:"scheduleId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Status     string `json:"status"`
	// QueuePosition заполняется только для waitlist-бронирований:
	// сколько ожидающих в очереди перед этим
	QueuePosition *int `json:"queuePosition,omitempty"`
	// Notification присутствует, когда занятие целиком отменено
	Notification string `json:"notification,omitempty"`
}

// LockerBookingView бронирование шкафчика глазами участника
type LockerBookingView struct {
	LockerID  string `json:"lockerId"`
	Kind      string `json:"kind"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// MemberBookingsResponse обе корзины бронирований участника
// (порядок — порядок создания)
type MemberBookingsResponse struct {
	Training []TrainingBookingView `json:"training"`
	Locker   []LockerBookingView   `json:"locker"`
}

// TransactionView платежная транзакция участника
type TransactionView struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Timestamp string  `json:"timestamp"`
}

// FromDomainMember конвертирует участника в ответ
func FromDomainMember(m *domain.Member) *MemberResponse {
	return &MemberResponse{
		ID:         m.ID,
		CitizenID:  m.CitizenID,
		Name:       m.Name,
		Age:        m.Age,
		Membership: string(m.Membership),
	}
}

// RenderStatus возвращает статус бронирования для показа участнику
func RenderStatus(status domain.BookingStatus) string {
	if status == domain.StatusPending {
		return pendingStatusText
	}
	return string(status)
}

// FromDomainTrainingBooking конвертирует бронирование занятия в view
func FromDomainTrainingBooking(b *domain.TrainingBooking) TrainingBookingView {
	s := b.Schedule
	view := TrainingBookingView{
		ScheduleID: s.ID,
		Date:       s.Window.Date.Format(domain.DateFormat),
		StartTime:  s.Window.Start.String(),
		EndTime:    s.Window.End.String(),
		Status:     RenderStatus(b.Status()),
	}
	if b.Status() == domain.StatusWaitlist {
		pos := s.QueuePosition(b)
		view.QueuePosition = &pos
	}
	if s.Status() == domain.ScheduleCancelled {
		view.Notification = fmt.Sprintf("[schedule id: %s] Has been cancelled", s.ID)
	}
	return view
}

// FromDomainLockerBooking конвертирует бронирование шкафчика в view
func FromDomainLockerBooking(b *domain.LockerBooking) LockerBookingView {
	return LockerBookingView{
		LockerID:  b.Locker.ID,
		Kind:      string(b.Locker.Kind),
		Date:      b.Start.Format(domain.DateFormat),
		StartTime: b.Start.Format(domain.TimeFormat),
		EndTime:   b.End.Format(domain.TimeFormat),
		Status:    RenderStatus(b.Status()),
	}
}

// FromDomainBookings собирает обе корзины бронирований участника
func FromDomainBookings(m *domain.Member) *MemberBookingsResponse {
	resp := &MemberBookingsResponse{
		Training: make([]TrainingBookingView, 0),
		Locker:   make([]LockerBookingView, 0),
	}
	for _, b := range m.TrainingBookings() {
		resp.Training = append(resp.Training, FromDomainTrainingBooking(b))
	}
	for _, b := range m.LockerBookings() {
		resp.Locker = append(resp.Locker, FromDomainLockerBooking(b))
	}
	return resp
}
