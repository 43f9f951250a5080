package enroll_member

import (
	enrollMember "github.com/m04kA/SMC-GymService/internal/usecase/enroll_member"
)

// EnrollRequest HTTP запрос на запись на занятие
type EnrollRequest struct {
	CitizenID  string `json:"citizenId"`
	ScheduleID string `json:"scheduleId"`
}

// EnrollResponse HTTP ответ с результатом записи
type EnrollResponse struct {
	MemberID      string `json:"memberId"`
	ScheduleID    string `json:"scheduleId"`
	Status        string `json:"status"`
	QueuePosition *int   `json:"queuePosition,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EnrollRequest) ToUseCaseRequest() *enrollMember.Request {
	return &enrollMember.Request{
		CitizenID:  r.CitizenID,
		ScheduleID: r.ScheduleID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *enrollMember.Response) *EnrollResponse {
	return &EnrollResponse{
		MemberID:      resp.MemberID,
		ScheduleID:    resp.ScheduleID,
		Status:        resp.Status,
		QueuePosition: resp.QueuePosition,
	}
}
