package create_schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	createSchedule "github.com/m04kA/SMC-GymService/internal/usecase/create_schedule"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

// RepeatBlock параметры повторяющегося расписания
type RepeatBlock struct {
	IntervalDays int `json:"intervalDays"`
	Occurrences  int `json:"occurrences"`
}

// CreateScheduleRequest HTTP запрос на создание занятия
type CreateScheduleRequest struct {
	OwnerID   string       `json:"ownerId"`
	RoomID    string       `json:"roomId"`
	Date      string       `json:"date"`      // YYYY-MM-DD
	StartTime string       `json:"startTime"` // HH:MM
	EndTime   string       `json:"endTime"`   // HH:MM
	Capacity  int          `json:"capacity"`
	TrainerID *string      `json:"trainerId,omitempty"`
	Repeat    *RepeatBlock `json:"repeat,omitempty"`
}

// ScheduleResponse одно созданное занятие
type ScheduleResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Type      string `json:"type"`
	Capacity  int    `json:"capacity"`
	RoomID    string `json:"roomId"`
}

// CreateScheduleResponse HTTP ответ со списком созданных занятий
type CreateScheduleResponse struct {
	Created []ScheduleResponse `json:"created"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// (с парсингом даты и времени)
func (r *CreateScheduleRequest) ToUseCaseRequest() (*createSchedule.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}

	req := &createSchedule.Request{
		OwnerID:   r.OwnerID,
		RoomID:    r.RoomID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Capacity:  r.Capacity,
		TrainerID: r.TrainerID,
	}
	if r.Repeat != nil {
		req.Repeat = &createSchedule.RepeatSpec{
			IntervalDays: r.Repeat.IntervalDays,
			Occurrences:  r.Repeat.Occurrences,
		}
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *createSchedule.Response) *CreateScheduleResponse {
	out := &CreateScheduleResponse{Created: make([]ScheduleResponse, 0, len(resp.Created))}
	for _, s := range resp.Created {
		out.Created = append(out.Created, ScheduleResponse{
			ID:        s.ID,
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Type:      s.Type,
			Capacity:  s.Capacity,
			RoomID:    s.RoomID,
		})
	}
	return out
}
