package models

import "github.com/m04kA/SMC-GymService/internal/domain"

// ScheduleSummary краткое описание одного занятия в расписании
type ScheduleSummary struct {
	ID          string `json:"id"`
	Date        string `json:"date"`      // "2026-02-07"
	StartTime   string `json:"startTime"` // "10:00"
	EndTime     string `json:"endTime"`   // "11:30"
	Type        string `json:"type"`      // Class | Private
	Status      string `json:"status"`    // Normal | Cancelled
	TrainerName string `json:"trainerName"`
	RoomID      string `json:"roomId"`
	RoomName    string `json:"roomName"`
	Enrolled    int    `json:"enrolled"` // места, занятые Pending/Confirmed/CheckedIn бронированиями
	Capacity    int    `json:"capacity"`
}

// ClassSummary класс занятий со всеми его расписаниями
type ClassSummary struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Detail    string            `json:"detail"`
	Schedules []ScheduleSummary `json:"schedules"`
}

// FromDomainSchedule конвертирует расписание в summary
func FromDomainSchedule(s *domain.Schedule) ScheduleSummary {
	return ScheduleSummary{
		ID:          s.ID,
		Date:        s.Window.Date.Format(domain.DateFormat),
		StartTime:   s.Window.Start.String(),
		EndTime:     s.Window.End.String(),
		Type:        string(s.Type()),
		Status:      string(s.Status()),
		TrainerName: s.Trainer.Name,
		RoomID:      s.Room.ID,
		RoomName:    s.Room.Name,
		Enrolled:    s.Occupancy(),
		Capacity:    s.Capacity,
	}
}

// FromDomainClass конвертирует класс со всеми расписаниями в summary
func FromDomainClass(c *domain.GymClass) ClassSummary {
	schedules := c.Book().Schedules()
	out := ClassSummary{
		ID:        c.ID,
		Name:      c.Name,
		Detail:    c.Detail,
		Schedules: make([]ScheduleSummary, 0, len(schedules)),
	}
	for _, s := range schedules {
		out.Schedules = append(out.Schedules, FromDomainSchedule(s))
	}
	return out
}
