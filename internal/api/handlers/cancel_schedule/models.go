package cancel_schedule

// CancelScheduleRequest тело запроса на отмену занятия. Пустое тело допустимо:
// тогда каскад берётся из конфигурации.
type CancelScheduleRequest struct {
	CascadeBookings *bool `json:"cascadeBookings,omitempty"`
}

// CancelScheduleResponse подтверждение отмены
type CancelScheduleResponse struct {
	ScheduleID string `json:"scheduleId"`
	Status     string `json:"status"`
}
