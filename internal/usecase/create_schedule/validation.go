package create_schedule

import "fmt"

// validateRequest проверяет обязательные поля запроса
func validateRequest(req *Request) error {
	if req.OwnerID == "" {
		return fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}
	if req.RoomID == "" {
		return fmt.Errorf("%w: room id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if req.Repeat != nil {
		if req.Repeat.Occurrences <= 0 {
			return fmt.Errorf("%w: occurrences must be positive", ErrInvalidInput)
		}
		if req.Repeat.IntervalDays < 0 {
			return fmt.Errorf("%w: interval days must not be negative", ErrInvalidInput)
		}
	}
	return nil
}
