package enroll_member

import "fmt"

// validateRequest проверяет обязательные поля запроса
func validateRequest(req *Request) error {
	if req.CitizenID == "" {
		return fmt.Errorf("%w: citizen id is required", ErrInvalidInput)
	}
	if req.ScheduleID == "" {
		return fmt.Errorf("%w: schedule id is required", ErrInvalidInput)
	}
	return nil
}
