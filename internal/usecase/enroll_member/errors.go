package enroll_member

import "errors"

var (
	// ErrMemberNotFound возвращается, когда участник с таким citizen id не найден
	ErrMemberNotFound = errors.New("enroll_member: member not found")

	// ErrScheduleNotFound возвращается, когда занятие не найдено
	ErrScheduleNotFound = errors.New("enroll_member: schedule not found")

	// ErrScheduleCancelled возвращается при попытке записи на отменённое занятие
	ErrScheduleCancelled = errors.New("enroll_member: schedule is cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("enroll_member: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("enroll_member: internal error")
)
