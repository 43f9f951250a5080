package catalog

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("catalog: schedule not found")

	// ErrAlreadyCancelled возвращается при повторной отмене расписания
	ErrAlreadyCancelled = errors.New("catalog: schedule is already cancelled")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
