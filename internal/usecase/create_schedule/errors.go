package create_schedule

import "errors"

var (
	// ErrOwnerNotFound возвращается, когда владелец расписания (класс или тренер) не найден
	ErrOwnerNotFound = errors.New("create_schedule: schedule owner not found")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_schedule: room not found")

	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("create_schedule: trainer not found")

	// ErrTrainerRequired возвращается, когда занятию класса не назначен тренер
	ErrTrainerRequired = errors.New("create_schedule: trainer is required")

	// ErrCapacityExceedsRoom возвращается, когда вместимость занятия больше вместимости комнаты
	ErrCapacityExceedsRoom = errors.New("create_schedule: capacity exceeds room capacity")

	// ErrRoomUnavailable возвращается, когда комната занята в указанное время
	ErrRoomUnavailable = errors.New("create_schedule: room is unavailable at this time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_schedule: internal error")
)
