package members

import "errors"

var (
	// ErrInvalidInput некорректные данные запроса
	ErrInvalidInput = errors.New("members: invalid input")

	// ErrMemberNotFound участник не найден
	ErrMemberNotFound = errors.New("members: member not found")

	// ErrRoomNotFound комната не найдена
	ErrRoomNotFound = errors.New("members: room not found")

	// ErrDuplicateCitizenID участник с таким citizen id уже зарегистрирован
	ErrDuplicateCitizenID = errors.New("members: citizen id already registered")

	// ErrNoLockerAvailable нет свободного шкафчика нужного типа
	ErrNoLockerAvailable = errors.New("members: no locker available")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("members: internal error")
)
