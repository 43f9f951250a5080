package gym

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("gym.repository: room not found")

	// ErrClassNotFound возвращается, когда класс не найден
	ErrClassNotFound = errors.New("gym.repository: gym class not found")

	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("gym.repository: trainer not found")

	// ErrMemberNotFound возвращается, когда участник не найден
	ErrMemberNotFound = errors.New("gym.repository: member not found")

	// ErrScheduleNotFound возвращается, когда расписание не найдено ни у одного владельца
	ErrScheduleNotFound = errors.New("gym.repository: schedule not found")

	// ErrOwnerNotFound возвращается, когда владелец расписаний (класс или тренер) не найден
	ErrOwnerNotFound = errors.New("gym.repository: schedule owner not found")

	// ErrDuplicateCitizenID возвращается при повторной регистрации граждан. номера
	ErrDuplicateCitizenID = errors.New("gym.repository: citizen id already registered")
)
