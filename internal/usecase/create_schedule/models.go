package create_schedule

import (
	"time"

	"github.com/m04kA/SMC-GymService/pkg/types"
)

// RepeatSpec параметры повторяющегося расписания
type RepeatSpec struct {
	IntervalDays int // Интервал между занятиями в днях
	Occurrences  int // Сколько занятий создать
}

// Request модель запроса на создание занятия
type Request struct {
	OwnerID   string           // ID владельца расписания: класс ("CL-1") или тренер ("STF-001")
	RoomID    string           // ID комнаты
	Date      time.Time        // Дата первого занятия (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
	EndTime   types.TimeString // Время окончания
	Capacity  int              // Вместимость занятия
	TrainerID *string          // ID тренера (обязателен для классов, для тренера - его собственное расписание)
	Repeat    *RepeatSpec      // Параметры повторения (опционально)
}

// ScheduleView созданное занятие
type ScheduleView struct {
	ID        string
	Date      string
	StartTime string
	EndTime   string
	Type      string
	Capacity  int
	RoomID    string
}

// Response модель ответа со списком созданных занятий.
// При повторяющемся расписании и частичном сбое Created содержит
// занятия, созданные до первого конфликта.
type Response struct {
	Created []ScheduleView
}
