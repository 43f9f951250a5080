package create_schedule

import (
	"github.com/m04kA/SMC-GymService/internal/domain"
)

// GymStore интерфейс хранилища зала
type GymStore interface {
	ScheduleOwner(id string) (*domain.GymClass, *domain.Trainer, error)
	RoomByID(id string) (*domain.Room, error)
	TrainerByID(id string) (*domain.Trainer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
