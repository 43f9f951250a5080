package catalog

import "github.com/m04kA/SMC-GymService/internal/domain"

// GymStore интерфейс реестра зала
type GymStore interface {
	Classes() []*domain.GymClass
	ScheduleByID(id string) (*domain.Schedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
