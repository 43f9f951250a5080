package enroll_member

import (
	"github.com/m04kA/SMC-GymService/internal/domain"
)

// GymStore интерфейс хранилища зала
type GymStore interface {
	MemberByCitizenID(citizenID string) (*domain.Member, error)
	ScheduleByID(id string) (*domain.Schedule, error)
}

// EnrollmentRecorder интерфейс для учёта записей на занятия
type EnrollmentRecorder interface {
	RecordEnrollment(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
