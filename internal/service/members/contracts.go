package members

import (
	"github.com/m04kA/SMC-GymService/internal/domain"
)

// GymStore доступ к участникам и комнатам
type GymStore interface {
	CreateMember(citizenID, name string, age int, membership domain.MembershipTier) (*domain.Member, error)
	MemberByID(id string) (*domain.Member, error)
	RoomByID(id string) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
