package reserve_locker

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/service/members/models"
)

type MemberService interface {
	ReserveLocker(ctx context.Context, req *models.ReserveLockerRequest) (*models.LockerBookingView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
