package get_member_bookings

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/service/members/models"
)

type MemberService interface {
	GetBookings(ctx context.Context, memberID string) (*models.MemberBookingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
