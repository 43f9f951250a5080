package pay_bookings

import (
	"context"

	payBookings "github.com/m04kA/SMC-GymService/internal/usecase/pay_bookings"
)

type PayBookingsUseCase interface {
	Execute(ctx context.Context, req *payBookings.Request) (*payBookings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
