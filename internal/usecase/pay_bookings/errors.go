package pay_bookings

import "errors"

var (
	// ErrMemberNotFound возвращается, когда участник не найден
	ErrMemberNotFound = errors.New("pay_bookings: member not found")

	// ErrPriceNotConfigured возвращается при отсутствии цены или скидки в конфигурации
	ErrPriceNotConfigured = errors.New("pay_bookings: price not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("pay_bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("pay_bookings: internal error")
)
