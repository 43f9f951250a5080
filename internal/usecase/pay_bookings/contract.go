package pay_bookings

import (
	"time"

	"github.com/m04kA/SMC-GymService/internal/config"
	"github.com/m04kA/SMC-GymService/internal/domain"
)

// GymStore интерфейс хранилища зала
type GymStore interface {
	MemberByID(id string) (*domain.Member, error)
	CreateTransaction(txType string, amount float64, timestamp time.Time, member *domain.Member) *domain.Transaction
}

// PriceTable интерфейс прайс-листа. Второе возвращаемое значение false
// означает отсутствующий ключ конфигурации.
type PriceTable interface {
	SessionPrice(tier domain.TrainerTier, scheduleType domain.ScheduleType) (float64, bool)
	LockerHourlyRate(kind domain.LockerKind) (float64, bool)
	MemberDiscounts(tier domain.MembershipTier) (config.DiscountRow, bool)
}

// TransactionRecorder интерфейс для учёта транзакций
type TransactionRecorder interface {
	RecordTransaction(txType string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
