package pay_bookings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	gymRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/gym"
)

// UseCase use case для оплаты всех неоплаченных бронирований участника
type UseCase struct {
	store        GymStore
	prices       PriceTable
	transactions TransactionRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store GymStore, prices PriceTable, transactions TransactionRecorder, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		prices:       prices,
		transactions: transactions,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case оплаты.
//
// Бизнес-логика:
// 1. Находим участника и его скидки по уровню членства
// 2. Оплачиваем каждое Pending-бронирование занятия: цена по уровню тренера
//    и типу занятия, скидка на бронирования, транзакция CLS/PVT, подтверждение.
//    К оплаченному занятию прилагается бесплатный обычный шкафчик на время
//    занятия; его отсутствие не срывает оплату
// 3. Оплачиваем каждое Pending-бронирование шкафчика: почасовой тариф на
//    длительность, скидка на шкафчики, транзакция LKR/LKR-VIP, подтверждение
//
// Отсутствующий ключ цены или скидки в конфигурации прерывает оплату.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PayBookings: member=%s", req.MemberID)

	if req.MemberID == "" {
		return nil, fmt.Errorf("%w: member id is required", ErrInvalidInput)
	}

	member, err := uc.store.MemberByID(req.MemberID)
	if err != nil {
		if errors.Is(err, gymRepo.ErrMemberNotFound) {
			uc.logger.Warn("PayBookings: member %s not found", req.MemberID)
			return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, req.MemberID)
		}
		uc.logger.Error("PayBookings: failed to get member %s: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: failed to get member: %v", ErrInternal, err)
	}

	discounts, ok := uc.prices.MemberDiscounts(member.Membership)
	if !ok {
		uc.logger.Error("PayBookings: no discounts configured for membership %s", member.Membership)
		return nil, fmt.Errorf("%w: discounts for membership %s", ErrPriceNotConfigured, member.Membership)
	}

	// Снимок обоих списков до начала оплаты: бесплатные шкафчики, созданные
	// по ходу, уже подтверждены и в списки не попадают
	pendingTrainings := member.PendingTrainingBookings()
	pendingLockers := member.PendingLockerBookings()

	now := uc.timeProvider.Now()
	resp := &Response{MemberID: member.ID, Lines: make([]PaymentLine, 0, len(pendingTrainings)+len(pendingLockers))}

	for _, booking := range pendingTrainings {
		line, err := uc.payTraining(booking, member, discounts.Booking, now)
		if err != nil {
			return nil, err
		}
		resp.Lines = append(resp.Lines, *line)
		resp.Total = round2(resp.Total + line.Amount)
	}

	for _, booking := range pendingLockers {
		line, err := uc.payLocker(booking, member, discounts.Locker, now)
		if err != nil {
			return nil, err
		}
		resp.Lines = append(resp.Lines, *line)
		resp.Total = round2(resp.Total + line.Amount)
	}

	uc.logger.Info("PayBookings: member %s paid %d bookings, total %.2f", member.ID, len(resp.Lines), resp.Total)
	return resp, nil
}

func (uc *UseCase) payTraining(booking *domain.TrainingBooking, member *domain.Member, discount float64, now time.Time) (*PaymentLine, error) {
	schedule := booking.Schedule

	price, ok := uc.prices.SessionPrice(schedule.Trainer.Tier, schedule.Type())
	if !ok {
		uc.logger.Error("PayBookings: no session price for tier %s / type %s", schedule.Trainer.Tier, schedule.Type())
		return nil, fmt.Errorf("%w: session price for %s %s", ErrPriceNotConfigured, schedule.Trainer.Tier, schedule.Type())
	}

	tag := domain.TxPrivate
	if schedule.Type() == domain.ScheduleTypeClass {
		tag = domain.TxClass
	}
	amount := round2(price * (1 - discount/100))

	uc.store.CreateTransaction(tag, amount, now, member)
	if uc.transactions != nil {
		uc.transactions.RecordTransaction(tag)
	}

	if err := booking.Confirm(); err != nil {
		uc.logger.Warn("PayBookings: failed to confirm booking for schedule %s: %v", schedule.ID, err)
	}

	// Бесплатный обычный шкафчик на время занятия
	if _, err := schedule.Room.ReserveLocker(domain.LockerNormal, member,
		schedule.Window.StartAt(), schedule.Window.EndAt(), domain.StatusConfirmed); err != nil {
		uc.logger.Warn("PayBookings: no complimentary locker for member %s, schedule %s: %v", member.ID, schedule.ID, err)
	}

	return &PaymentLine{BookingRef: schedule.ID, Type: tag, Amount: amount}, nil
}

func (uc *UseCase) payLocker(booking *domain.LockerBooking, member *domain.Member, discount float64, now time.Time) (*PaymentLine, error) {
	locker := booking.Locker

	rate, ok := uc.prices.LockerHourlyRate(locker.Kind)
	if !ok {
		uc.logger.Error("PayBookings: no hourly rate for locker kind %s", locker.Kind)
		return nil, fmt.Errorf("%w: locker rate for kind %s", ErrPriceNotConfigured, locker.Kind)
	}

	tag := domain.TxLockerNormal
	if locker.Kind == domain.LockerVIP {
		tag = domain.TxLockerVIP
	}
	amount := round2(rate * booking.DurationHours() * (1 - discount/100))

	uc.store.CreateTransaction(tag, amount, now, member)
	if uc.transactions != nil {
		uc.transactions.RecordTransaction(tag)
	}

	if err := booking.Confirm(); err != nil {
		uc.logger.Warn("PayBookings: failed to confirm locker booking %s: %v", locker.ID, err)
	}

	return &PaymentLine{BookingRef: locker.ID, Type: tag, Amount: amount}, nil
}

// round2 округляет сумму до двух знаков
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
