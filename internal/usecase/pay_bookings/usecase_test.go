package pay_bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/internal/config"
	"github.com/m04kA/SMC-GymService/internal/domain"
	gymRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/gym"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type recorderSpy struct {
	tags []string
}

func (r *recorderSpy) RecordTransaction(txType string) {
	r.tags = append(r.tags, txType)
}

func testPricing() config.Pricing {
	return config.Pricing{
		Sessions: map[string]config.SessionPrice{
			"Junior": {Private: 800, Class: 200},
			"Senior": {Private: 1500, Class: 375},
			"Master": {Private: 2500, Class: 625},
		},
		Lockers: map[string]float64{
			"Normal": 35,
			"VIP":    70,
		},
		Discounts: map[string]config.DiscountRow{
			"Monthly": {},
			"Annual":  {Booking: 10, Item: 10, Locker: 15},
			"Student": {Booking: 15, Locker: 10},
		},
	}
}

type fixture struct {
	uc       *UseCase
	repo     *gymRepo.Repository
	recorder *recorderSpy
}

func newFixture(t *testing.T, pricing config.Pricing) *fixture {
	t.Helper()

	repo := gymRepo.NewRepository()
	recorder := &recorderSpy{}
	uc := NewUseCase(repo, pricing, recorder, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 2, 7, 9, 0, 0, 0, time.UTC)}

	return &fixture{uc: uc, repo: repo, recorder: recorder}
}

func (f *fixture) classSchedule(t *testing.T, tier domain.TrainerTier, normalLockers int) *domain.Schedule {
	t.Helper()

	trainer := f.repo.CreateTrainer("9001", "Yabro Muscal", 35, tier, "Lifting")
	class := f.repo.CreateClass("yoga class", "relaxing yoga")
	room := f.repo.CreateRoom("yoga studio", 10)
	room.CreateLockers(normalLockers, 0)

	date := time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)
	schedule, err := class.Book().CreateSchedule(
		types.TimeString("10:00"), types.TimeString("11:00"), date, 10, room, trainer, class)
	require.NoError(t, err)
	return schedule
}

func TestUseCase_Execute_ClassWithAnnualDiscount(t *testing.T) {
	f := newFixture(t, testPricing())
	schedule := f.classSchedule(t, domain.TierJunior, 2)

	member, err := f.repo.CreateMember("7101", "Praso Tyros", 30, domain.MembershipAnnual)
	require.NoError(t, err)
	booking := schedule.EnrollMember(member)

	resp, err := f.uc.Execute(context.Background(), &Request{MemberID: member.ID})
	require.NoError(t, err)

	// Junior class 200, Annual booking discount 10%
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, schedule.ID, resp.Lines[0].BookingRef)
	assert.Equal(t, "CLS", resp.Lines[0].Type)
	assert.Equal(t, 180.00, resp.Lines[0].Amount)
	assert.Equal(t, 180.00, resp.Total)

	assert.Equal(t, domain.StatusConfirmed, booking.Status())
	assert.Equal(t, []string{"CLS"}, f.recorder.tags)

	// Ровно один бесплатный шкафчик, уже подтверждённый
	lockers := member.LockerBookings()
	require.Len(t, lockers, 1)
	assert.Equal(t, domain.LockerNormal, lockers[0].Locker.Kind)
	assert.Equal(t, domain.StatusConfirmed, lockers[0].Status())
	assert.Equal(t, schedule.Window.StartAt(), lockers[0].Start)
	assert.Equal(t, schedule.Window.EndAt(), lockers[0].End)

	// Транзакция записана на участника
	txs := member.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, "CLS", txs[0].Type)
	assert.Equal(t, 180.00, txs[0].Amount)
	assert.Equal(t, time.Date(2026, 2, 7, 9, 0, 0, 0, time.UTC), txs[0].Timestamp)
}

func TestUseCase_Execute_PrivateSession(t *testing.T) {
	f := newFixture(t, testPricing())

	trainer := f.repo.CreateTrainer("9001", "Yabro Muscal", 35, domain.TierSenior, "Lifting")
	room := f.repo.CreateRoom("a private room", 2)
	room.CreateLockers(1, 0)
	date := time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)
	schedule, err := trainer.Book().CreateSchedule(
		types.TimeString("14:00"), types.TimeString("15:00"), date, 1, room, nil, nil)
	require.NoError(t, err)

	member, err := f.repo.CreateMember("7101", "Praso Tyros", 30, domain.MembershipMonthly)
	require.NoError(t, err)
	schedule.EnrollMember(member)

	resp, err := f.uc.Execute(context.Background(), &Request{MemberID: member.ID})
	require.NoError(t, err)

	// Senior private 1500, Monthly без скидки
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "PVT", resp.Lines[0].Type)
	assert.Equal(t, 1500.00, resp.Lines[0].Amount)
}

func TestUseCase_Execute_LockerFractionalHours(t *testing.T) {
	f := newFixture(t, testPricing())

	room := f.repo.CreateRoom("yoga studio", 10)
	room.CreateLockers(1, 1)
	member, err := f.repo.CreateMember("7101", "Praso Tyros", 30, domain.MembershipAnnual)
	require.NoError(t, err)

	start := time.Date(2026, 2, 7, 10, 0, 0, 0, time.UTC)
	vipBooking, err := room.ReserveLocker(domain.LockerVIP, member, start, start.Add(150*time.Minute), domain.StatusPending)
	require.NoError(t, err)
	_, err = room.ReserveLocker(domain.LockerNormal, member, start, start.Add(2*time.Hour), domain.StatusPending)
	require.NoError(t, err)

	resp, err := f.uc.Execute(context.Background(), &Request{MemberID: member.ID})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 2)

	// VIP 70/ч * 2.5ч со скидкой 15% = 148.75
	assert.Equal(t, "LKR-VIP", resp.Lines[0].Type)
	assert.Equal(t, 148.75, resp.Lines[0].Amount)
	// Normal 35/ч * 2ч со скидкой 15% = 59.50
	assert.Equal(t, "LKR", resp.Lines[1].Type)
	assert.Equal(t, 59.50, resp.Lines[1].Amount)
	assert.Equal(t, 208.25, resp.Total)

	assert.Equal(t, domain.StatusConfirmed, vipBooking.Status())
	assert.Equal(t, []string{"LKR-VIP", "LKR"}, f.recorder.tags)
}

func TestUseCase_Execute_ComplimentaryLockerFailureIsNonFatal(t *testing.T) {
	f := newFixture(t, testPricing())
	schedule := f.classSchedule(t, domain.TierJunior, 0)

	member, err := f.repo.CreateMember("7101", "Praso Tyros", 30, domain.MembershipMonthly)
	require.NoError(t, err)
	booking := schedule.EnrollMember(member)

	resp, err := f.uc.Execute(context.Background(), &Request{MemberID: member.ID})
	require.NoError(t, err)

	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 200.00, resp.Lines[0].Amount)
	assert.Equal(t, domain.StatusConfirmed, booking.Status())
	assert.Empty(t, member.LockerBookings())
}

func TestUseCase_Execute_MissingPriceKeyAborts(t *testing.T) {
	pricing := testPricing()
	delete(pricing.Sessions, "Junior")

	f := newFixture(t, pricing)
	schedule := f.classSchedule(t, domain.TierJunior, 2)

	member, err := f.repo.CreateMember("7101", "Praso Tyros", 30, domain.MembershipMonthly)
	require.NoError(t, err)
	booking := schedule.EnrollMember(member)

	_, err = f.uc.Execute(context.Background(), &Request{MemberID: member.ID})
	assert.ErrorIs(t, err, ErrPriceNotConfigured)
	assert.Equal(t, domain.StatusPending, booking.Status())
}

func TestUseCase_Execute_MissingDiscountRowAborts(t *testing.T) {
	pricing := testPricing()
	delete(pricing.Discounts, "Student")

	f := newFixture(t, pricing)
	member, err := f.repo.CreateMember("7101", "Praso Tyros", 20, domain.MembershipStudent)
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), &Request{MemberID: member.ID})
	assert.ErrorIs(t, err, ErrPriceNotConfigured)
}

func TestUseCase_Execute_NothingPending(t *testing.T) {
	f := newFixture(t, testPricing())
	member, err := f.repo.CreateMember("7101", "Praso Tyros", 30, domain.MembershipMonthly)
	require.NoError(t, err)

	resp, err := f.uc.Execute(context.Background(), &Request{MemberID: member.ID})
	require.NoError(t, err)

	assert.Empty(t, resp.Lines)
	assert.Equal(t, 0.00, resp.Total)
}

func TestUseCase_Execute_MemberNotFound(t *testing.T) {
	f := newFixture(t, testPricing())

	_, err := f.uc.Execute(context.Background(), &Request{MemberID: "MEM-404"})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}
