package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/internal/domain"
	gymRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/gym"
	"github.com/m04kA/SMC-GymService/pkg/ptr"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	repo    *gymRepo.Repository
	room    *domain.Room
	trainer *domain.Trainer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := gymRepo.NewRepository()
	return &fixture{
		repo:    repo,
		room:    repo.CreateRoom("yoga studio", 10),
		trainer: repo.CreateTrainer("9001", "Yabro Muscal", 35, domain.TierJunior, "Lifting"),
	}
}

func (f *fixture) classSchedule(t *testing.T, class *domain.GymClass, capacity int) *domain.Schedule {
	t.Helper()

	date := time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)
	s, err := class.Book().CreateSchedule(
		types.TimeString("10:00"), types.TimeString("11:00"), date, capacity, f.room, f.trainer, class)
	require.NoError(t, err)
	return s
}

func TestService_ListAvailableClasses(t *testing.T) {
	f := newFixture(t)
	yoga := f.repo.CreateClass("yoga class", "relaxing yoga")
	bike := f.repo.CreateClass("bike class", "spinning")
	schedule := f.classSchedule(t, yoga, 5)

	member, err := f.repo.CreateMember("7101", "Praso Tyros", 30, domain.MembershipMonthly)
	require.NoError(t, err)
	schedule.EnrollMember(member)

	svc := NewService(f.repo, false, nopLogger{})
	classes := svc.ListAvailableClasses(context.Background())

	require.Len(t, classes, 2)
	assert.Equal(t, yoga.ID, classes[0].ID)
	assert.Equal(t, "yoga class", classes[0].Name)
	require.Len(t, classes[0].Schedules, 1)

	got := classes[0].Schedules[0]
	assert.Equal(t, schedule.ID, got.ID)
	assert.Equal(t, "2026-02-07", got.Date)
	assert.Equal(t, "Class", got.Type)
	assert.Equal(t, "Yabro Muscal", got.TrainerName)
	assert.Equal(t, 1, got.Enrolled)
	assert.Equal(t, 5, got.Capacity)

	assert.Equal(t, bike.ID, classes[1].ID)
	assert.Empty(t, classes[1].Schedules)
}

func TestService_GetSchedule(t *testing.T) {
	f := newFixture(t)
	yoga := f.repo.CreateClass("yoga class", "relaxing yoga")
	schedule := f.classSchedule(t, yoga, 5)

	svc := NewService(f.repo, false, nopLogger{})

	summary, err := svc.GetSchedule(context.Background(), schedule.ID)
	require.NoError(t, err)
	assert.Equal(t, schedule.ID, summary.ID)
	assert.Equal(t, "Normal", summary.Status)

	_, err = svc.GetSchedule(context.Background(), "CL-9-001")
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestService_CancelSchedule(t *testing.T) {
	f := newFixture(t)
	yoga := f.repo.CreateClass("yoga class", "relaxing yoga")
	schedule := f.classSchedule(t, yoga, 5)

	member, err := f.repo.CreateMember("7101", "Praso Tyros", 30, domain.MembershipMonthly)
	require.NoError(t, err)
	booking := schedule.EnrollMember(member)

	svc := NewService(f.repo, false, nopLogger{})

	require.NoError(t, svc.CancelSchedule(context.Background(), schedule.ID, nil))
	assert.Equal(t, domain.ScheduleCancelled, schedule.Status())
	// Каскад выключен: бронирование сохраняет статус
	assert.Equal(t, domain.StatusPending, booking.Status())

	// Повторная отмена отклоняется
	err = svc.CancelSchedule(context.Background(), schedule.ID, nil)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestService_CancelSchedule_CascadeOverride(t *testing.T) {
	f := newFixture(t)
	yoga := f.repo.CreateClass("yoga class", "relaxing yoga")
	schedule := f.classSchedule(t, yoga, 5)

	member, err := f.repo.CreateMember("7101", "Praso Tyros", 30, domain.MembershipMonthly)
	require.NoError(t, err)
	booking := schedule.EnrollMember(member)

	// Политика по умолчанию выключена, но вызов переопределяет её
	svc := NewService(f.repo, false, nopLogger{})
	require.NoError(t, svc.CancelSchedule(context.Background(), schedule.ID, ptr.Ptr(true)))

	assert.Equal(t, domain.StatusCancelled, booking.Status())
}

func TestService_CancelSchedule_NotFound(t *testing.T) {
	f := newFixture(t)
	svc := NewService(f.repo, false, nopLogger{})

	err := svc.CancelSchedule(context.Background(), "CL-9-001", nil)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
