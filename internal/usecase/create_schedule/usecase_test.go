package create_schedule

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
	uc      *UseCase
	repo    *gymRepo.Repository
	room    *domain.Room
	class   *domain.GymClass
	trainer *domain.Trainer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := gymRepo.NewRepository()
	return &fixture{
		uc:      NewUseCase(repo, nopLogger{}),
		repo:    repo,
		room:    repo.CreateRoom("yoga studio", 10),
		class:   repo.CreateClass("yoga class", "relaxing yoga"),
		trainer: repo.CreateTrainer("9001", "Yabro Muscal", 35, domain.TierJunior, "Lifting"),
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUseCase_Execute_ClassSchedule(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		OwnerID:   f.class.ID,
		RoomID:    f.room.ID,
		Date:      day(2026, 2, 7),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
		Capacity:  10,
		TrainerID: ptr.Ptr(f.trainer.ID),
	})
	require.NoError(t, err)
	require.Len(t, resp.Created, 1)

	got := resp.Created[0]
	assert.Equal(t, "CL-1-001", got.ID)
	assert.Equal(t, "2026-02-07", got.Date)
	assert.Equal(t, "Class", got.Type)
	assert.Equal(t, f.room.ID, got.RoomID)
}

func TestUseCase_Execute_TrainerScheduleDefaultsToOwner(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		OwnerID:   f.trainer.ID,
		RoomID:    f.room.ID,
		Date:      day(2026, 2, 7),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
		Capacity:  1,
	})
	require.NoError(t, err)
	require.Len(t, resp.Created, 1)

	assert.Equal(t, "STF-001-001", resp.Created[0].ID)
	assert.Equal(t, "Private", resp.Created[0].Type)
}

func TestUseCase_Execute_ClassWithoutTrainer(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		OwnerID:   f.class.ID,
		RoomID:    f.room.ID,
		Date:      day(2026, 2, 7),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
		Capacity:  10,
	})
	assert.ErrorIs(t, err, ErrTrainerRequired)
}

func TestUseCase_Execute_Repeating(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		OwnerID:   f.class.ID,
		RoomID:    f.room.ID,
		Date:      day(2026, 2, 7),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
		Capacity:  10,
		TrainerID: ptr.Ptr(f.trainer.ID),
		Repeat:    &RepeatSpec{IntervalDays: 7, Occurrences: 5},
	})
	require.NoError(t, err)
	require.Len(t, resp.Created, 5)

	wantDates := []string{"2026-02-07", "2026-02-14", "2026-02-21", "2026-02-28", "2026-03-07"}
	for i, want := range wantDates {
		assert.Equal(t, want, resp.Created[i].Date)
	}
}

func TestUseCase_Execute_RepeatingPartialCommit(t *testing.T) {
	f := newFixture(t)

	// Интервал 0: вторая итерация попадает в то же окно и конфликтует
	resp, err := f.uc.Execute(context.Background(), &Request{
		OwnerID:   f.class.ID,
		RoomID:    f.room.ID,
		Date:      day(2026, 2, 7),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
		Capacity:  10,
		TrainerID: ptr.Ptr(f.trainer.ID),
		Repeat:    &RepeatSpec{IntervalDays: 0, Occurrences: 3},
	})
	assert.ErrorIs(t, err, ErrRoomUnavailable)
	require.NotNil(t, resp)
	require.Len(t, resp.Created, 1)
	assert.Equal(t, "CL-1-001", resp.Created[0].ID)
}

func TestUseCase_Execute_DomainErrors(t *testing.T) {
	f := newFixture(t)

	base := Request{
		OwnerID:   f.class.ID,
		RoomID:    f.room.ID,
		Date:      day(2026, 2, 7),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
		Capacity:  10,
		TrainerID: ptr.Ptr(f.trainer.ID),
	}

	t.Run("capacity exceeds room", func(t *testing.T) {
		req := base
		req.Capacity = 11
		_, err := f.uc.Execute(context.Background(), &req)
		assert.ErrorIs(t, err, ErrCapacityExceedsRoom)
	})

	t.Run("room unavailable", func(t *testing.T) {
		_, err := f.uc.Execute(context.Background(), &base)
		require.NoError(t, err)

		overlapping := base
		overlapping.StartTime = types.TimeString("10:30")
		overlapping.EndTime = types.TimeString("11:30")
		_, err = f.uc.Execute(context.Background(), &overlapping)
		assert.ErrorIs(t, err, ErrRoomUnavailable)
	})
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	f := newFixture(t)

	base := Request{
		OwnerID:   f.class.ID,
		RoomID:    f.room.ID,
		Date:      day(2026, 2, 7),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
		Capacity:  10,
		TrainerID: ptr.Ptr(f.trainer.ID),
	}

	t.Run("owner", func(t *testing.T) {
		req := base
		req.OwnerID = "CL-99"
		_, err := f.uc.Execute(context.Background(), &req)
		assert.ErrorIs(t, err, ErrOwnerNotFound)
	})

	t.Run("room", func(t *testing.T) {
		req := base
		req.RoomID = "R-999"
		_, err := f.uc.Execute(context.Background(), &req)
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("trainer", func(t *testing.T) {
		req := base
		req.TrainerID = ptr.Ptr("STF-999")
		_, err := f.uc.Execute(context.Background(), &req)
		assert.ErrorIs(t, err, ErrTrainerNotFound)
	})
}

func TestUseCase_Execute_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		req  Request
	}{
		{"missing owner", Request{RoomID: f.room.ID, Date: day(2026, 2, 7), StartTime: "10:00", EndTime: "11:00", Capacity: 5}},
		{"missing room", Request{OwnerID: f.class.ID, Date: day(2026, 2, 7), StartTime: "10:00", EndTime: "11:00", Capacity: 5}},
		{"zero date", Request{OwnerID: f.class.ID, RoomID: f.room.ID, StartTime: "10:00", EndTime: "11:00", Capacity: 5}},
		{"start after end", Request{OwnerID: f.class.ID, RoomID: f.room.ID, Date: day(2026, 2, 7), StartTime: "11:00", EndTime: "10:00", Capacity: 5}},
		{"zero capacity", Request{OwnerID: f.class.ID, RoomID: f.room.ID, Date: day(2026, 2, 7), StartTime: "10:00", EndTime: "11:00"}},
		{"zero occurrences", Request{OwnerID: f.class.ID, RoomID: f.room.ID, Date: day(2026, 2, 7), StartTime: "10:00", EndTime: "11:00", Capacity: 5, Repeat: &RepeatSpec{IntervalDays: 7}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
