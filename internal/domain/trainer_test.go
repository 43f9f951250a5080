package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/pkg/types"
)

func TestTrainer_WriteTrainingPlan(t *testing.T) {
	trainer := NewTrainer("STF-001", "9001", "Yabro Muscal", 35, TierJunior, "Lifting")
	member := NewMember("MEM-001", "7101", "Praso Tyros", 30, MembershipMonthly)

	room := NewRoom("R-001", "a private room", 2)
	date := time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)
	schedule, err := trainer.Book().CreateSchedule(
		types.TimeString("10:00"), types.TimeString("11:00"), date, 1, room, nil, nil)
	require.NoError(t, err)

	trainer.WriteTrainingPlan(schedule, "deadlifts, then mobility work")
	trainer.WriteTrainingPlan(member, "three sessions a week")

	assert.Equal(t, "deadlifts, then mobility work", schedule.TrainingPlan())
	assert.Equal(t, "three sessions a week", member.TrainingPlan())
}

func TestTrainer_OwnsScheduleBook(t *testing.T) {
	trainer := NewTrainer("STF-001", "9001", "Yabro Muscal", 35, TierJunior, "Lifting")

	assert.Equal(t, "STF-001", trainer.ScheduleOwnerID())
	assert.Same(t, trainer, trainer.OwnerTrainer())
	assert.NotNil(t, trainer.Book())
}
