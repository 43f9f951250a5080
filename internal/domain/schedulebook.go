package domain

import (
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-GymService/pkg/types"
)

// ScheduleOwner is implemented by entities that can own schedules.
// GymClass and Trainer both carry a ScheduleBook and compose schedule
// management through this interface instead of sharing a base type.
type ScheduleOwner interface {
	// ScheduleOwnerID is the id prefix for schedules created by this owner
	ScheduleOwnerID() string
	// OwnerTrainer returns the owner itself when the owner is a trainer,
	// nil otherwise
	OwnerTrainer() *Trainer
}

// ScheduleBook is the schedule-management capability held by gym classes and
// trainers. It owns the ordered list of schedules created by its owner and
// allocates their sequential ids.
type ScheduleBook struct {
	owner ScheduleOwner

	mu        sync.Mutex
	schedules []*Schedule
}

// NewScheduleBook creates a schedule book for the given owner
func NewScheduleBook(owner ScheduleOwner) *ScheduleBook {
	return &ScheduleBook{owner: owner}
}

// CreateSchedule creates a single schedule in the given room.
//
// Fails with ErrTrainerRequired when no trainer is supplied and the owner is
// not a trainer, with ErrCapacityExceedsRoom when the capacity does not fit
// the room, and with ErrRoomUnavailable when the window overlaps an existing
// schedule on the room.
func (b *ScheduleBook) CreateSchedule(start, end types.TimeString, date time.Time, capacity int, room *Room, trainer *Trainer, gymClass *GymClass) (*Schedule, error) {
	trainer, err := b.resolveTrainer(trainer)
	if err != nil {
		return nil, err
	}
	if err := validateCapacity(capacity, room); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.createLocked(start, end, date, capacity, room, trainer, gymClass)
}

// CreateRepeatingSchedule creates one schedule per occurrence, dated
// startDate + k*intervalDays for k in [0, occurrences). Capacity is validated
// once up front; room availability is re-checked for every occurrence against
// everything created so far, including earlier occurrences of the same batch.
//
// A mid-batch conflict aborts the batch but leaves prior occurrences
// committed; the schedules created so far are returned alongside the error.
// Callers that need all-or-nothing must check availability first.
func (b *ScheduleBook) CreateRepeatingSchedule(start, end types.TimeString, startDate time.Time, intervalDays, occurrences, capacity int, room *Room, trainer *Trainer, gymClass *GymClass) ([]*Schedule, error) {
	trainer, err := b.resolveTrainer(trainer)
	if err != nil {
		return nil, err
	}
	if err := validateCapacity(capacity, room); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	created := make([]*Schedule, 0, occurrences)
	for k := 0; k < occurrences; k++ {
		date := startDate.AddDate(0, 0, k*intervalDays)
		s, err := b.createLocked(start, end, date, capacity, room, trainer, gymClass)
		if err != nil {
			return created, fmt.Errorf("occurrence %d (%s): %w", k, date.Format(DateFormat), err)
		}
		created = append(created, s)
	}
	return created, nil
}

// createLocked assigns the next id, attaches the schedule to the room and
// records it. Caller holds b.mu. A failed room attach consumes no id.
func (b *ScheduleBook) createLocked(start, end types.TimeString, date time.Time, capacity int, room *Room, trainer *Trainer, gymClass *GymClass) (*Schedule, error) {
	id := FormatScheduleID(b.owner.ScheduleOwnerID(), len(b.schedules)+1)
	schedule := newSchedule(id, NewTimeRange(start, end, date), capacity, room, trainer, gymClass)

	if err := room.AttachSchedule(schedule); err != nil {
		return nil, err
	}
	b.schedules = append(b.schedules, schedule)
	return schedule, nil
}

func (b *ScheduleBook) resolveTrainer(trainer *Trainer) (*Trainer, error) {
	if trainer != nil {
		return trainer, nil
	}
	if self := b.owner.OwnerTrainer(); self != nil {
		return self, nil
	}
	return nil, ErrTrainerRequired
}

func validateCapacity(capacity int, room *Room) error {
	if capacity > room.Capacity {
		return fmt.Errorf("%w: room %s can only accommodate %d people", ErrCapacityExceedsRoom, room.ID, room.Capacity)
	}
	return nil
}

// ScheduleByID scans the owner's schedules. Not-found is a distinguishable
// result rather than an error because callers fan out across multiple owners.
func (b *ScheduleBook) ScheduleByID(id string) (*Schedule, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.schedules {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Schedules returns a snapshot of the owner's schedules in creation order
func (b *ScheduleBook) Schedules() []*Schedule {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Schedule, len(b.schedules))
	copy(out, b.schedules)
	return out
}
