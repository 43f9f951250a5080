package domain

import (
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-GymService/pkg/types"
)

// Room is a physical space with a people capacity. It is authoritative for
// overlap checks among its own schedules and owns its lockers; both are
// guarded by the room lock.
type Room struct {
	ID       string
	Name     string
	Capacity int

	mu        sync.Mutex
	schedules []*Schedule
	lockers   []*Locker
}

// NewRoom creates an empty room
func NewRoom(id, name string, capacity int) *Room {
	return &Room{ID: id, Name: name, Capacity: capacity}
}

// IsAvailable reports whether the window conflicts with no schedule already
// placed in this room. Schedules on other dates never conflict; on the same
// date the half-open overlap rule applies, so touching boundaries are fine.
func (r *Room) IsAvailable(start, end types.TimeString, date time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isAvailableLocked(NewTimeRange(start, end, date))
}

func (r *Room) isAvailableLocked(window TimeRange) bool {
	for _, s := range r.schedules {
		if s.Window.Overlaps(window) {
			return false
		}
	}
	return true
}

// AttachSchedule checks availability and records the schedule in one step
// under the room lock, so two concurrent creations cannot both pass the check
func (r *Room) AttachSchedule(s *Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isAvailableLocked(s.Window) {
		return fmt.Errorf("%w: %s overlaps an existing schedule in room %s", ErrRoomUnavailable, s.Window, r.ID)
	}
	r.schedules = append(r.schedules, s)
	return nil
}

// CreateLockers adds normal lockers followed by VIP lockers. Locker ids are
// sequential within the room.
func (r *Room) CreateLockers(normal, vip int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < normal; i++ {
		r.lockers = append(r.lockers, newLocker(FormatLockerID(r.ID, len(r.lockers)+1), LockerNormal))
	}
	for i := 0; i < vip; i++ {
		r.lockers = append(r.lockers, newLocker(FormatLockerID(r.ID, len(r.lockers)+1), LockerVIP))
	}
}

// ReserveLocker scans lockers of the requested kind in stored order and books
// the first one free for [start, end). The booking is created with the given
// status and registered with the member. Fails with ErrNoLockerAvailable when
// every locker of that kind is taken.
func (r *Room) ReserveLocker(kind LockerKind, member *Member, start, end time.Time, status BookingStatus) (*LockerBooking, error) {
	r.mu.Lock()

	var booking *LockerBooking
	for _, locker := range r.lockers {
		if locker.Kind != kind {
			continue
		}
		if b := locker.reserve(member, start, end, status); b != nil {
			booking = b
			break
		}
	}
	r.mu.Unlock()

	if booking == nil {
		return nil, fmt.Errorf("%w: kind=%s room=%s", ErrNoLockerAvailable, kind, r.ID)
	}
	member.addLockerBooking(booking)
	return booking, nil
}

// Schedules returns a snapshot of the schedules placed in this room
func (r *Room) Schedules() []*Schedule {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Schedule, len(r.schedules))
	copy(out, r.schedules)
	return out
}

// Lockers returns a snapshot of the room's lockers in stored order
func (r *Room) Lockers() []*Locker {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Locker, len(r.lockers))
	copy(out, r.lockers)
	return out
}
