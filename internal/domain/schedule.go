package domain

import "sync"

// ScheduleStatus is the status of the session as a whole, independent of the
// status of each booking on it
type ScheduleStatus string

const (
	ScheduleNormal    ScheduleStatus = "Normal"
	ScheduleCancelled ScheduleStatus = "Cancelled"
)

// ScheduleType tells class sessions apart from private ones
type ScheduleType string

const (
	ScheduleTypeClass   ScheduleType = "Class"
	ScheduleTypePrivate ScheduleType = "Private"
)

// Schedule is one concrete bookable session: a time window in a room with a
// trainer and a participant capacity. The ordered booking list doubles as the
// FIFO waitlist queue: position among Waitlist-status entries is implicit in
// list order.
type Schedule struct {
	ID       string
	Window   TimeRange
	Capacity int
	Room     *Room
	Trainer  *Trainer
	GymClass *GymClass // nil for private schedules

	mu           sync.Mutex
	status       ScheduleStatus
	trainingPlan string
	bookings     []*TrainingBooking
}

func newSchedule(id string, window TimeRange, capacity int, room *Room, trainer *Trainer, gymClass *GymClass) *Schedule {
	return &Schedule{
		ID:       id,
		Window:   window,
		Capacity: capacity,
		Room:     room,
		Trainer:  trainer,
		GymClass: gymClass,
		status:   ScheduleNormal,
	}
}

// Type is derived from the presence of an owning gym class, not stored
func (s *Schedule) Type() ScheduleType {
	if s.GymClass != nil {
		return ScheduleTypeClass
	}
	return ScheduleTypePrivate
}

// Status returns the session-level status
func (s *Schedule) Status() ScheduleStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// SetTrainingPlan attaches a trainer's plan text to the session
func (s *Schedule) SetTrainingPlan(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trainingPlan = text
}

// TrainingPlan returns the attached plan text, empty if none was written
func (s *Schedule) TrainingPlan() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trainingPlan
}

// EnrollMember creates a booking for the member and appends it to the queue.
// Occupancy (Pending + Confirmed bookings) at or above capacity yields a
// Waitlist booking; a full class is not an error. The booking is registered
// with the member before returning.
func (s *Schedule) EnrollMember(member *Member) *TrainingBooking {
	s.mu.Lock()

	status := StatusPending
	if s.occupancyLocked() >= s.Capacity {
		status = StatusWaitlist
	}
	booking := newTrainingBooking(member, s, status)
	s.bookings = append(s.bookings, booking)

	s.mu.Unlock()

	member.addTrainingBooking(booking)
	return booking
}

// occupancyLocked counts bookings currently claiming capacity.
// Caller holds s.mu.
func (s *Schedule) occupancyLocked() int {
	n := 0
	for _, b := range s.bookings {
		switch b.Status() {
		case StatusPending, StatusConfirmed, StatusCheckedIn:
			n++
		}
	}
	return n
}

// Occupancy returns the number of bookings currently claiming capacity
// (Pending, Confirmed or CheckedIn)
func (s *Schedule) Occupancy() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.occupancyLocked()
}

// ConfirmedCount returns the number of confirmed bookings
func (s *Schedule) ConfirmedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.bookings {
		if b.Status() == StatusConfirmed {
			n++
		}
	}
	return n
}

// QueuePosition counts how many earlier-enrolled bookings are still waitlisted
// ahead of the given one. Asking for a booking that is not on this schedule is
// a programming error and reports -1.
func (s *Schedule) QueuePosition(booking *TrainingBooking) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos := 0
	for _, b := range s.bookings {
		if b == booking {
			return pos
		}
		if b.Status() == StatusWaitlist {
			pos++
		}
	}
	return -1
}

// PromoteNext moves the earliest waitlisted booking to Pending if capacity
// allows. Returns the promoted booking, or nil when the queue is empty or the
// session is still full. Promotion is an explicit operation: cancelling a
// booking does not promote automatically.
func (s *Schedule) PromoteNext() *TrainingBooking {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.occupancyLocked() >= s.Capacity {
		return nil
	}
	for _, b := range s.bookings {
		if b.Status() != StatusWaitlist {
			continue
		}
		if err := b.transition(StatusPending); err != nil {
			return nil
		}
		return b
	}
	return nil
}

// Cancel marks the session cancelled. With cascade, every non-terminal booking
// on the session is cancelled as well; without it the bookings keep their
// status (the member-facing view reports the session cancellation separately).
func (s *Schedule) Cancel(cascade bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = ScheduleCancelled
	if !cascade {
		return
	}
	for _, b := range s.bookings {
		if b.IsTerminal() {
			continue
		}
		// terminal states filtered above, transition cannot fail
		_ = b.Cancel()
	}
}

// Bookings returns a snapshot of the queue in enrollment order
func (s *Schedule) Bookings() []*TrainingBooking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*TrainingBooking, len(s.bookings))
	copy(out, s.bookings)
	return out
}
