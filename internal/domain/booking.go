package domain

import (
	"fmt"
	"sync"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusWaitlist  BookingStatus = "Waitlist"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCheckedIn BookingStatus = "CheckedIn"
	StatusCompleted BookingStatus = "Completed"
	StatusCancelled BookingStatus = "Cancelled"
)

// transitions is the closed transition table of the booking state machine.
// Cancelled and Completed are terminal. Waitlist -> Pending is the explicit
// promotion step; Waitlist -> Confirmed covers confirmation through payment.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusWaitlist:  {StatusPending, StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCompleted},
}

// CanTransition reports whether the state machine allows from -> to
func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// bookingState holds the mutable status shared by both booking kinds.
// Status changes go through the transition table; invalid transitions are
// rejected instead of silently overwriting.
type bookingState struct {
	mu     sync.Mutex
	status BookingStatus
}

// Status returns the current booking status
func (b *bookingState) Status() BookingStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

func (b *bookingState) transition(to BookingStatus) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !CanTransition(b.status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.status, to)
	}
	b.status = to
	return nil
}

// Confirm moves the booking to Confirmed
func (b *bookingState) Confirm() error { return b.transition(StatusConfirmed) }

// Cancel moves the booking to Cancelled
func (b *bookingState) Cancel() error { return b.transition(StatusCancelled) }

// CheckIn moves a confirmed booking to CheckedIn
func (b *bookingState) CheckIn() error { return b.transition(StatusCheckedIn) }

// Complete moves a checked-in booking to Completed
func (b *bookingState) Complete() error { return b.transition(StatusCompleted) }

// IsTerminal reports whether no further transitions are possible
func (b *bookingState) IsTerminal() bool {
	s := b.Status()
	return s == StatusCancelled || s == StatusCompleted
}

// TrainingBooking is a member's claim on a schedule's capacity
type TrainingBooking struct {
	bookingState
	Member   *Member
	Schedule *Schedule
}

func newTrainingBooking(member *Member, schedule *Schedule, status BookingStatus) *TrainingBooking {
	return &TrainingBooking{
		bookingState: bookingState{status: status},
		Member:       member,
		Schedule:     schedule,
	}
}

// LockerBooking is a member's claim on a locker for a time window.
// The window may be shorter than a full schedule; start and end are full
// timestamps so fractional-hour durations are representable.
type LockerBooking struct {
	bookingState
	Member *Member
	Locker *Locker
	Start  time.Time
	End    time.Time
}

func newLockerBooking(member *Member, locker *Locker, start, end time.Time, status BookingStatus) *LockerBooking {
	return &LockerBooking{
		bookingState: bookingState{status: status},
		Member:       member,
		Locker:       locker,
		Start:        start,
		End:          end,
	}
}

// ConflictsWith reports whether the booking window overlaps [start, end).
// Touching endpoints do not conflict.
func (b *LockerBooking) ConflictsWith(start, end time.Time) bool {
	return b.Start.Before(end) && start.Before(b.End)
}

// DurationHours returns the booked duration in wall-clock hours
// (fractional hours allowed)
func (b *LockerBooking) DurationHours() float64 {
	return b.End.Sub(b.Start).Hours()
}
