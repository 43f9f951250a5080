package domain

import "time"

// Locker is a single locker inside a room. Mutation goes through the owning
// room's allocation path, which holds the room lock.
type Locker struct {
	ID   string
	Kind LockerKind

	operational bool
	bookings    []*LockerBooking
}

func newLocker(id string, kind LockerKind) *Locker {
	return &Locker{ID: id, Kind: kind, operational: true}
}

// SetOperational marks the locker administratively available or unavailable
func (l *Locker) SetOperational(up bool) {
	l.operational = up
}

// IsAvailable reports whether the locker can be booked for [start, end):
// the locker must be operational and no non-cancelled booking may overlap the
// window. Touching endpoints do not conflict.
func (l *Locker) IsAvailable(start, end time.Time) bool {
	if !l.operational {
		return false
	}
	for _, b := range l.bookings {
		if b.Status() == StatusCancelled {
			continue
		}
		if b.ConflictsWith(start, end) {
			return false
		}
	}
	return true
}

// reserve books the locker if available, returning nil otherwise.
// Called under the owning room's lock.
func (l *Locker) reserve(member *Member, start, end time.Time, status BookingStatus) *LockerBooking {
	if !l.IsAvailable(start, end) {
		return nil
	}
	booking := newLockerBooking(member, l, start, end, status)
	l.bookings = append(l.bookings, booking)
	return booking
}

// Bookings returns the locker's bookings in creation order
func (l *Locker) Bookings() []*LockerBooking {
	out := make([]*LockerBooking, len(l.bookings))
	copy(out, l.bookings)
	return out
}
