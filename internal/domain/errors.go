package domain

import "errors"

var (
	// ErrInvalidInput is returned for malformed enum values and bad arguments
	ErrInvalidInput = errors.New("domain: invalid input")

	// ErrTrainerRequired is returned when a schedule is created without a trainer
	// by an owner that is not itself a trainer
	ErrTrainerRequired = errors.New("domain: trainer not provided")

	// ErrCapacityExceedsRoom is returned when a schedule capacity is larger than
	// the capacity of the room it is placed in
	ErrCapacityExceedsRoom = errors.New("domain: schedule capacity exceeds room capacity")

	// ErrRoomUnavailable is returned when a schedule overlaps an existing
	// schedule on the same room and date
	ErrRoomUnavailable = errors.New("domain: room is not available for the requested time")

	// ErrNoLockerAvailable is returned when no locker of the requested kind has
	// a free slot for the requested window
	ErrNoLockerAvailable = errors.New("domain: no lockers available for the specified duration")

	// ErrInvalidTransition is returned when a booking status transition is not
	// allowed by the state machine
	ErrInvalidTransition = errors.New("domain: invalid booking status transition")
)
