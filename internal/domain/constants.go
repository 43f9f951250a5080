package domain

import "fmt"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TrainerTier represents the skill level of a trainer, driving session price
type TrainerTier string

const (
	TierJunior TrainerTier = "Junior"
	TierSenior TrainerTier = "Senior"
	TierMaster TrainerTier = "Master"
)

// ParseTrainerTier validates a trainer tier coming from config or API input
func ParseTrainerTier(s string) (TrainerTier, error) {
	switch TrainerTier(s) {
	case TierJunior, TierSenior, TierMaster:
		return TrainerTier(s), nil
	default:
		return "", fmt.Errorf("%w: unknown trainer tier %q", ErrInvalidInput, s)
	}
}

// MembershipTier represents a member's plan, driving discount percentages
type MembershipTier string

const (
	MembershipMonthly MembershipTier = "Monthly"
	MembershipAnnual  MembershipTier = "Annual"
	MembershipStudent MembershipTier = "Student"
)

// ParseMembershipTier validates a membership tier coming from config or API input
func ParseMembershipTier(s string) (MembershipTier, error) {
	switch MembershipTier(s) {
	case MembershipMonthly, MembershipAnnual, MembershipStudent:
		return MembershipTier(s), nil
	default:
		return "", fmt.Errorf("%w: unknown membership tier %q", ErrInvalidInput, s)
	}
}

// LockerKind represents the kind of a locker
type LockerKind string

const (
	LockerNormal LockerKind = "Normal"
	LockerVIP    LockerKind = "VIP"
)

// ParseLockerKind validates a locker kind coming from config or API input
func ParseLockerKind(s string) (LockerKind, error) {
	switch LockerKind(s) {
	case LockerNormal, LockerVIP:
		return LockerKind(s), nil
	default:
		return "", fmt.Errorf("%w: unknown locker kind %q", ErrInvalidInput, s)
	}
}

// Transaction type tags
const (
	TxClass        = "CLS"
	TxPrivate      = "PVT"
	TxLockerNormal = "LKR"
	TxLockerVIP    = "LKR-VIP"
)

// Entity id formats. Sequence numbers are allocated by the aggregate root,
// never by package-level counters.
func FormatRoomID(n int64) string     { return fmt.Sprintf("R-%03d", n) }
func FormatClassID(n int64) string    { return fmt.Sprintf("CL-%d", n) }
func FormatStaffID(n int64) string    { return fmt.Sprintf("STF-%03d", n) }
func FormatMemberID(n int64) string   { return fmt.Sprintf("MEM-%03d", n) }
func FormatLockerID(roomID string, n int) string   { return fmt.Sprintf("%s-%03d", roomID, n) }
func FormatScheduleID(ownerID string, n int) string { return fmt.Sprintf("%s-%03d", ownerID, n) }
