package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/pkg/types"
)

// TimeRange is a start/end time-of-day pair bound to a calendar date.
// Intervals are half-open: [Start, End), so ranges that merely touch at a
// boundary do not overlap.
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
	Date  time.Time
}

// NewTimeRange builds a time range. The date's time-of-day component is ignored.
func NewTimeRange(start, end types.TimeString, date time.Time) TimeRange {
	return TimeRange{Start: start, End: end, Date: date}
}

// SameDate reports whether both ranges fall on the same calendar day
func (r TimeRange) SameDate(other TimeRange) bool {
	y1, m1, d1 := r.Date.Date()
	y2, m2, d2 := other.Date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Overlaps reports whether the two ranges conflict. Ranges on different dates
// never overlap; on the same date the check is strict:
// start_a < end_b && start_b < end_a.
func (r TimeRange) Overlaps(other TimeRange) bool {
	if !r.SameDate(other) {
		return false
	}
	return r.Start.IsBefore(other.End) && other.Start.IsBefore(r.End)
}

// Contains reports whether other lies entirely within r (same date,
// r.Start <= other.Start and other.End <= r.End)
func (r TimeRange) Contains(other TimeRange) bool {
	if !r.SameDate(other) {
		return false
	}
	return !r.Start.IsAfter(other.Start) && !other.End.IsAfter(r.End)
}

// StartAt returns the range start as a full timestamp
func (r TimeRange) StartAt() time.Time {
	return r.Start.At(r.Date)
}

// EndAt returns the range end as a full timestamp
func (r TimeRange) EndAt() time.Time {
	return r.End.At(r.Date)
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%s %s-%s", r.Date.Format(DateFormat), r.Start, r.End)
}
