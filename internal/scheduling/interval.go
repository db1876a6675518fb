package scheduling

import "time"

// Interval is a half-open time range [Start, End). End must be after Start.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints (a.End == b.Start) do not overlap, so back-to-back
// appointments are always allowed.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Contains reports whether t falls inside the interval.
func (a Interval) Contains(t time.Time) bool {
	return !t.Before(a.Start) && t.Before(a.End)
}

// Duration returns End - Start.
func (a Interval) Duration() time.Duration {
	return a.End.Sub(a.Start)
}
