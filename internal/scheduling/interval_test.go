package scheduling

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ts
}

func iv(t *testing.T, start, end string) Interval {
	t.Helper()
	return Interval{Start: mustTime(t, start), End: mustTime(t, end)}
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{
			name: "identical",
			a:    iv(t, "2026-03-02 09:00", "2026-03-02 09:30"),
			b:    iv(t, "2026-03-02 09:00", "2026-03-02 09:30"),
			want: true,
		},
		{
			name: "partial overlap",
			a:    iv(t, "2026-03-02 09:00", "2026-03-02 10:00"),
			b:    iv(t, "2026-03-02 09:30", "2026-03-02 10:30"),
			want: true,
		},
		{
			name: "containment",
			a:    iv(t, "2026-03-02 09:00", "2026-03-02 12:00"),
			b:    iv(t, "2026-03-02 10:00", "2026-03-02 10:30"),
			want: true,
		},
		{
			name: "back to back does not overlap",
			a:    iv(t, "2026-03-02 09:00", "2026-03-02 09:30"),
			b:    iv(t, "2026-03-02 09:30", "2026-03-02 10:00"),
			want: false,
		},
		{
			name: "back to back reversed",
			a:    iv(t, "2026-03-02 09:30", "2026-03-02 10:00"),
			b:    iv(t, "2026-03-02 09:00", "2026-03-02 09:30"),
			want: false,
		},
		{
			name: "disjoint",
			a:    iv(t, "2026-03-02 09:00", "2026-03-02 09:30"),
			b:    iv(t, "2026-03-02 11:00", "2026-03-02 11:30"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// The predicate is symmetric.
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntervalContains(t *testing.T) {
	a := iv(t, "2026-03-02 09:00", "2026-03-02 09:30")

	if !a.Contains(mustTime(t, "2026-03-02 09:00")) {
		t.Error("start should be contained")
	}
	if !a.Contains(mustTime(t, "2026-03-02 09:15")) {
		t.Error("midpoint should be contained")
	}
	if a.Contains(mustTime(t, "2026-03-02 09:30")) {
		t.Error("end is exclusive")
	}
}
