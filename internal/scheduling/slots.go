package scheduling

import (
	"fmt"
	"time"
)

// Slot is one bookable period on a practitioner's day grid.
type Slot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
	Label     string    `json:"label"`
}

// WorkDay describes the practice working window applied to a calendar day.
type WorkDay struct {
	// Minutes from midnight, practice-local.
	StartMinutes int
	EndMinutes   int
	SlotDuration time.Duration
}

// ParseWorkDay builds a WorkDay from "HH:MM" bounds and a slot length in
// minutes.
func ParseWorkDay(workStart, workEnd string, slotMinutes int) (WorkDay, error) {
	start, err := parseHHMM(workStart)
	if err != nil {
		return WorkDay{}, fmt.Errorf("parse work start: %w", err)
	}
	end, err := parseHHMM(workEnd)
	if err != nil {
		return WorkDay{}, fmt.Errorf("parse work end: %w", err)
	}
	if end <= start {
		return WorkDay{}, fmt.Errorf("work end %q is not after work start %q", workEnd, workStart)
	}
	if slotMinutes <= 0 {
		return WorkDay{}, fmt.Errorf("slot duration must be positive, got %d", slotMinutes)
	}
	return WorkDay{
		StartMinutes: start,
		EndMinutes:   end,
		SlotDuration: time.Duration(slotMinutes) * time.Minute,
	}, nil
}

func parseHHMM(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return h*60 + m, nil
}

// Window returns the working interval of the given calendar day, in the
// day's location.
func (w WorkDay) Window(day time.Time) Interval {
	y, mo, d := day.Date()
	midnight := time.Date(y, mo, d, 0, 0, 0, 0, day.Location())
	return Interval{
		Start: midnight.Add(time.Duration(w.StartMinutes) * time.Minute),
		End:   midnight.Add(time.Duration(w.EndMinutes) * time.Minute),
	}
}

// Slots produces the full day grid for one practitioner. Every slot whose
// end fits inside the working window is emitted, in ascending order; a
// trailing period shorter than the slot duration is dropped. A slot is
// unavailable if it overlaps any busy interval or has already started
// relative to now.
func (w WorkDay) Slots(day time.Time, busy []Interval, now time.Time) []Slot {
	window := w.Window(day)

	var out []Slot
	for start := window.Start; !start.Add(w.SlotDuration).After(window.End); start = start.Add(w.SlotDuration) {
		iv := Interval{Start: start, End: start.Add(w.SlotDuration)}

		available := start.After(now)
		if available {
			for _, b := range busy {
				if iv.Overlaps(b) {
					available = false
					break
				}
			}
		}

		out = append(out, Slot{
			Start:     iv.Start,
			End:       iv.End,
			Available: available,
			Label:     iv.Start.Format("15:04") + " - " + iv.End.Format("15:04"),
		})
	}
	return out
}
