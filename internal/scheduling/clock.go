package scheduling

import "time"

// Clock abstracts time.Now so slot generation and reminder sweeps can be
// tested against a fixed instant.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
