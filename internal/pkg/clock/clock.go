package clock

import "time"

// Clock stamps state transitions: request close, order completion, reviews.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

// Now is UTC at microsecond precision, matching what timestamptz stores,
// so a value that round-trips through Postgres compares equal.
func (RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

