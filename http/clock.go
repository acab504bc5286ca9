package http

import "time"

// Clock provides the current time for request timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock uses the system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type fixedClock struct {
	time time.Time
}

func (c fixedClock) Now() time.Time {
	return c.time
}

// FixedClock returns a Clock that always returns t.
func FixedClock(t time.Time) Clock {
	return fixedClock{time: t}
}
