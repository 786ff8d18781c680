package domain

import "time"

// Clock supplies frame timestamps. Tests drive the loop with a manual clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now, which carries a monotonic reading.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
