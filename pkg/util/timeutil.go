package util

import "time"

// Clock returns the current time. Components hold one so tests can pin time.
type Clock func() time.Time

// NowUTC is the production Clock.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Since reports the time elapsed since start according to c.
func (c Clock) Since(start time.Time) time.Duration {
	return c().Sub(start)
}
