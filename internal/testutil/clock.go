package testutil

import "time"

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// TipoffIn returns a UTC start time d from now, truncated to the second like
// live feed timestamps.
func TipoffIn(d time.Duration) time.Time {
	return time.Now().Add(d).UTC().Truncate(time.Second)
}
