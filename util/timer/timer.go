package timer

import "time"

// Measure runs f once and returns the wall-clock time it took.
func Measure(f func() error) (time.Duration, error) {
	start := time.Now()
	err := f()
	return time.Since(start), err
}
