// Package clock provides an injectable time source so that timer driven
// code (periodic re-evaluation, snooze wake-ups) can be tested without sleeping.
package clock

import "time"

// Clock is the subset of the time package the workspace needs.
type Clock interface {
	Now() time.Time
	// AfterFunc calls f once after d. The returned Timer cancels the call.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending AfterFunc call.
type Timer interface {
	// Stop reports whether the call was prevented from firing.
	Stop() bool
}

type realClock struct{}

// Real returns a Clock backed by the time package.
func Real() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
