// Package clock provides an injectable time source so components that stamp
// or compare against "now" stay deterministic under test.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

// Now returns the current wall-clock time.
func (System) Now() time.Time { return time.Now() }

// Fixed always returns the same instant.
type Fixed time.Time

// At returns a Clock frozen at t.
func At(t time.Time) Fixed { return Fixed(t) }

// Now returns the frozen instant.
func (f Fixed) Now() time.Time { return time.Time(f) }
