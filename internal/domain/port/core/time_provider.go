package core

import "time"

// TimeProvider abstracts the wall clock so "now" defaults and audit stamps can be fixed in tests
type TimeProvider interface {
	// Now returns the current instant
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
}
