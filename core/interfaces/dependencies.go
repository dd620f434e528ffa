// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core calendar logic

package interfaces

import "time"

// Clock supplies the current instant. Services read it once per call.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface
type ClockFunc func() time.Time

// Now implements Clock
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock
var SystemClock Clock = ClockFunc(time.Now)

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache memoises resolved week ranges (optional)
	Cache Cache

	// Logger provides structured logging
	Logger Logger

	// Clock provides "now" for current-week lookups (defaults to SystemClock)
	Clock Clock
}
