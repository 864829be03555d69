package clock

import "time"

// Source supplies the monotonic instant fed into animation updates once
// per tick, so frame timing stays an explicit object instead of hidden
// calls to time.Now
type Source interface {
	Now() time.Time
}

// Monotonic provides the real system time with monotonic clock readings
type Monotonic struct{}

// NewMonotonic creates a real-time clock source
func NewMonotonic() *Monotonic {
	return &Monotonic{}
}

// Now returns the current time with monotonic clock reading
func (m *Monotonic) Now() time.Time {
	return time.Now()
}
