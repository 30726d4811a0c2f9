package game

import "time"

// TimeProvider is a source of wall-clock readings
type TimeProvider interface {
	Now() time.Time
}

// SystemTime provides the real system time with monotonic clock readings
type SystemTime struct{}

// Now returns the current time
func (SystemTime) Now() time.Time {
	return time.Now()
}

// TimestampSource turns a TimeProvider into scheduler timestamps:
// milliseconds elapsed since the source was created.
type TimestampSource struct {
	provider TimeProvider
	origin   time.Time
}

// NewTimestampSource starts counting from the provider's current time
func NewTimestampSource(provider TimeProvider) *TimestampSource {
	return &TimestampSource{
		provider: provider,
		origin:   provider.Now(),
	}
}

// Millis returns the current timestamp
func (s *TimestampSource) Millis() float64 {
	return float64(s.provider.Now().Sub(s.origin)) / float64(time.Millisecond)
}

// FrameClock converts consecutive timestamps into delta time
type FrameClock struct {
	last    float64
	started bool
}

// Advance records timestampMillis and returns the seconds elapsed since
// the previous call. The first call only establishes the origin and
// reports ok=false. A timestamp older than the previous one yields 0.
func (c *FrameClock) Advance(timestampMillis float64) (delta float64, ok bool) {
	if !c.started {
		c.started = true
		c.last = timestampMillis
		return 0, false
	}

	delta = (timestampMillis - c.last) / 1000
	c.last = timestampMillis
	if delta < 0 {
		delta = 0
	}
	return delta, true
}

// Reset forgets the origin so the next Advance starts over
func (c *FrameClock) Reset() {
	c.started = false
	c.last = 0
}
