package game

import (
	"math"

	"orbitcam/physics"
)

// drawCall is one DrawFilledCircle invocation seen by recordingSink
type drawCall struct {
	X, Y, Radius float64
}

// recordingSink captures every call the renderer makes
type recordingSink struct {
	clears int
	calls  []drawCall
}

func (s *recordingSink) Clear() {
	s.clears++
	s.calls = s.calls[:0]
}

func (s *recordingSink) DrawFilledCircle(x, y, radius float64) {
	s.calls = append(s.calls, drawCall{x, y, radius})
}

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func approxVec(a, b physics.Vector) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 1234
	return cfg
}
