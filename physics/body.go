package physics

// Body is a point mass. Position and Velocity are reassigned wholesale on
// every update, never field by field.
type Body struct {
	Position Vector
	Velocity Vector
	Mass     float64
}

// NewBody creates a body at rest with unit mass
func NewBody(x, y float64) *Body {
	return &Body{
		Position: Vector{X: x, Y: y},
		Mass:     1,
	}
}

// Attraction returns the velocity increment other imparts on b.
//
// The direction vector is not normalised, so the result
// scales with other.Mass / distance³ per component rather than with the
// inverse square. Coincident bodies divide by zero and the resulting
// Inf/NaN is returned as is.
func (b *Body) Attraction(other *Body) Vector {
	sqrDist := b.Position.SquaredDistance(other.Position)
	mag := other.Mass / sqrDist
	dir := other.Position.Add(b.Position.Negate())
	return dir.Scale(mag)
}

// ApplyAttraction pulls b toward other
func (b *Body) ApplyAttraction(other *Body) {
	b.Velocity = b.Velocity.Add(b.Attraction(other))
}

// ApplyRepulsion pushes b away from other, the inverse of ApplyAttraction
func (b *Body) ApplyRepulsion(other *Body) {
	b.Velocity = b.Velocity.Add(b.Attraction(other).Negate())
}

// Integrate advances the position by one forward Euler step of dt seconds
func (b *Body) Integrate(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// Wrap folds the position back into the [0, size] square, one period at most
func (b *Body) Wrap(size float64) {
	b.Position = Vector{
		X: WrapPosition(b.Position.X, size),
		Y: WrapPosition(b.Position.Y, size),
	}
}

// IsFinite reports whether position and velocity are both free of NaN/Inf
func (b *Body) IsFinite() bool {
	return b.Position.IsFinite() && b.Velocity.IsFinite()
}

// Momentum returns mass * velocity
func (b *Body) Momentum() Vector {
	return b.Velocity.Scale(b.Mass)
}

// WrapPosition maps a coordinate that left [0, size] back in by one period
func WrapPosition(p, size float64) float64 {
	if p < 0 {
		return p + size
	} else if p > size {
		return p - size
	}
	return p
}
