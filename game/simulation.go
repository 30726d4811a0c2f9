package game

import (
	"math/rand"

	"orbitcam/physics"
)

// Simulation owns the body set and advances it one frame at a time
type Simulation struct {
	bodies []*physics.Body
	centre *physics.Body
	wrap   float64 // world size to fold into, 0 disables

	steps   uint64
	simTime float64
}

// NewSimulation scatters cfg.BodyCount bodies over the world square and
// makes body 0 the heavy centre.
func NewSimulation(cfg Config, rng *rand.Rand) *Simulation {
	bodies := make([]*physics.Body, 0, cfg.BodyCount)
	for i := 0; i < cfg.BodyCount; i++ {
		b := physics.NewBody(rng.Float64()*cfg.WorldSize, rng.Float64()*cfg.WorldSize)
		b.Velocity = physics.Vector{
			X: (rng.Float64() - 0.5) * 2 * cfg.InitialSpeed,
			Y: (rng.Float64() - 0.5) * 2 * cfg.InitialSpeed,
		}
		b.Integrate(0)
		bodies = append(bodies, b)
	}
	bodies[0].Mass = cfg.CentreMass

	s := NewSimulationFromBodies(bodies, 0)
	if cfg.Wrap {
		s.wrap = cfg.WorldSize
	}
	return s
}

// NewSimulationFromBodies wraps an existing body set. centre indexes the
// body the camera tracks.
func NewSimulationFromBodies(bodies []*physics.Body, centre int) *Simulation {
	return &Simulation{
		bodies: bodies,
		centre: bodies[centre],
	}
}

// Step runs the accumulation pass over all pairs, then the integration
// pass over all bodies.
func (s *Simulation) Step(dt float64) {
	physics.Accumulate(s.bodies)
	physics.IntegrateAll(s.bodies, dt)

	if s.wrap > 0 {
		for _, b := range s.bodies {
			b.Wrap(s.wrap)
		}
	}

	s.steps++
	s.simTime += dt
}

// Bodies returns the body set in creation order
func (s *Simulation) Bodies() []*physics.Body {
	return s.bodies
}

// Centre returns the tracked body
func (s *Simulation) Centre() *physics.Body {
	return s.centre
}

// Steps returns the number of completed steps
func (s *Simulation) Steps() uint64 {
	return s.steps
}

// SimTime returns the summed delta time in seconds
func (s *Simulation) SimTime() float64 {
	return s.simTime
}

// TotalMomentum returns the mass-weighted momentum of the system
func (s *Simulation) TotalMomentum() physics.Vector {
	return physics.TotalMomentum(s.bodies)
}

// NonFinite counts bodies poisoned by NaN or Inf
func (s *Simulation) NonFinite() int {
	n := 0
	for _, b := range s.bodies {
		if !b.IsFinite() {
			n++
		}
	}
	return n
}
