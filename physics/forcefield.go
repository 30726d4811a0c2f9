package physics

// Accumulate applies mutual attraction to every unordered pair of bodies.
// Each pair is visited once and both directions are evaluated
// independently, since the two bodies generally differ in mass.
// Only velocities change; positions are left for Integrate.
func Accumulate(bodies []*Body) {
	for i := 0; i < len(bodies); i++ {
		b1 := bodies[i]
		for j := i + 1; j < len(bodies); j++ {
			b2 := bodies[j]
			b1.ApplyAttraction(b2)
			b2.ApplyAttraction(b1)
		}
	}
}

// IntegrateAll advances every body by dt. Must run after Accumulate so
// that the forces of a frame only ever see pre-integration positions.
func IntegrateAll(bodies []*Body, dt float64) {
	for _, b := range bodies {
		b.Integrate(dt)
	}
}

// TotalMomentum sums mass * velocity over all bodies
func TotalMomentum(bodies []*Body) Vector {
	var total Vector
	for _, b := range bodies {
		total = total.Add(b.Momentum())
	}
	return total
}

// VelocitySum adds up the velocities without mass weighting. Impulses
// ignore the receiving body's mass, so unlike TotalMomentum this drifts
// whenever bodies of different mass interact.
func VelocitySum(bodies []*Body) Vector {
	var total Vector
	for _, b := range bodies {
		total = total.Add(b.Velocity)
	}
	return total
}
