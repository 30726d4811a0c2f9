package physics

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
)

func TestAccumulateTwoBodyScenario(t *testing.T) {
	a := &Body{Position: Vector{0, 0}, Mass: 1}
	b := &Body{Position: Vector{10, 0}, Mass: 100}
	bodies := []*Body{a, b}

	Accumulate(bodies)
	IntegrateAll(bodies, 1)

	if !approxVec(a.Velocity, Vector{10, 0}) || !approxVec(a.Position, Vector{10, 0}) {
		t.Errorf("A = pos %v vel %v, want pos {10 0} vel {10 0}", a.Position, a.Velocity)
	}
	if !approxVec(b.Velocity, Vector{-0.1, 0}) || !approxVec(b.Position, Vector{9.9, 0}) {
		t.Errorf("B = pos %v vel %v, want pos {9.9 0} vel {-0.1 0}", b.Position, b.Velocity)
	}
}

func TestAccumulateLeavesPositions(t *testing.T) {
	bodies := randomBodies(rand.New(rand.NewSource(7)), 12)
	before := make([]Vector, len(bodies))
	for i, b := range bodies {
		before[i] = b.Position
	}

	Accumulate(bodies)

	for i, b := range bodies {
		if b.Position != before[i] {
			t.Errorf("body %d moved from %v to %v", i, before[i], b.Position)
		}
	}
}

func TestAccumulateOrderIndependent(t *testing.T) {
	forward := randomBodies(rand.New(rand.NewSource(42)), 20)
	reversed := randomBodies(rand.New(rand.NewSource(42)), 20)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	Accumulate(forward)
	Accumulate(reversed)

	n := len(forward)
	for i := range forward {
		got, want := reversed[n-1-i].Velocity, forward[i].Velocity
		if !approxVec(got, want) {
			t.Errorf("body %d velocity = %v reversed, %v forward", i, got, want)
		}
	}
}

func TestMomentumNotConserved(t *testing.T) {
	bodies := randomBodies(rand.New(rand.NewSource(1)), 10)
	bodies[0].Mass = 150

	before := VelocitySum(bodies)
	for i := 0; i < 5; i++ {
		Accumulate(bodies)
		IntegrateAll(bodies, 1.0/60)
	}
	after := VelocitySum(bodies)

	if approxVec(before, after) {
		t.Errorf("velocity sum conserved (%v -> %v); impulses ignore the receiver's mass and must not conserve it", before, after)
	}
}

func TestMassWeightedMomentumDriftsOnlyByRounding(t *testing.T) {
	bodies := randomBodies(rand.New(rand.NewSource(1)), 10)
	bodies[0].Mass = 150

	before := TotalMomentum(bodies)
	for i := 0; i < 5; i++ {
		Accumulate(bodies)
		IntegrateAll(bodies, 1.0/60)
	}
	after := TotalMomentum(bodies)

	var scale float64
	for _, b := range bodies {
		p := b.Momentum()
		scale += math.Abs(p.X) + math.Abs(p.Y)
	}
	tol := 1e-9 * scale
	if math.Abs(after.X-before.X) > tol || math.Abs(after.Y-before.Y) > tol {
		t.Errorf("mass-weighted momentum %v -> %v, drift beyond %v", before, after, tol)
	}
}

func TestCoincidentPairStaysNonFinite(t *testing.T) {
	a := &Body{Position: Vector{5, 5}, Mass: 1}
	b := &Body{Position: Vector{5, 5}, Mass: 2}
	c := &Body{Position: Vector{50, 50}, Mass: 1}
	bodies := []*Body{a, b, c}

	for step := 1; step <= 2; step++ {
		Accumulate(bodies)
		IntegrateAll(bodies, 0.016)
		if a.IsFinite() || b.IsFinite() {
			t.Fatalf("step %d: coincident bodies still finite: %+v %+v", step, a, b)
		}
	}
	if c.IsFinite() {
		t.Errorf("poison did not spread to neighbour: %+v", c)
	}
}

func randomBodies(rng *rand.Rand, n int) []*Body {
	bodies := make([]*Body, n)
	for i := range bodies {
		b := NewBody(rng.Float64()*1000, rng.Float64()*1000)
		b.Velocity = Vector{(rng.Float64() - 0.5) * 10, (rng.Float64() - 0.5) * 10}
		bodies[i] = b
	}
	return bodies
}

func BenchmarkAccumulate(b *testing.B) {
	for _, count := range []int{60, 500} {
		b.Run(fmt.Sprintf("Bodies-%d", count), func(b *testing.B) {
			bodies := randomBodies(rand.New(rand.NewSource(3)), count)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Accumulate(bodies)
			}
		})
	}
}
