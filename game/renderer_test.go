package game

import (
	"testing"

	"orbitcam/physics"
)

func TestRendererCentreRelativePosition(t *testing.T) {
	centre := &physics.Body{Position: physics.Vector{X: 5, Y: 5}, Mass: 150}
	other := &physics.Body{Position: physics.Vector{X: 7, Y: 5}, Mass: 1}
	r := NewRenderer(centre, []*physics.Body{centre, other}, physics.Vector{X: 3000, Y: 3000}, 3)

	if got := r.Shift(); got != (physics.Vector{X: 2995, Y: 2995}) {
		t.Errorf("Shift() = %v, want {2995 2995}", got)
	}
	if got := r.ScreenPosition(other.Position); got != (physics.Vector{X: 3002, Y: 3000}) {
		t.Errorf("ScreenPosition = %v, want {3002 3000}", got)
	}
}

func TestRendererDraw(t *testing.T) {
	centre := &physics.Body{Position: physics.Vector{X: 5, Y: 5}, Mass: 150}
	other := &physics.Body{Position: physics.Vector{X: 7, Y: 5}, Mass: 1}
	far := &physics.Body{Position: physics.Vector{X: -100, Y: 40}, Mass: 1}
	r := NewRenderer(centre, []*physics.Body{centre, other, far}, physics.Vector{X: 3000, Y: 3000}, 3)

	sink := &recordingSink{}
	r.Draw(sink)

	if sink.clears != 1 {
		t.Errorf("Clear called %d times, want 1", sink.clears)
	}

	want := []drawCall{
		{3000, 3000, 3}, // origin marker
		{3000, 3000, 3}, // centre body
		{3002, 3000, 3},
		{2895, 3035, 3},
	}
	if len(sink.calls) != len(want) {
		t.Fatalf("got %d draw calls, want %d: %v", len(sink.calls), len(want), sink.calls)
	}
	for i := range want {
		if sink.calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, sink.calls[i], want[i])
		}
	}
}

func TestRendererFollowsCentre(t *testing.T) {
	centre := &physics.Body{Position: physics.Vector{X: 0, Y: 0}, Mass: 1}
	r := NewRenderer(centre, []*physics.Body{centre}, physics.Vector{X: 3000, Y: 3000}, 3)

	centre.Position = physics.Vector{X: 123, Y: -45}

	sink := &recordingSink{}
	r.Draw(sink)
	if got := sink.calls[1]; got.X != 3000 || got.Y != 3000 {
		t.Errorf("centre drawn at (%v, %v), want (3000, 3000)", got.X, got.Y)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		vp     *Viewport
		wx, wy float64
		sx, sy float64
	}{
		{"Centre", NewViewport(3000, 3000, 1024, 768, 1), 3000, 3000, 512, 384},
		{"Offset", NewViewport(3000, 3000, 1024, 768, 1), 3010, 2990, 522, 374},
		{"Zoomed", NewViewport(3000, 3000, 100, 50, 0.05), 3200, 3000, 60, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := tt.vp.WorldToScreen(tt.wx, tt.wy)
			if !approx(sx, tt.sx) || !approx(sy, tt.sy) {
				t.Errorf("WorldToScreen = (%v, %v), want (%v, %v)", sx, sy, tt.sx, tt.sy)
			}
			wx, wy := tt.vp.ScreenToWorld(sx, sy)
			if !approx(wx, tt.wx) || !approx(wy, tt.wy) {
				t.Errorf("ScreenToWorld = (%v, %v), want (%v, %v)", wx, wy, tt.wx, tt.wy)
			}
		})
	}
}

func TestViewportVisible(t *testing.T) {
	vp := NewViewport(0, 0, 100, 100, 1)

	if !vp.Visible(50, 50, 3) {
		t.Error("centre not visible")
	}
	if !vp.Visible(-2, 50, 3) {
		t.Error("circle overlapping left edge not visible")
	}
	if vp.Visible(-10, 50, 3) {
		t.Error("circle left of viewport visible")
	}

	vp.Resize(200, 100)
	if !vp.Visible(150, 50, 3) {
		t.Error("resize not applied")
	}
}
