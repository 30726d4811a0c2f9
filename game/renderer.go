package game

import (
	"orbitcam/physics"
)

// Sink is a 2D raster surface the renderer draws on
type Sink interface {
	Clear()
	DrawFilledCircle(x, y, radius float64)
}

// Renderer draws every body relative to the centre body. It is a pure
// translation camera: no zoom, no rotation, no culling.
type Renderer struct {
	centre       *physics.Body
	bodies       []*physics.Body
	screenCentre physics.Vector
	radius       float64
}

// NewRenderer creates a renderer tracking centre. screenCentre is where
// the centre body lands on the raster.
func NewRenderer(centre *physics.Body, bodies []*physics.Body, screenCentre physics.Vector, radius float64) *Renderer {
	return &Renderer{
		centre:       centre,
		bodies:       bodies,
		screenCentre: screenCentre,
		radius:       radius,
	}
}

// Shift returns the translation from world to raster coordinates
func (r *Renderer) Shift() physics.Vector {
	return r.centre.Position.Negate().Add(r.screenCentre)
}

// ScreenPosition converts a world position to raster coordinates
func (r *Renderer) ScreenPosition(world physics.Vector) physics.Vector {
	return world.Add(r.Shift())
}

// Draw clears the sink, marks the screen centre and draws every body
func (r *Renderer) Draw(sink Sink) {
	sink.Clear()
	sink.DrawFilledCircle(r.screenCentre.X, r.screenCentre.Y, r.radius)

	shift := r.Shift()
	for _, b := range r.bodies {
		p := b.Position.Add(shift)
		sink.DrawFilledCircle(p.X, p.Y, r.radius)
	}
}

// Viewport maps raster coordinates onto an output device of a given size
type Viewport struct {
	X, Y   float64 // Raster point shown at the middle of the device
	Zoom   float64 // Device units per raster unit
	Width  float64 // Device width
	Height float64 // Device height
}

// NewViewport creates a viewport looking at (x, y)
func NewViewport(x, y, width, height, zoom float64) *Viewport {
	return &Viewport{
		X:      x,
		Y:      y,
		Zoom:   zoom,
		Width:  width,
		Height: height,
	}
}

// WorldToScreen converts raster coordinates to device coordinates
func (v *Viewport) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := (wx - v.X) * v.Zoom
	sy := (wy - v.Y) * v.Zoom
	return sx + v.Width/2, sy + v.Height/2
}

// ScreenToWorld converts device coordinates back to raster coordinates
func (v *Viewport) ScreenToWorld(sx, sy float64) (float64, float64) {
	wx := (sx - v.Width/2) / v.Zoom
	wy := (sy - v.Height/2) / v.Zoom
	return wx + v.X, wy + v.Y
}

// Visible reports whether a circle at device coordinates touches the device
func (v *Viewport) Visible(sx, sy, radius float64) bool {
	return sx+radius >= 0 && sx-radius <= v.Width &&
		sy+radius >= 0 && sy-radius <= v.Height
}

// Resize updates the device size, keeping the look-at point
func (v *Viewport) Resize(width, height float64) {
	v.Width = width
	v.Height = height
}
