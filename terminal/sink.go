package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"orbitcam/game"
)

// cellAspect is how much taller a terminal cell is than it is wide
const cellAspect = 2.0

// BodyRune marks a body too small to cover more than one cell
const BodyRune = '●'

// Sink draws renderer output as cells on a tcell screen. The viewport
// works in columns; rows are squashed by cellAspect.
type Sink struct {
	screen   tcell.Screen
	viewport *game.Viewport
	style    tcell.Style
}

// NewSink creates a sink for screen
func NewSink(screen tcell.Screen, viewport *game.Viewport, style tcell.Style) *Sink {
	return &Sink{
		screen:   screen,
		viewport: viewport,
		style:    style,
	}
}

// Clear blanks the screen
func (s *Sink) Clear() {
	s.screen.Clear()
}

// DrawFilledCircle fills every cell whose centre lies within the circle,
// or a single cell when the circle is smaller than one
func (s *Sink) DrawFilledCircle(x, y, radius float64) {
	cx, cy := s.viewport.WorldToScreen(x, y)
	cy = s.viewport.Height/2 + (cy-s.viewport.Height/2)/cellAspect
	r := radius * s.viewport.Zoom

	if math.IsNaN(cx) || math.IsNaN(cy) || math.IsInf(cx, 0) || math.IsInf(cy, 0) {
		return
	}

	if r < 1 {
		s.set(int(math.Floor(cx)), int(math.Floor(cy)))
		return
	}

	ry := r / cellAspect
	for row := int(math.Floor(cy - ry)); row <= int(math.Ceil(cy+ry)); row++ {
		for col := int(math.Floor(cx - r)); col <= int(math.Ceil(cx+r)); col++ {
			dx := (float64(col) + 0.5 - cx) / r
			dy := (float64(row) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				s.set(col, row)
			}
		}
	}
}

func (s *Sink) set(col, row int) {
	w, h := s.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	s.screen.SetContent(col, row, BodyRune, nil, s.style)
}
