package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"orbitcam/game"
)

// ebitenSink draws renderer output onto an ebiten image through a viewport
type ebitenSink struct {
	dst        *ebiten.Image
	viewport   *game.Viewport
	background color.Color
	foreground color.Color
}

func (s *ebitenSink) Clear() {
	s.dst.Fill(s.background)
}

func (s *ebitenSink) DrawFilledCircle(x, y, radius float64) {
	sx, sy := s.viewport.WorldToScreen(x, y)
	r := radius * s.viewport.Zoom
	if r < 1 {
		r = 1
	}
	// Skip if outside the window
	if !s.viewport.Visible(sx, sy, r) {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(sx), float32(sy), float32(r), s.foreground, true)
}
