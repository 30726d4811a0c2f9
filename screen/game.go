package screen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"orbitcam/game"
)

// Game adapts a game.App to ebiten's update/draw loop. ebiten's tick is
// the frame scheduler, the window image is the raster sink.
type Game struct {
	app      *game.App
	clock    *game.TimestampSource
	viewport *game.Viewport
	sink     *ebitenSink
}

// NewGame wires app to a window of the configured size, centred on the
// renderer's screen centre.
func NewGame(app *game.App, provider game.TimeProvider) *Game {
	cfg := app.Config()
	viewport := game.NewViewport(
		cfg.ScreenCentre, cfg.ScreenCentre,
		float64(cfg.ScreenWidth), float64(cfg.ScreenHeight),
		cfg.Zoom,
	)

	return &Game{
		app:      app,
		clock:    game.NewTimestampSource(provider),
		viewport: viewport,
		sink: &ebitenSink{
			viewport:   viewport,
			background: cfg.BackgroundColor(),
			foreground: cfg.ForegroundColor(),
		},
	}
}

// Update handles input, then feeds the frame timestamp to the app
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.app.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.app.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.app.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.app.Debug().ToggleHUD()
	}

	g.app.Tick(g.clock.Millis())
	return nil
}

// Draw renders the bodies and the overlay
func (g *Game) Draw(screen *ebiten.Image) {
	g.sink.dst = screen
	g.app.Render(g.sink)

	if g.app.Debug().ShowHUD {
		g.drawHUD(screen)
	}
}

// Layout keeps the viewport in sync with the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewport.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	st := g.app.Stats()
	lines := []string{
		fmt.Sprintf("FPS: %.0f  TPS: %.0f", st.FPS, ebiten.ActualTPS()),
		fmt.Sprintf("bodies: %d  steps: %d  t=%.1fs", st.Bodies, st.Steps, st.SimTime),
		fmt.Sprintf("momentum: (%.2f, %.2f)", st.Momentum.X, st.Momentum.Y),
		fmt.Sprintf("seed: %d", st.Seed),
	}
	if st.NonFinite > 0 {
		lines = append(lines, fmt.Sprintf("non-finite bodies: %d", st.NonFinite))
	}
	if st.Paused {
		lines = append(lines, "PAUSED (N step, P resume)")
	}
	lines = append(lines, "P pause  R reset  F1 hud  Esc quit")

	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, 6, 16*(i+1), color.White)
	}
}
