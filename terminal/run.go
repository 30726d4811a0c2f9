package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"orbitcam/game"
)

// Options tunes the terminal loop
type Options struct {
	// Zoom is columns per raster unit
	Zoom float64
	// Provider supplies frame timestamps, SystemTime when nil
	Provider game.TimeProvider
}

// Run drives app on screen until ctx is done or the user quits. Each
// iteration blocks for the next tick, feeds its timestamp to the app,
// renders and shows the frame.
func Run(ctx context.Context, screen tcell.Screen, app *game.App, opts Options) error {
	cfg := app.Config()
	if opts.Zoom <= 0 {
		opts.Zoom = 0.05
	}
	if opts.Provider == nil {
		opts.Provider = game.SystemTime{}
	}

	w, h := screen.Size()
	viewport := game.NewViewport(cfg.ScreenCentre, cfg.ScreenCentre, float64(w), float64(h), opts.Zoom)
	fg := cfg.ForegroundColor()
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))
	sink := NewSink(screen, viewport, style)
	clock := game.NewTimestampSource(opts.Provider)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				viewport.Resize(float64(w), float64(h))
				screen.Sync()
			case *tcell.EventKey:
				if handleKey(ev, app) {
					return nil
				}
			}
		case <-ticker.C:
			app.Frame(clock.Millis(), sink)
			if app.Debug().ShowHUD {
				drawHUD(screen, app.Stats())
			}
			screen.Show()
		}
	}
}

// handleKey applies a key press and reports whether the loop should exit
func handleKey(ev *tcell.EventKey, app *game.App) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyF1:
		app.Debug().ToggleHUD()
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case ' ', 'p':
		app.TogglePause()
	case 'n':
		app.StepOnce()
	case 'r':
		app.Reset()
	}
	return false
}

func drawHUD(screen tcell.Screen, st game.Stats) {
	line := fmt.Sprintf(" fps %.0f  bodies %d  steps %d  t=%.1fs  p=(%.1f,%.1f) ",
		st.FPS, st.Bodies, st.Steps, st.SimTime, st.Momentum.X, st.Momentum.Y)
	if st.NonFinite > 0 {
		line += fmt.Sprintf(" non-finite %d ", st.NonFinite)
	}
	if st.Paused {
		line += " PAUSED "
	}
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range line {
		screen.SetContent(i, 0, r, nil, style)
	}
}
