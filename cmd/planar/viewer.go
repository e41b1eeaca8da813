package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/planar/pkg/math3d"
	"github.com/taigrr/planar/pkg/render"
	"github.com/taigrr/planar/pkg/surface"
)

// HUD renders the probe readout over the surface map.
type HUD struct {
	show bool
}

// Render draws the HUD directly to the terminal.
func (h *HUD) Render(height int, s *surface.PlaneSurface, probe math3d.Vec2, scale float64) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgRed     = "\x1b[91m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD row (so toggling off works)
	fmt.Print(moveTo(height, 1) + clearLine)
	if !h.show {
		return
	}

	global := s.Local2DToGlobal(probe)
	status := fgRed + "outside"
	if s.ContainsLocal(probe) {
		status = fgGreen + "inside"
	}

	line := fmt.Sprintf("%s%s local %v  global %v  %s%s  %s%g/px %s",
		bgBlack, fgWhite, probe, global, bold, status, reset+bgBlack+fgWhite, scale, reset)
	fmt.Print(moveTo(height, 1) + line)
}

// viewer holds the state shared between input handling and drawing.
type viewer struct {
	surface *surface.PlaneSurface
	probe   *Probe
	hud     *HUD
	smap    *render.SurfaceMap
	fb      *render.Framebuffer
	width   int
	height  int
}

// resize rebuilds the framebuffer: one terminal row is kept for the HUD.
func (v *viewer) resize(width, height int) {
	v.width, v.height = width, height
	rows := max(height-1, 1)
	v.fb = render.NewFramebuffer(width, rows*2)
}

// handle applies one terminal event and reports whether the viewer should
// quit.
func (v *viewer) handle(ev uv.Event) bool {
	step := 4 * v.smap.Scale

	switch ev := ev.(type) {
	case uv.KeyPressEvent:
		switch {
		case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
			return true
		case ev.MatchString("w", "up"):
			v.probe.Target.Y += step
		case ev.MatchString("s", "down"):
			v.probe.Target.Y -= step
		case ev.MatchString("a", "left"):
			v.probe.Target.X -= step
		case ev.MatchString("d", "right"):
			v.probe.Target.X += step
		case ev.MatchString("+", "="):
			v.smap.Scale /= 1.25
		case ev.MatchString("-", "_"):
			v.smap.Scale *= 1.25
		case ev.MatchString("r"):
			v.probe.Reset()
			v.smap.Fit(v.fb)
		case ev.MatchString("?"), ev.MatchString("shift+/"):
			v.hud.show = !v.hud.show
		}

	case uv.MouseClickEvent:
		// Each terminal row holds two framebuffer rows.
		v.probe.Target = v.smap.LocalAt(v.fb, ev.X, ev.Y*2)
	}
	return false
}

// draw renders the map and the probe marker into the framebuffer.
func (v *viewer) draw() {
	v.smap.Render(v.fb)

	local := v.probe.Local()
	c := render.ColorProbeOff
	if v.surface.ContainsLocal(local) {
		c = render.ColorProbeOn
	}
	x, y := v.smap.PixelAt(v.fb, local)
	v.fb.DrawCross(x, y, 2, c)
}

func runViewer(s *surface.PlaneSurface, fps int) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1000h") // Button event tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // SGR extended mouse mode

	v := &viewer{
		surface: s,
		probe:   NewProbe(fps),
		hud:     &HUD{show: true},
	}
	v.resize(width, height)
	v.smap = render.NewSurfaceMap(s, 1)
	v.smap.Fit(v.fb)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1000l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	events := term.Events()
	targetDuration := time.Second / time.Duration(fps)

	for {
		now := time.Now()

		// Drain pending input before drawing the frame.
	drain:
		for {
			select {
			case <-ctx.Done():
				cleanup()
				return nil
			case ev := <-events:
				if ws, ok := ev.(uv.WindowSizeEvent); ok {
					term.Erase()
					term.Resize(ws.Width, ws.Height)
					v.resize(ws.Width, ws.Height)
					continue
				}
				if v.handle(ev) {
					cleanup()
					return nil
				}
			default:
				break drain
			}
		}

		v.probe.Update()
		v.draw()

		rows := v.fb.Height / 2
		v.fb.Draw(term, uv.Rectangle(image.Rect(0, 0, v.width, rows)))
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}
		v.hud.Render(v.height, s, v.probe.Local(), v.smap.Scale)

		// Frame timing
		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
