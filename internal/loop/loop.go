// Package loop runs the frame loop: poll input, step the simulation,
// draw the frame, sleep the remainder of the frame budget.
package loop

import (
	"bufio"
	"io"
	"time"

	"schwarzschild/internal/draw"
	"schwarzschild/internal/input"
	"schwarzschild/internal/sim"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// The simulation runs in a fixed logical view centered on the planet.
// Rendering scales it to whatever terminal it lands on.
const (
	viewWidth  = 1280.0
	viewHeight = 720.0
)

// Options configures a session's loop.
type Options struct {
	// TermSize reports the terminal dimensions each frame. Defaults to
	// the size of os.Stdout.
	TermSize draw.TermSizeFunc

	// Tuning holds the simulation parameters. The zero value means
	// the stock defaults.
	Tuning sim.Tuning
}

// Run drives one game session over the given reader and writer until
// the player quits or the reader closes. It assumes the terminal is
// already in raw mode.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSize == nil {
		opts.TermSize = draw.DefaultTermSizeFunc
	}
	if opts.Tuning == (sim.Tuning{}) {
		opts.Tuning = sim.DefaultTuning()
	}

	world := sim.NewWorld(opts.Tuning)
	stream := input.StartStream(r)
	bounds := sim.Bounds{HalfW: viewWidth / 2, HalfH: viewHeight / 2}

	out := bufio.NewWriterSize(w, 1<<15)
	draw.HideCursor(out)
	defer func() {
		draw.ShowCursor(out)
		out.Flush()
	}()
	draw.ClearScreen(out)
	out.Flush()

	termWidth, termHeight, _ := opts.TermSize()
	canvas := draw.NewCanvas(termWidth, termHeight, viewWidth, viewHeight)

	lastTime := time.Now()
	for {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		in := input.Poll(stream)
		if in.Quit {
			break
		}

		if tw, th, err := opts.TermSize(); err == nil {
			canvas.Resize(tw, th)
		}

		world.Step(sim.Input{
			Left:    in.Left,
			Right:   in.Right,
			Thrust:  in.Thrust,
			Fire:    in.Fire,
			Confirm: in.Confirm,
			Overlay: in.Overlay,
		}, bounds, dt)

		if err := renderFrame(world, canvas, out); err != nil {
			return err
		}
		if err := out.Flush(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(out)
	return out.Flush()
}
