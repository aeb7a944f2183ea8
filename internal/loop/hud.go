package loop

import (
	"fmt"
	"io"
	"strconv"

	"schwarzschild/internal/draw"
	"schwarzschild/internal/sim"
)

// drawTitleScreen draws the title screen text.
func drawTitleScreen(w io.Writer, canvas *draw.Canvas) {
	centerX := canvas.TerminalWidth() / 2
	centerY := canvas.TerminalHeight() / 2

	title := "S C H W A R Z S C H I L D"
	draw.MoveCursor(w, centerX-len(title)/2, centerY-2)
	fmt.Fprint(w, title)

	subtitle := "Press SPACE to start"
	draw.MoveCursor(w, centerX-len(subtitle)/2, centerY+1)
	fmt.Fprint(w, subtitle)

	controls := "A/D rotate, W thrust, SPACE shoot, T trajectory, Q quit"
	draw.MoveCursor(w, centerX-len(controls)/2, centerY+4)
	fmt.Fprint(w, controls)
}

// drawPlayingHUD draws the in-game score readout.
func drawPlayingHUD(world *sim.World, w io.Writer) {
	draw.MoveCursor(w, 2, 1)
	fmt.Fprintf(w, "Score: %s", formatScore(world.Score()))
}

// drawGameOverScreen draws the end-of-session screen.
func drawGameOverScreen(world *sim.World, w io.Writer, canvas *draw.Canvas) {
	centerX := canvas.TerminalWidth() / 2
	centerY := canvas.TerminalHeight() / 2

	title := "GAME OVER"
	draw.MoveCursor(w, centerX-len(title)/2, centerY-2)
	fmt.Fprint(w, title)

	scoreText := fmt.Sprintf("Final score: %s", formatScore(world.Score()))
	draw.MoveCursor(w, centerX-len(scoreText)/2, centerY)
	fmt.Fprint(w, scoreText)

	prompt := "Press SPACE to restart"
	draw.MoveCursor(w, centerX-len(prompt)/2, centerY+2)
	fmt.Fprint(w, prompt)
}

// formatScore renders n with comma thousands separators.
func formatScore(n int) string {
	s := strconv.Itoa(n)
	start := 0
	if n < 0 {
		start = 1
	}
	digits := len(s) - start
	if digits <= 3 {
		return s
	}
	out := make([]byte, 0, len(s)+digits/3)
	out = append(out, s[:start]...)
	lead := digits % 3
	if lead == 0 {
		lead = 3
	}
	out = append(out, s[start:start+lead]...)
	for i := start + lead; i < len(s); i += 3 {
		out = append(out, ',')
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
