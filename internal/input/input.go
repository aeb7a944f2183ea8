// Package input reads raw terminal bytes into a per-frame pressed
// state. A key counts as pressed if it was seen within a short hold
// window, which lets simultaneous key combinations survive terminal
// key repeat.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input is the pressed state for one frame, polled once per frame with
// no buffering of missed presses.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Thrust  bool
	Fire    bool
	Confirm bool
	Overlay bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit    time.Time
	left    time.Time
	right   time.Time
	thrust  time.Time
	fire    time.Time
	confirm time.Time
	overlay time.Time
}

// Stream delivers input bytes via a channel and tracks key state.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to
// the stream until the reader fails (e.g. the session closed).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all available bytes from the stream without blocking and
// returns the current pressed state. Arrow-key escape sequences map
// onto the same actions as their letter keys. A closed stream reports
// Quit so the session winds down.
func Poll(s *Stream) Input {
	now := time.Now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code> for arrow keys
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.thrust = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	held := func(ts time.Time) bool { return now.Sub(ts) < keyHoldDuration }
	return Input{
		Quit:    s.closed || held(s.state.quit),
		Left:    held(s.state.left),
		Right:   held(s.state.right),
		Thrust:  held(s.state.thrust),
		Fire:    held(s.state.fire),
		Confirm: held(s.state.confirm),
		Overlay: held(s.state.overlay),
	}
}

// applyByteToState updates the key state timestamps for a pressed byte.
// Space both fires and confirms: it shoots during play and starts or
// restarts the game on the menu screens.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', 0x03: // q or Ctrl-C
		state.quit = now
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case 'w', 'W':
		state.thrust = now
	case ' ':
		state.fire = now
		state.confirm = now
	case '\n', '\r':
		state.confirm = now
	case 't', 'T':
		state.overlay = now
	}
}
