package game

import (
	"errors"
	"time"
)

// ErrQuit reports that the player closed the window or pressed Escape.
var ErrQuit = errors.New("quit requested")

// Key is a platform-independent key identifier.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyD
	KeyW
	KeyS
	KeyY
	KeyN
	KeyTab
	KeyEnter
	KeyBackspace
	KeyEscape
)

type InputKind int

const (
	InputQuit InputKind = iota
	InputKeyPress
	InputChar
)

// InputEvent is a discrete event drained from the platform queue.
type InputEvent struct {
	Kind InputKind
	Key  Key  // InputKeyPress
	Char rune // InputChar
}

// Input exposes held keys and the discrete event queue.
type Input interface {
	KeyDown(k Key) bool
	PollEvents() []InputEvent
}

// Canvas is the drawing surface. Coordinates are logical screen pixels with the
// origin at the top-left corner. Nothing is visible until Present.
type Canvas interface {
	Size() (w, h int)
	SetTitle(title string)
	Clear(c RGB)
	FillRect(r Rect, c RGBA)
	FillCircle(cx, cy, radius float64, c RGBA)
	DrawText(text string, x, y int, scale float32, c RGB)
	TextWidth(text string, scale float32) int
	Present()
}

// Clock supplies monotonic time and blocking waits.
type Clock interface {
	Now() time.Duration
	Wait(d time.Duration)
}

// hasQuit reports whether events contain a quit request.
func hasQuit(events []InputEvent) bool {
	for _, ev := range events {
		if ev.Kind == InputQuit {
			return true
		}
	}
	return false
}
