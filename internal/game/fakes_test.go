package game

import (
	"strings"
	"time"
)

// recordingCanvas keeps every text and present so tests can inspect the
// frames the loop produced.
type recordingCanvas struct {
	w, h     int
	title    string
	texts    []string
	rects    []Rect
	circles  int
	presents int
}

func newRecordingCanvas(cfg Config) *recordingCanvas {
	return &recordingCanvas{w: cfg.Width, h: cfg.Height}
}

func (c *recordingCanvas) Size() (int, int)                   { return c.w, c.h }
func (c *recordingCanvas) SetTitle(title string)              { c.title = title }
func (c *recordingCanvas) Clear(RGB)                          {}
func (c *recordingCanvas) FillRect(r Rect, _ RGBA)            { c.rects = append(c.rects, r) }
func (c *recordingCanvas) FillCircle(_, _, _ float64, _ RGBA) { c.circles++ }
func (c *recordingCanvas) DrawText(text string, _, _ int, _ float32, _ RGB) {
	c.texts = append(c.texts, text)
}
func (c *recordingCanvas) TextWidth(text string, scale float32) int {
	return int(float32(len(text)*6) * scale)
}
func (c *recordingCanvas) Present() { c.presents++ }

func (c *recordingCanvas) drew(text string) bool {
	for _, t := range c.texts {
		if t == text {
			return true
		}
	}
	return false
}

func (c *recordingCanvas) drewPrefix(prefix string) bool {
	for _, t := range c.texts {
		if strings.HasPrefix(t, prefix) {
			return true
		}
	}
	return false
}

// scriptedInput replays one batch of events per poll. Once the script runs
// out it keeps reporting a quit so loops always terminate.
type scriptedInput struct {
	held   map[Key]bool
	script [][]InputEvent
	polls  int
}

func newScriptedInput(script ...[]InputEvent) *scriptedInput {
	return &scriptedInput{held: make(map[Key]bool), script: script}
}

func (in *scriptedInput) KeyDown(k Key) bool { return in.held[k] }

func (in *scriptedInput) PollEvents() []InputEvent {
	in.polls++
	if len(in.script) == 0 {
		return []InputEvent{{Kind: InputQuit}}
	}
	batch := in.script[0]
	in.script = in.script[1:]
	return batch
}

func keyPress(k Key) []InputEvent { return []InputEvent{{Kind: InputKeyPress, Key: k}} }

// steppingClock advances by step on every Now call, so each frame of the
// loop sees exactly one tick when step equals the tick duration.
type steppingClock struct {
	now   time.Duration
	step  time.Duration
	waits []time.Duration
}

func (c *steppingClock) Now() time.Duration {
	c.now += c.step
	return c.now
}

func (c *steppingClock) Wait(d time.Duration) {
	c.waits = append(c.waits, d)
	c.now += d
}

// heldKeys is an Input with a fixed key set and no events.
type heldKeys map[Key]bool

func (h heldKeys) KeyDown(k Key) bool       { return h[k] }
func (h heldKeys) PollEvents() []InputEvent { return nil }

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.WelcomeDelayMS = 0
	cfg.ResetDelayMS = 0
	cfg.WinDelayMS = 0
	return cfg
}
