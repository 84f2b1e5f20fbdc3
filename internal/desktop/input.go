package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"pingpong/internal/game"
)

var keymap = map[glfw.Key]game.Key{
	glfw.KeyLeft:      game.KeyLeft,
	glfw.KeyRight:     game.KeyRight,
	glfw.KeyUp:        game.KeyUp,
	glfw.KeyDown:      game.KeyDown,
	glfw.KeyA:         game.KeyA,
	glfw.KeyD:         game.KeyD,
	glfw.KeyW:         game.KeyW,
	glfw.KeyS:         game.KeyS,
	glfw.KeyY:         game.KeyY,
	glfw.KeyN:         game.KeyN,
	glfw.KeyTab:       game.KeyTab,
	glfw.KeyEnter:     game.KeyEnter,
	glfw.KeyKPEnter:   game.KeyEnter,
	glfw.KeyBackspace: game.KeyBackspace,
	glfw.KeyEscape:    game.KeyEscape,
}

// glfwKeys maps back to the physical key polled for held state.
var glfwKeys = func() map[game.Key]glfw.Key {
	m := make(map[game.Key]glfw.Key, len(keymap))
	for gk, k := range keymap {
		if gk == glfw.KeyKPEnter {
			continue
		}
		m[k] = gk
	}
	return m
}()

func translateKey(k glfw.Key) game.Key {
	if gk, ok := keymap[k]; ok {
		return gk
	}
	return game.KeyUnknown
}

// Input queues key and char callbacks and reports held keys from the window.
// Escape and the close button both queue a quit.
type Input struct {
	window *glfw.Window
	events []game.InputEvent
	quit   bool
}

func newInput(window *glfw.Window) *Input {
	in := &Input{window: window}
	window.SetKeyCallback(in.onKey)
	window.SetCharCallback(in.onChar)
	window.SetCloseCallback(in.onClose)
	return in
}

func (in *Input) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	k := translateKey(key)
	switch k {
	case game.KeyUnknown:
		return
	case game.KeyEscape:
		in.pushQuit()
		return
	}
	in.events = append(in.events, game.InputEvent{Kind: game.InputKeyPress, Key: k})
}

func (in *Input) onChar(_ *glfw.Window, ch rune) {
	in.events = append(in.events, game.InputEvent{Kind: game.InputChar, Char: ch})
}

func (in *Input) onClose(_ *glfw.Window) {
	in.pushQuit()
}

func (in *Input) pushQuit() {
	if in.quit {
		return
	}
	in.quit = true
	log.Debugf("Quit requested")
	in.events = append(in.events, game.InputEvent{Kind: game.InputQuit})
}

// KeyDown reports whether k is currently held.
func (in *Input) KeyDown(k game.Key) bool {
	gk, ok := glfwKeys[k]
	if !ok {
		return false
	}
	return in.window.GetKey(gk) == glfw.Press
}

// PollEvents pumps the window and drains the queue. Once a quit has been seen
// every later poll reports it again.
func (in *Input) PollEvents() []game.InputEvent {
	glfw.PollEvents()
	evs := in.events
	in.events = nil
	if in.quit && (len(evs) == 0 || evs[len(evs)-1].Kind != game.InputQuit) {
		evs = append(evs, game.InputEvent{Kind: game.InputQuit})
	}
	return evs
}
