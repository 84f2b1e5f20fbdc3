// Package desktop binds the game to a GLFW window, an OpenGL renderer, oto
// audio and native dialogs.
//
// All methods must be called from the goroutine locked to the main OS thread.
package desktop

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"pingpong/internal/game"
)

// App owns the window and everything bound to its GL context.
type App struct {
	Window   *glfw.Window
	Renderer *Renderer
	Input    *Input
	Clock    Clock
	Audio    *Audio // nil when muted or the device failed
}

// Open creates the window and GL state. Audio failures are logged and the app
// continues silently.
func Open(cfg game.Config) (*App, error) {
	window, err := initWindow(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		return nil, err
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Debugf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := newRenderer(window, cfg.Width, cfg.Height)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	app := &App{
		Window:   window,
		Renderer: rend,
		Input:    newInput(window),
	}

	if cfg.Audio.Enabled {
		audio, err := NewAudio(cfg.Audio)
		if err != nil {
			log.Warnf("Audio init failed (continuing without sound): %v", err)
		} else {
			app.Audio = audio
		}
	}
	return app, nil
}

// Notifier returns a dialog notifier that also plays the error sound.
func (a *App) Notifier() DialogNotifier {
	return DialogNotifier{Audio: a.Audio}
}

// Close releases GL resources, the window and GLFW.
func (a *App) Close() {
	a.Renderer.Destroy()
	a.Window.Destroy()
	glfw.Terminate()
}
