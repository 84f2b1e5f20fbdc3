// Package setup implements the pre-game form that collects player names and
// the target score.
package setup

import (
	"context"
	"errors"
	"strconv"

	"pingpong/internal/game"
)

const (
	Title        = "Ping Pong Game Setup"
	MaxFieldLen  = 16
	InvalidTitle = "Invalid Input"
	InvalidMsg   = "Target must be a positive integer"
)

// ErrInvalidTarget is returned when the target is empty or not all digits.
var ErrInvalidTarget = errors.New("target must be a positive integer")

// Notifier reports user-facing errors.
type Notifier interface {
	Error(title, msg string)
}

// Field identifies a focus stop on the form.
type Field int

const (
	FieldPlayer1 Field = iota
	FieldPlayer2
	FieldTarget
	FieldStart
	fieldCount
)

var labels = [fieldCount]string{"User 1 Name:", "User 2 Name:", "Target Score:", "Start Game"}

// Form is the setup screen state. The zero value is not usable; use NewForm.
type Form struct {
	values   [FieldStart]string
	focus    Field
	notifier Notifier
}

func NewForm(n Notifier) *Form {
	return &Form{notifier: n}
}

func (f *Form) Focus() Field { return f.focus }

// Value returns the text typed into a field.
func (f *Form) Value(field Field) string {
	if field < 0 || field >= FieldStart {
		return ""
	}
	return f.values[field]
}

// SetValue prefills a text field, truncated to MaxFieldLen.
func (f *Form) SetValue(field Field, v string) {
	if field < 0 || field >= FieldStart {
		return
	}
	if len(v) > MaxFieldLen {
		v = v[:MaxFieldLen]
	}
	f.values[field] = v
}

// HandleChar appends a printable character to the focused field.
func (f *Form) HandleChar(r rune) {
	if f.focus >= FieldStart || r < ' ' || r > '~' {
		return
	}
	v := f.values[f.focus]
	if len(v) >= MaxFieldLen {
		return
	}
	f.values[f.focus] = v + string(r)
}

// HandleKey applies a navigation or editing key. It reports true when the
// key asked to submit the form.
func (f *Form) HandleKey(k game.Key) (submit bool) {
	switch k {
	case game.KeyTab, game.KeyDown:
		f.focus = (f.focus + 1) % fieldCount
	case game.KeyUp:
		f.focus = (f.focus + fieldCount - 1) % fieldCount
	case game.KeyBackspace:
		if f.focus < FieldStart {
			v := f.values[f.focus]
			if len(v) > 0 {
				f.values[f.focus] = v[:len(v)-1]
			}
		}
	case game.KeyEnter:
		return true
	}
	return false
}

// Submit validates the form. On an invalid target the notifier is told and
// the form keeps its contents.
func (f *Form) Submit() (game.Params, error) {
	p, err := Resolve(f.values[FieldPlayer1], f.values[FieldPlayer2], f.values[FieldTarget])
	if err != nil {
		log.Debugf("Rejected target %q", f.values[FieldTarget])
		if f.notifier != nil {
			f.notifier.Error(InvalidTitle, InvalidMsg)
		}
		return game.Params{}, err
	}
	return p, nil
}

// ParseTarget accepts a non-empty string of ASCII digits.
func ParseTarget(s string) (int, error) {
	if s == "" {
		return 0, ErrInvalidTarget
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidTarget
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidTarget
	}
	return n, nil
}

// Resolve turns raw form or flag values into game parameters.
func Resolve(player1, player2, target string) (game.Params, error) {
	n, err := ParseTarget(target)
	if err != nil {
		return game.Params{}, err
	}
	return game.Params{Player1: player1, Player2: player2, Target: n}.WithDefaults(), nil
}

// Draw paints the form and presents it.
func (f *Form) Draw(c game.Canvas) {
	const (
		scale   = 3
		labelX  = 90
		fieldX  = 380
		fieldW  = 320
		rowH    = 60
		rowGap  = 40
		padding = 18
	)
	w, h := c.Size()
	c.Clear(game.Palette.Background)

	tw := c.TextWidth(Title, scale)
	c.DrawText(Title, w/2-tw/2, 60, scale, game.Palette.Text)

	top := h/2 - (int(fieldCount)*(rowH+rowGap))/2
	for i := Field(0); i < fieldCount; i++ {
		y := top + int(i)*(rowH+rowGap)
		bg := game.Palette.Field
		if i == f.focus {
			bg = game.Palette.FieldFocus
		}
		if i == FieldStart {
			bw := c.TextWidth(labels[i], scale) + 2*padding
			c.FillRect(game.Rect{X: float64(w/2 - bw/2), Y: float64(y), W: float64(bw), H: rowH}, bg.Opaque())
			c.DrawText(labels[i], w/2-bw/2+padding, y+padding, scale, game.Palette.Text)
			continue
		}
		c.DrawText(labels[i], labelX, y+padding, scale, game.Palette.Text)
		c.FillRect(game.Rect{X: fieldX, Y: float64(y), W: fieldW, H: rowH}, bg.Opaque())
		text := f.values[i]
		if i == f.focus {
			text += "_"
		}
		c.DrawText(text, fieldX+padding/2, y+padding, scale, game.Palette.Text)
	}
	c.Present()
}

// Run shows the form until a valid submit. Quitting returns game.ErrQuit.
func (f *Form) Run(ctx context.Context, c game.Canvas, in game.Input, clock game.Clock) (game.Params, error) {
	c.SetTitle(Title)
	dirty := true
	for {
		if ctx.Err() != nil {
			return game.Params{}, game.ErrQuit
		}
		if dirty {
			f.Draw(c)
			dirty = false
		}
		for _, ev := range in.PollEvents() {
			switch ev.Kind {
			case game.InputQuit:
				log.Debugf("Setup closed")
				return game.Params{}, game.ErrQuit
			case game.InputChar:
				f.HandleChar(ev.Char)
				dirty = true
			case game.InputKeyPress:
				dirty = true
				if !f.HandleKey(ev.Key) {
					continue
				}
				p, err := f.Submit()
				if err == nil {
					log.Infof("Starting match %s vs %s to %d", p.Player1, p.Player2, p.Target)
					return p, nil
				}
			}
		}
		clock.Wait(game.PromptPollPeriod)
	}
}
