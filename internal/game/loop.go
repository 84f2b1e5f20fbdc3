package game

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Loop drives a Match at a fixed physics tick rate and renders once per frame.
type Loop struct {
	cfg    Config
	match  *Match
	canvas Canvas
	input  Input
	clock  Clock
	bus    *EventBus

	state        GameState
	resetPending bool
	last         time.Duration
	acc          time.Duration
}

// NewLoop sets up a match for p. bus may be nil.
func NewLoop(cfg Config, p Params, canvas Canvas, input Input, clock Clock, rng *Rand, bus *EventBus) *Loop {
	if bus == nil {
		bus = NewEventBus()
	}
	l := &Loop{
		cfg:    cfg,
		match:  NewMatch(cfg, p, rng, bus),
		canvas: canvas,
		input:  input,
		clock:  clock,
		bus:    bus,
		state:  StateWelcome,
	}
	l.match.Setup()
	bus.Subscribe(EventBallReset, func(Event) { l.resetPending = true })
	return l
}

func (l *Loop) Match() *Match    { return l.match }
func (l *Loop) State() GameState { return l.state }
func (l *Loop) Bus() *EventBus   { return l.bus }
func (l *Loop) Config() Config   { return l.cfg }

func (l *Loop) setState(s GameState) {
	if l.state != s {
		log.Tracef("State %s -> %s", l.state, s)
	}
	l.state = s
}

// Run plays until the players quit or decline a replay. A graceful end,
// including ctx cancellation, returns nil.
func (l *Loop) Run(ctx context.Context) error {
	l.canvas.SetTitle(l.cfg.Title)
	m := l.match
	log.Infof("Match %s vs %s, first to %d", m.Names[Player1], m.Names[Player2], m.Target)

	l.announce("Starting...", l.cfg.WelcomeDelay())
	l.setState(StatePlaying)
	l.resync()

	for {
		if ctx.Err() != nil {
			log.Infof("Context done, leaving game loop")
			return nil
		}
		if hasQuit(l.input.PollEvents()) {
			log.Infof("Quit requested")
			l.setState(StateQuit)
			return nil
		}

		over, err := l.runTicks()
		if err != nil {
			return err
		}
		if over {
			again, err := l.finishMatch(ctx)
			if err != nil {
				return err
			}
			if !again {
				l.setState(StateQuit)
				return nil
			}
		}
		m.DrawFrame(l.canvas)
	}
}

// runTicks advances physics by however many fixed ticks fit in the elapsed
// time, capped at MaxTicksPerFrame. It reports whether the match ended.
func (l *Loop) runTicks() (bool, error) {
	tick := l.cfg.TickDuration()
	now := l.clock.Now()
	if now < l.last {
		return false, fmt.Errorf("clock went backwards: %v < %v", now, l.last)
	}
	l.acc += now - l.last
	l.last = now

	m := l.match
	for n := 0; l.acc >= tick; n++ {
		if n == l.cfg.MaxTicksPerFrame {
			// Too far behind: drop the backlog rather than spiral.
			l.acc = 0
			break
		}
		l.acc -= tick

		m.MovePaddles(l.input)
		if m.Ball.Advance(m.Paddles[Player1], m.Paddles[Player2], m) {
			return true, nil
		}
		if l.resetPending {
			l.resetPending = false
			l.setState(StateResetting)
			l.announce("Resetting...", l.cfg.ResetDelay())
			l.setState(StatePlaying)
			l.resync()
			break
		}
	}
	return false, nil
}

// finishMatch shows the winner and asks for a replay. It reports whether
// a new match has started.
func (l *Loop) finishMatch(ctx context.Context) (bool, error) {
	m := l.match
	l.setState(StateMatchOver)
	log.Infof("%s, final score %d-%d", m.WinnerBanner(), m.Scores[Player1], m.Scores[Player2])
	l.bus.Emit(Event{Type: EventMatchWon, Player: m.Winner})
	l.announce(m.WinnerBanner(), l.cfg.WinDelay())

	l.setState(StateReplayPrompt)
	again, err := m.PromptReplay(ctx, l.input, l.canvas, l.clock)
	if errors.Is(err, ErrQuit) {
		log.Infof("Quit during replay prompt")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("replay prompt: %w", err)
	}
	if !again {
		log.Infof("Replay declined")
		return false, nil
	}

	m.ResetScores()
	m.Setup()
	l.bus.Emit(Event{Type: EventReplay})
	l.setState(StatePlaying)
	l.resync()
	return true, nil
}

// announce overlays text on the current arena, presents it and waits.
func (l *Loop) announce(text string, d time.Duration) {
	c := l.canvas
	w, h := c.Size()
	l.match.Draw(c)
	c.DrawText(text, w/2-c.TextWidth(text, TextScale)/2, h/2-BannerOffsetY, TextScale, Palette.Text)
	c.Present()
	l.clock.Wait(d)
}

// resync forgets time spent outside the tick loop.
func (l *Loop) resync() {
	l.last = l.clock.Now()
	l.acc = 0
}
