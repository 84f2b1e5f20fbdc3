package game

import (
	"context"
	"strconv"
)

// Match owns the paddles, scores, target and ball of one game.
type Match struct {
	Names   [2]string
	Scores  [2]int
	Paddles [2]Rect
	Target  int
	Winner  Player
	Ball    *Ball

	dividers [2]Rect
	zones    [2]Rect // player 1 top, player 2 bottom

	cfg Config
	rng *Rand
	bus *EventBus
}

// NewMatch builds a match from validated params. Call Setup before playing.
func NewMatch(cfg Config, p Params, rng *Rand, bus *EventBus) *Match {
	p = p.WithDefaults()
	return &Match{
		Names:  [2]string{p.Player1, p.Player2},
		Target: p.Target,
		cfg:    cfg,
		rng:    rng,
		bus:    bus,
	}
}

// Setup places a fresh ball and both paddles at their start positions.
// Scores are left untouched.
func (m *Match) Setup() {
	w, h := float64(m.cfg.Width), float64(m.cfg.Height)
	m.Ball = NewBall(m.cfg.Width, m.cfg.Height, m.cfg.BallRadius, m.rng)

	pw := w * PaddleWidthRatio
	px := w * (1 - PaddleWidthRatio) / 2
	m.Paddles[Player1] = Rect{X: px, Y: PaddleTopOffset, W: pw, H: PaddleHeight}
	m.Paddles[Player2] = Rect{X: px, Y: h - PaddleBottomInset, W: pw, H: PaddleHeight}

	m.dividers[0] = Rect{X: 0, Y: h - DividerThickness, W: w, H: DividerThickness}
	m.dividers[1] = Rect{X: 0, Y: 0, W: w, H: DividerThickness}
	m.zones[Player1] = Rect{X: 0, Y: 0, W: w, H: h / 2}
	m.zones[Player2] = Rect{X: 0, Y: h / 2, W: w, H: h / 2}
}

// Draw paints the arena without presenting it.
func (m *Match) Draw(c Canvas) {
	c.Clear(Palette.Background)
	c.FillRect(m.zones[Player1], Palette.Player2.Alpha(TintAlpha))
	c.FillRect(m.zones[Player2], Palette.Player1.Alpha(TintAlpha))
	c.FillRect(m.Paddles[Player1], Palette.Player1.Opaque())
	c.FillRect(m.Paddles[Player2], Palette.Player2.Opaque())
	if m.Ball != nil {
		m.Ball.Draw(c)
	}
	for _, d := range m.dividers {
		c.FillRect(d, Palette.Divider.Opaque())
	}
	m.drawScores(c)
}

// DrawFrame paints and presents one frame.
func (m *Match) DrawFrame(c Canvas) {
	m.Draw(c)
	c.Present()
}

func (m *Match) drawScores(c Canvas) {
	mid := m.cfg.Height / 2
	c.DrawText(strconv.Itoa(m.Scores[Player1]), ScoreX, mid-ScoreOffsetY, TextScale, Palette.Text)
	c.DrawText(strconv.Itoa(m.Scores[Player2]), ScoreX, mid+ScoreOffsetY, TextScale, Palette.Text)
}

// MovePaddles applies one pixel of movement per held direction key. Each step
// is gated so a paddle never leaves its half of the screen.
func (m *Match) MovePaddles(in Input) {
	w, h := float64(m.cfg.Width), float64(m.cfg.Height)
	mid := h / 2

	p1 := &m.Paddles[Player1]
	if in.KeyDown(KeyLeft) && p1.Left() > 0 {
		p1.Move(-1, 0)
	}
	if in.KeyDown(KeyRight) && p1.Right() < w {
		p1.Move(1, 0)
	}
	if in.KeyDown(KeyUp) && p1.Top() > 0 {
		p1.Move(0, -1)
	}
	if in.KeyDown(KeyDown) && p1.Bottom() < mid-ZoneMargin {
		p1.Move(0, 1)
	}

	p2 := &m.Paddles[Player2]
	if in.KeyDown(KeyA) && p2.Left() > 0 {
		p2.Move(-1, 0)
	}
	if in.KeyDown(KeyD) && p2.Right() < w {
		p2.Move(1, 0)
	}
	if in.KeyDown(KeyW) && p2.Top() > mid+ZoneMargin {
		p2.Move(0, -1)
	}
	if in.KeyDown(KeyS) && p2.Bottom() < h {
		p2.Move(0, 1)
	}
}

// AddPoint credits one point to p.
func (m *Match) AddPoint(p Player) {
	m.Scores[p]++
	log.Debugf("Point for %s (%s), score %d-%d", m.Names[p], p, m.Scores[Player1], m.Scores[Player2])
	m.emit(Event{Type: EventPoint, Player: p})
}

// CheckWinner reports whether a score has reached the target. Player 1 is
// checked first, so simultaneous arrival goes to player 1.
func (m *Match) CheckWinner() (Player, bool) {
	for _, p := range [2]Player{Player1, Player2} {
		if m.Scores[p] >= m.Target {
			m.Winner = p
			return p, true
		}
	}
	return 0, false
}

// WinnerBanner is the text announced when the match ends.
func (m *Match) WinnerBanner() string {
	return m.Names[m.Winner] + " won!"
}

// ResetScores zeroes both scores for a new match.
func (m *Match) ResetScores() {
	m.Scores = [2]int{}
}

// PromptReplay asks "Play again?" and blocks until Y, N or a quit request.
// A quit (window close, Escape or ctx cancellation) returns ErrQuit.
func (m *Match) PromptReplay(ctx context.Context, in Input, c Canvas, clock Clock) (bool, error) {
	const prompt = "Play again? (Y/N)"
	c.Clear(Palette.Background)
	w, h := c.Size()
	c.DrawText(prompt, w/2-c.TextWidth(prompt, TextScale)/2, h/2-BannerOffsetY, TextScale, Palette.Text)
	c.Present()

	for {
		if ctx.Err() != nil {
			return false, ErrQuit
		}
		for _, ev := range in.PollEvents() {
			switch {
			case ev.Kind == InputQuit:
				return false, ErrQuit
			case ev.Kind == InputKeyPress && ev.Key == KeyY:
				return true, nil
			case ev.Kind == InputKeyPress && ev.Key == KeyN:
				return false, nil
			}
		}
		clock.Wait(PromptPollPeriod)
	}
}

func (m *Match) emit(e Event) {
	m.bus.Emit(e)
}
