package game

// JitterMax is the largest per-axis offset applied when the ball is re-centred.
const JitterMax = 6

// Ball moves one pixel per axis per tick and reflects off the side walls and
// paddles. Crossing the top or bottom edge scores for the opposite player.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius int
	Color  RGB

	screenW, screenH int
	rng              *Rand
}

// NewBall places a ball near the centre of a w x h screen with a random direction.
func NewBall(w, h, radius int, rng *Rand) *Ball {
	b := &Ball{
		Radius:  radius,
		Color:   Palette.Ball,
		screenW: w,
		screenH: h,
		rng:     rng,
	}
	b.Reset()
	return b
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() Rect {
	r := float64(b.Radius)
	return Rect{X: b.X - r, Y: b.Y - r, W: 2 * r, H: 2 * r}
}

func (b *Ball) Draw(c Canvas) {
	c.FillCircle(b.X, b.Y, float64(b.Radius), b.Color.Opaque())
}

// Reset re-centres the ball within a JitterMax box around the screen midpoint
// and picks a fresh diagonal direction.
func (b *Ball) Reset() {
	half := float64(JitterMax) / 2
	b.X = float64(b.screenW)/2 - half + float64(b.rng.Range(0, JitterMax))
	b.Y = float64(b.screenH)/2 - half + float64(b.rng.Range(0, JitterMax))
	b.VX = b.rng.Sign()
	b.VY = b.rng.Sign()
}

// Advance integrates one tick and resolves collisions. It returns true when
// the point just scored ended the match; the ball is then left where it is.
func (b *Ball) Advance(p1, p2 Rect, m *Match) bool {
	b.X += b.VX
	b.Y += b.VY

	r := float64(b.Radius)
	if b.X <= r || b.X >= float64(b.screenW)-r {
		b.VX = -b.VX
		m.emit(Event{Type: EventWallBounce, X: b.X, Y: b.Y})
	}

	// At most one point per tick.
	scorer, scored := Player1, false
	if b.Y <= r {
		scorer, scored = Player2, true
	} else if b.Y >= float64(b.screenH)-r {
		scorer, scored = Player1, true
	}
	if scored {
		m.AddPoint(scorer)
		if _, over := m.CheckWinner(); over {
			return true
		}
		b.Reset()
		m.emit(Event{Type: EventBallReset, Player: scorer, X: b.X, Y: b.Y})
		return false
	}

	box := b.Bounds()
	for i, p := range [2]Rect{p1, p2} {
		if box.Overlaps(p) {
			b.VY = -b.VY
			b.VX += b.rng.Sign()
			m.emit(Event{Type: EventPaddleHit, Player: Player(i), X: b.X, Y: b.Y})
		}
	}
	return false
}
