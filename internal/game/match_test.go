package game

import (
	"context"
	"errors"
	"testing"
)

// TestMatchSetupPositions verifies the default paddle and region layout
func TestMatchSetupPositions(t *testing.T) {
	m, _ := newTestMatch(t, 5, 1)

	want := [2]Rect{
		{X: 300, Y: 50, W: 200, H: 20},
		{X: 300, Y: 630, W: 200, H: 20},
	}
	if m.Paddles != want {
		t.Errorf("Expected paddles %v, got %v", want, m.Paddles)
	}
	if m.zones[Player1] != (Rect{X: 0, Y: 0, W: 800, H: 350}) {
		t.Errorf("Unexpected top zone %v", m.zones[Player1])
	}
	if m.zones[Player2] != (Rect{X: 0, Y: 350, W: 800, H: 350}) {
		t.Errorf("Unexpected bottom zone %v", m.zones[Player2])
	}
	if m.Ball == nil {
		t.Fatal("Expected a ball after setup")
	}
}

// TestMovePaddlesStaysInZone drives random key states and checks bounds every tick
func TestMovePaddlesStaysInZone(t *testing.T) {
	m, _ := newTestMatch(t, 5, 1)
	cfg := testConfig()
	w, h := float64(cfg.Width), float64(cfg.Height)
	mid := h / 2
	keys := []Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeyA, KeyD, KeyW, KeyS}
	rng := NewRand(99)
	held := heldKeys{}

	for tick := 0; tick < 20000; tick++ {
		// Change the held set every so often so paddles get pinned against edges.
		if tick%250 == 0 {
			for _, k := range keys {
				held[k] = rng.Intn(2) == 0
			}
		}
		m.MovePaddles(held)

		p1, p2 := m.Paddles[Player1], m.Paddles[Player2]
		if p1.Left() < 0 || p1.Right() > w || p1.Top() < 0 || p1.Bottom() > mid-ZoneMargin {
			t.Fatalf("tick %d: paddle 1 out of zone: %v", tick, p1)
		}
		if p2.Left() < 0 || p2.Right() > w || p2.Top() < mid+ZoneMargin || p2.Bottom() > h {
			t.Fatalf("tick %d: paddle 2 out of zone: %v", tick, p2)
		}
	}
}

// TestMovePaddlesDiagonal verifies independent per-direction steps
func TestMovePaddlesDiagonal(t *testing.T) {
	m, _ := newTestMatch(t, 5, 1)
	start := m.Paddles

	m.MovePaddles(heldKeys{KeyRight: true, KeyDown: true, KeyA: true, KeyW: true})

	if got := m.Paddles[Player1]; got.X != start[Player1].X+1 || got.Y != start[Player1].Y+1 {
		t.Errorf("Expected paddle 1 moved by (1, 1), got %v from %v", got, start[Player1])
	}
	if got := m.Paddles[Player2]; got.X != start[Player2].X-1 || got.Y != start[Player2].Y-1 {
		t.Errorf("Expected paddle 2 moved by (-1, -1), got %v from %v", got, start[Player2])
	}
}

// TestMovePaddlesOppositeKeysCancel verifies holding both directions nets zero
func TestMovePaddlesOppositeKeysCancel(t *testing.T) {
	m, _ := newTestMatch(t, 5, 1)
	start := m.Paddles

	m.MovePaddles(heldKeys{KeyLeft: true, KeyRight: true, KeyW: true, KeyS: true})

	if m.Paddles != start {
		t.Errorf("Expected paddles unchanged, got %v from %v", m.Paddles, start)
	}
}

// TestCheckWinner verifies the threshold and the player 1 tie-break
func TestCheckWinner(t *testing.T) {
	tests := []struct {
		name   string
		scores [2]int
		over   bool
		winner Player
	}{
		{name: "Nobody at target", scores: [2]int{4, 4}, over: false},
		{name: "Player 1 reaches target", scores: [2]int{5, 3}, over: true, winner: Player1},
		{name: "Player 2 reaches target", scores: [2]int{3, 5}, over: true, winner: Player2},
		{name: "Both at target goes to player 1", scores: [2]int{5, 5}, over: true, winner: Player1},
		{name: "Past target", scores: [2]int{0, 7}, over: true, winner: Player2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMatch(t, 5, 1)
			m.Scores = tt.scores

			winner, over := m.CheckWinner()

			if over != tt.over {
				t.Fatalf("Expected over=%v, got %v", tt.over, over)
			}
			if over && winner != tt.winner {
				t.Errorf("Expected winner %s, got %s", tt.winner, winner)
			}
		})
	}
}

// TestWinnerBanner verifies the banner names the winner
func TestWinnerBanner(t *testing.T) {
	m, _ := newTestMatch(t, 5, 1)
	m.Scores = [2]int{2, 5}
	m.CheckWinner()

	if got := m.WinnerBanner(); got != "bob won!" {
		t.Errorf("Expected %q, got %q", "bob won!", got)
	}
}

// TestScoresAreMonotonic plays many ticks and checks scores only grow
func TestScoresAreMonotonic(t *testing.T) {
	m, _ := newTestMatch(t, 1000000, 17)
	rng := NewRand(5)
	keys := []Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeyA, KeyD, KeyW, KeyS}
	held := heldKeys{}
	prev := m.Scores

	for tick := 0; tick < 50000; tick++ {
		if tick%100 == 0 {
			for _, k := range keys {
				held[k] = rng.Intn(2) == 0
			}
		}
		m.MovePaddles(held)
		advance(m)

		gained := (m.Scores[Player1] - prev[Player1]) + (m.Scores[Player2] - prev[Player2])
		if m.Scores[Player1] < prev[Player1] || m.Scores[Player2] < prev[Player2] {
			t.Fatalf("tick %d: score decreased from %v to %v", tick, prev, m.Scores)
		}
		if gained > 1 {
			t.Fatalf("tick %d: more than one point in a tick: %v -> %v", tick, prev, m.Scores)
		}
		prev = m.Scores
	}
	if m.Scores[Player1]+m.Scores[Player2] == 0 {
		t.Error("Expected some points over 50000 ticks")
	}
}

// TestResetScores verifies a replay starts from zero
func TestResetScores(t *testing.T) {
	m, _ := newTestMatch(t, 5, 1)
	m.Scores = [2]int{3, 5}
	m.ResetScores()
	if m.Scores != [2]int{} {
		t.Errorf("Expected zero scores, got %v", m.Scores)
	}
}

// TestParamsDefaults verifies blank names fall back to the defaults
func TestParamsDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Params
		want Params
	}{
		{name: "Both set", in: Params{"ann", "ben", 3}, want: Params{"ann", "ben", 3}},
		{name: "First blank", in: Params{"", "ben", 3}, want: Params{DefaultPlayer1, DefaultPlayer2, 3}},
		{name: "Second blank", in: Params{"ann", "", 3}, want: Params{DefaultPlayer1, DefaultPlayer2, 3}},
		{name: "Both blank", in: Params{"", "", 1}, want: Params{DefaultPlayer1, DefaultPlayer2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.WithDefaults(); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

// TestPromptReplay verifies the Y/N/quit outcomes
func TestPromptReplay(t *testing.T) {
	tests := []struct {
		name    string
		script  [][]InputEvent
		want    bool
		wantErr error
	}{
		{name: "Yes", script: [][]InputEvent{nil, keyPress(KeyY)}, want: true},
		{name: "No", script: [][]InputEvent{keyPress(KeyN)}, want: false},
		{name: "Other keys ignored", script: [][]InputEvent{keyPress(KeyA), {{Kind: InputChar, Char: 'y'}}, keyPress(KeyY)}, want: true},
		{name: "Quit", script: [][]InputEvent{nil, {{Kind: InputQuit}}}, wantErr: ErrQuit},
		{name: "Quit wins over later key in same batch", script: [][]InputEvent{{{Kind: InputQuit}, {Kind: InputKeyPress, Key: KeyY}}}, wantErr: ErrQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMatch(t, 5, 1)
			canvas := newRecordingCanvas(testConfig())
			in := newScriptedInput(tt.script...)
			clock := &steppingClock{}

			got, err := m.PromptReplay(context.Background(), in, canvas, clock)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if !canvas.drew("Play again? (Y/N)") {
				t.Error("Expected the prompt to be drawn")
			}
			if canvas.presents != 1 {
				t.Errorf("Expected one present, got %d", canvas.presents)
			}
		})
	}
}

// TestPromptReplayCancelled verifies ctx cancellation acts as a quit
func TestPromptReplayCancelled(t *testing.T) {
	m, _ := newTestMatch(t, 5, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.PromptReplay(ctx, newScriptedInput(nil, nil), newRecordingCanvas(testConfig()), &steppingClock{})
	if !errors.Is(err, ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

// TestDrawFrame verifies the arena draws scores and presents once
func TestDrawFrame(t *testing.T) {
	m, _ := newTestMatch(t, 5, 1)
	m.Scores = [2]int{2, 4}
	canvas := newRecordingCanvas(testConfig())

	m.DrawFrame(canvas)

	if !canvas.drew("2") || !canvas.drew("4") {
		t.Errorf("Expected both scores drawn, got %v", canvas.texts)
	}
	if canvas.circles != 1 {
		t.Errorf("Expected one ball, got %d", canvas.circles)
	}
	// Two zones, two paddles, two dividers.
	if len(canvas.rects) != 6 {
		t.Errorf("Expected 6 rects, got %d", len(canvas.rects))
	}
	if canvas.presents != 1 {
		t.Errorf("Expected one present, got %d", canvas.presents)
	}
}
