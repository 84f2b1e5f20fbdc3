package game

type GameState int

const (
	StateWelcome      GameState = iota
	StatePlaying                // paddles and ball advancing
	StateResetting              // "Resetting..." on screen
	StateMatchOver              // winner banner on screen
	StateReplayPrompt           // waiting for Y/N
	StateQuit
)

func (s GameState) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StatePlaying:
		return "playing"
	case StateResetting:
		return "resetting"
	case StateMatchOver:
		return "match-over"
	case StateReplayPrompt:
		return "replay-prompt"
	case StateQuit:
		return "quit"
	}
	return "unknown"
}

// Player indexes the per-player arrays of a Match.
type Player int

const (
	Player1 Player = iota
	Player2
)

func (p Player) String() string {
	if p == Player1 {
		return "player 1"
	}
	return "player 2"
}

// Params are the values the setup front-end hands to the game loop.
type Params struct {
	Player1 string
	Player2 string
	Target  int
}

func DefaultParams() Params {
	return Params{Player1: DefaultPlayer1, Player2: DefaultPlayer2, Target: DefaultTarget}
}

// WithDefaults fills blank names. Either name blank means both fall back.
func (p Params) WithDefaults() Params {
	if p.Player1 == "" || p.Player2 == "" {
		p.Player1 = DefaultPlayer1
		p.Player2 = DefaultPlayer2
	}
	return p
}
