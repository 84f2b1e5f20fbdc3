package desktop

import (
	"time"

	"github.com/hajimehoshi/oto/v2"

	"pingpong/internal/game"
	"pingpong/internal/sound"
)

// Audio plays synthesised effects through oto. Each effect gets its own
// player on a short-lived goroutine.
type Audio struct {
	ctx    *oto.Context
	ready  chan struct{}
	bank   *sound.Bank
	volume float64
}

// NewAudio opens the output device.
func NewAudio(cfg game.AudioConfig) (*Audio, error) {
	ctx, ready, err := oto.NewContext(sound.SampleRate, sound.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &Audio{ctx: ctx, ready: ready, bank: sound.NewBank(), volume: cfg.Volume}, nil
}

// Play starts kind without blocking. It is a no-op until the device is ready
// and on a nil receiver.
func (a *Audio) Play(kind sound.Kind) {
	if a == nil || a.volume <= 0 {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	samples := a.bank.Get(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		player := a.ctx.NewPlayer(sound.NewReader(samples))
		player.SetVolume(a.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.Debugf("Closing %s player: %v", kind, err)
		}
	}()
}

// soundFor maps a game event to its effect.
func soundFor(t game.EventType) (sound.Kind, bool) {
	switch t {
	case game.EventPaddleHit:
		return sound.Paddle, true
	case game.EventWallBounce:
		return sound.Wall, true
	case game.EventPoint:
		return sound.Point, true
	case game.EventMatchWon:
		return sound.Win, true
	case game.EventReplay:
		return sound.Select, true
	}
	return 0, false
}

// Attach plays an effect for every mapped event on bus.
func (a *Audio) Attach(bus *game.EventBus) {
	bus.SubscribeAll(func(e game.Event) {
		if kind, ok := soundFor(e.Type); ok {
			a.Play(kind)
		}
	})
}
