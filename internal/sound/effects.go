package sound

import (
	"math"
	"sync"
)

// Kind identifies a sound effect.
type Kind int

const (
	Paddle Kind = iota
	Wall
	Point
	Win
	Select
	Error
)

func (k Kind) String() string {
	switch k {
	case Paddle:
		return "paddle"
	case Wall:
		return "wall"
	case Point:
		return "point"
	case Win:
		return "win"
	case Select:
		return "select"
	case Error:
		return "error"
	}
	return "unknown"
}

// Kinds lists every effect in declaration order.
var Kinds = []Kind{Paddle, Wall, Point, Win, Select, Error}

// Generate synthesises the PCM buffer for kind, or nil for an unknown kind.
func Generate(kind Kind) []byte {
	switch kind {
	case Paddle:
		return genPaddle()
	case Wall:
		return genWall()
	case Point:
		return genPoint()
	case Win:
		return genWin()
	case Select:
		return genSelect()
	case Error:
		return genError()
	}
	return nil
}

// Bank caches generated buffers so each effect is synthesised once.
type Bank struct {
	mu   sync.Mutex
	bufs map[Kind][]byte
}

func NewBank() *Bank {
	return &Bank{bufs: make(map[Kind][]byte)}
}

// Get returns the cached buffer for kind. Callers must not modify it.
func (b *Bank) Get(kind Kind) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if buf, ok := b.bufs[kind]; ok {
		return buf
	}
	buf := Generate(kind)
	if buf != nil {
		b.bufs[kind] = buf
	}
	return buf
}

// genPaddle: short bright FM knock.
func genPaddle() []byte {
	n := int(0.07 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 660 + 180*p
		s := fm(t, freq, 2.0, 3.0*env) * env * 0.5
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.05
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genWall: lower, duller tick with a little noise.
func genWall() []byte {
	n := int(0.05 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(4242)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 9)
		lp = lp*0.8 + lcg(&seed)*0.2
		s := (fm(t, 330, 1.0, 0.8)*0.4 + lp*0.15) * env
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genPoint: falling two-note sting.
func genPoint() []byte {
	notes := []struct{ freq, onset float64 }{
		{523.25, 0.00}, // C5
		{392.00, 0.11}, // G4
	}
	n := int(0.42 * SampleRate)
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.01, 0.35, 0.2, 0.4)
			mix[i] += fm(t, note.freq, 2.0, 2.2*env) * env * 0.3
		}
	}
	return mixdown(mix)
}

// genWin: ascending FM bell arpeggio.
func genWin() []byte {
	freqs := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
	noteLen := SampleRate * 90 / 1000
	tail := int(0.3 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			s := fm(t, freq, 2.756, 5.0*env) * env * 0.34
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}
	return mixdown(mix)
}

// genSelect: crisp click + brief high tone.
func genSelect() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genError: low buzzing descent.
func genError() []byte {
	n := int(0.2 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.015, 0.5, 0.2, 0.25)
		freq := 220 - 80*p
		s := fm(t, freq, 1.5, 2.8*(1-p)) * env * 0.45
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
