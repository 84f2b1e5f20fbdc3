package desktop

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const pumpInterval = 10 * time.Millisecond

// Clock reads the GLFW timer. Wait keeps pumping window events so the window
// stays responsive; queued input is delivered on the next PollEvents.
type Clock struct{}

func (Clock) Now() time.Duration {
	return time.Duration(glfw.GetTime() * float64(time.Second))
}

func (Clock) Wait(d time.Duration) {
	deadline := time.Now().Add(d)
	for {
		glfw.PollEvents()
		left := time.Until(deadline)
		if left <= 0 {
			return
		}
		if left > pumpInterval {
			left = pumpInterval
		}
		time.Sleep(left)
	}
}
