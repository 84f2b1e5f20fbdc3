package desktop

import (
	"github.com/sqweek/dialog"

	"pingpong/internal/sound"
)

// DialogNotifier shows errors in a native message box.
type DialogNotifier struct {
	Audio *Audio
}

func (n DialogNotifier) Error(title, msg string) {
	log.Warnf("%s: %s", title, msg)
	n.Audio.Play(sound.Error)
	dialog.Message("%s", msg).Title(title).Error()
}
