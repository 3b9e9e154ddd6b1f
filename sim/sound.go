package sim

import "github.com/plus3/woodland/ecs"

// SoundEffect names a one-shot sound.
type SoundEffect int

const (
	SoundStep1 SoundEffect = iota
	SoundStep2
	SoundBatSwing
	SoundCant
	SoundConfirm

	SoundEffectCount
)

var soundStems = [SoundEffectCount]string{
	SoundStep1:    "step1",
	SoundStep2:    "step2",
	SoundBatSwing: "baseball_bat_swing",
	SoundCant:     "ui_cant",
	SoundConfirm:  "ui_confirm",
}

// Stem returns the sound's asset file name without extension.
func (s SoundEffect) Stem() string {
	if s < 0 || s >= SoundEffectCount {
		return ""
	}
	return soundStems[s]
}

func (s SoundEffect) String() string {
	return s.Stem()
}

// SoundSink plays sounds. Play must not block.
type SoundSink interface {
	Play(effect SoundEffect)
}

// playSound requests a sound. Requests are delivered after the frame's last
// stage has run.
func playSound(frame *ecs.UpdateFrame[*World], effect SoundEffect) {
	sink := frame.World.Sounds
	if sink == nil {
		return
	}
	frame.Commands.Defer(func() {
		sink.Play(effect)
	})
}
