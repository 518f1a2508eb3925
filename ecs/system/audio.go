package system

import (
	"github.com/Gautam-J/LCC-S2/ecs"
)

// Sounds is what the audio system needs from a sound backend. A nil backend
// is allowed so headless runs and tests skip audio entirely.
type Sounds interface {
	Jump()
	Land()
	Pop()
}

// AudioSystem drains the event queue and plays the matching cue. Register it
// last so it sees everything the other systems pushed this tick.
type AudioSystem struct {
	sounds Sounds
}

func NewAudioSystem(sounds Sounds) *AudioSystem {
	return &AudioSystem{sounds: sounds}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	events := w.Events().Drain()
	if a.sounds == nil {
		return
	}
	for _, evt := range events {
		switch evt.Kind {
		case ecs.EventJump:
			a.sounds.Jump()
		case ecs.EventLand:
			a.sounds.Land()
		case ecs.EventDespawn:
			a.sounds.Pop()
		}
	}
}
