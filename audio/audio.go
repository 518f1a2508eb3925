// Package audio synthesizes the fire-and-forget blips played on entity
// state transitions. Sounds are square waves generated at startup, so the
// repo ships no binary audio assets.
package audio

import (
	"math"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/Gautam-J/LCC-S2/common"
	"github.com/Gautam-J/LCC-S2/config"
)

const sampleRate = 44100

// Player owns the process-wide audio context. Create exactly one and keep it
// across sessions; ebiten allows a single context per process.
type Player struct {
	ctx   *eaudio.Context
	prefs *config.Prefs
	jump  []byte
	land  []byte
	pop   []byte
}

func NewPlayer(prefs *config.Prefs) *Player {
	if prefs == nil {
		prefs = config.DefaultPrefs()
	}
	return &Player{
		ctx:   eaudio.NewContext(sampleRate),
		prefs: prefs,
		jump:  tone(660, 0.12),
		land:  tone(220, 0.08),
		pop:   tone(440, 0.05),
	}
}

// Jump, Land and Pop are the transition trigger points. Each creates a
// throwaway player; ebiten reclaims it when playback ends.
func (p *Player) Jump() { p.play(p.jump) }
func (p *Player) Land() { p.play(p.land) }
func (p *Player) Pop()  { p.play(p.pop) }

func (p *Player) play(pcm []byte) {
	if p == nil || p.ctx == nil || !p.prefs.SoundEnabled {
		return
	}
	pl := p.ctx.NewPlayerFromBytes(pcm)
	pl.SetVolume(common.Clamp(p.prefs.SoundVolume, 0, 1))
	pl.Play()
}

// tone renders a decaying square wave as 16-bit little-endian stereo PCM.
func tone(freq, seconds float64) []byte {
	n := int(seconds * sampleRate)
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		envelope := common.Lerp(1, 0, float64(i)/float64(n))
		amp := int16(envelope * 7000)
		if math.Sin(2*math.Pi*freq*float64(i)/sampleRate) < 0 {
			amp = -amp
		}
		lo, hi := byte(uint16(amp)), byte(uint16(amp)>>8)
		out[i*4+0] = lo
		out[i*4+1] = hi
		out[i*4+2] = lo
		out[i*4+3] = hi
	}
	return out
}
