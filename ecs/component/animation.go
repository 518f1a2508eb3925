package component

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrEmptySequence is returned when a frame sequence has no frames. Indexing
// modulo zero would be undefined, so this fails at construction instead.
var ErrEmptySequence = errors.New("component: animation sequence is empty")

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Frame is one animation cell. W and H duplicate the image bounds so frame
// geometry (bottom re-anchoring in particular) works without a decoded image.
type Frame struct {
	Image *ebiten.Image
	W, H  int
}

type Sequence []Frame

// FrameSet holds the player's directional sequences, indexed by Facing.
// Left-facing frames are horizontal mirrors of the right-facing ones. Jump,
// hurt and shoot exist in the data but have no transition wired yet.
type FrameSet struct {
	Idle  [2]Sequence
	Run   [2]Sequence
	Jump  [2]Sequence
	Hurt  [2]Sequence
	Shoot [2]Sequence
}

// Validate rejects a frame set with any empty idle or run sequence. The
// placeholder sequences (jump/hurt/shoot) may be empty until they get a
// transition.
func (f *FrameSet) Validate() error {
	if f == nil {
		return ErrEmptySequence
	}
	for _, seq := range [][2]Sequence{f.Idle, f.Run} {
		for _, dir := range seq {
			if len(dir) == 0 {
				return ErrEmptySequence
			}
		}
	}
	return nil
}

// Animator tracks which frame of which sequence an entity displays. Pacing
// compares the world tick against LastChange, plain integer arithmetic, no
// timers.
type Animator struct {
	Frames     *FrameSet
	Index      int
	LastChange uint64
}

var AnimatorComponent = NewComponent[Animator]()
