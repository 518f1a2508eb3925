package component

// Input is the per-tick input snapshot. Left/Right are held-key levels; the
// jump fields are edges (pressed and released this tick). Nothing is
// buffered across ticks.
type Input struct {
	Left         bool
	Right        bool
	JumpPressed  bool
	JumpReleased bool
}

var InputComponent = NewComponent[Input]()
