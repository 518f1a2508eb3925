package component

// PlayerState carries the jump state machine flags. Jumping means airborne;
// it is set by the collision-gated jump trigger and cleared by the grounding
// check. Running is derived from horizontal velocity every tick.
type PlayerState struct {
	Jumping bool
	Running bool
	Facing  Facing
}

var PlayerStateComponent = NewComponent[PlayerState]()
