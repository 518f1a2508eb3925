package component

// Slime is the patrolling enemy: constant leftward drift at a per-instance
// speed, an unconditional two-frame walk cycle, and a die frame that is
// loaded but not yet wired to a death transition.
type Slime struct {
	Speed      float64
	Walk       Sequence
	Die        Frame
	Index      int
	LastChange uint64
}

var SlimeComponent = NewComponent[Slime]()
