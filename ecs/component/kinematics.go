package component

import "github.com/jakecoffman/cp"

// Transform holds the continuous, sub-pixel position. For entities that also
// carry a Collider, Pos is the source of truth and the rect's bottom-center
// is re-derived from it after every position update.
type Transform struct {
	Pos cp.Vector
}

var TransformComponent = NewComponent[Transform]()

type Velocity struct {
	V cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()

// Acceleration is recomputed from scratch every tick, never accumulated.
type Acceleration struct {
	A cp.Vector
}

var AccelerationComponent = NewComponent[Acceleration]()
