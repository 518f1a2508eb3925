package component

import "github.com/Gautam-J/LCC-S2/common"

// Collider is the axis-aligned bounding rect used for probes and drawing.
type Collider struct {
	Rect common.Rect
}

var ColliderComponent = NewComponent[Collider]()
