package component

// RenderLayer sorts draw order deterministically. It has no effect on
// updates or collisions.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
