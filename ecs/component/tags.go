package component

// Group membership is component membership: an entity is "in the platforms
// group" iff it holds a PlatformTag. Destroying an entity removes every tag
// at once, which is the atomic multi-group removal the despawn rules need.

type PlatformTag struct{}

var PlatformTagComponent = NewComponent[PlatformTag]()

type BaseTag struct{}

var BaseTagComponent = NewComponent[BaseTag]()

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// Cloud is a background decoration. Parallax scales how far the cloud moves
// when the world scrolls; values below 1 make far clouds drift slower.
type Cloud struct {
	Parallax float64
}

var CloudComponent = NewComponent[Cloud]()
