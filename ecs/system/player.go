package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/Gautam-J/LCC-S2/common"
	"github.com/Gautam-J/LCC-S2/config"
	"github.com/Gautam-J/LCC-S2/ecs"
	"github.com/Gautam-J/LCC-S2/ecs/component"
)

const (
	// Horizontal speeds below this snap to zero, so friction terminates
	// instead of decaying forever.
	velocityDeadzone = 0.1

	// The jump probe shifts the rect this many pixels so a jump pressed a
	// frame early, while still approaching a platform edge, registers as
	// grounded.
	jumpProbeShift = 2

	// Where the player is put back when pushed through the left world edge.
	// There is no right-side clamp; the world scrolls rightward.
	leftWallOffset = 50
)

// PlayerSystem runs the whole per-tick player pipeline: grounding, animation
// selection, the jump state machine, and the physics integration. Step order
// matters and must not be rearranged; animation reads the velocity of the
// previous tick by design.
type PlayerSystem struct {
	cfg       *config.Settings
	runTicks  uint64
	idleTicks uint64
}

func NewPlayerSystem(cfg *config.Settings) *PlayerSystem {
	return &PlayerSystem{
		cfg:       cfg,
		runTicks:  common.MsToTicks(cfg.RunFrameMs),
		idleTicks: common.MsToTicks(cfg.IdleFrameMs),
	}
}

func (s *PlayerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, e := range w.Query(component.PlayerTagComponent.Kind()) {
		s.update(w, e)
	}
}

func (s *PlayerSystem) update(w *ecs.World, e ecs.Entity) {
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		return
	}
	accel, ok := ecs.Get(w, e, component.AccelerationComponent.Kind())
	if !ok {
		return
	}
	st, ok := ecs.Get(w, e, component.PlayerStateComponent.Kind())
	if !ok {
		return
	}
	col, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return
	}
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return
	}

	s.ground(w, e, st, vel, tr, col)
	s.animate(w, e, st, vel, tr, col)

	if in.JumpPressed {
		TriggerJump(w, e, s.cfg.JumpVelocity)
	}
	if in.JumpReleased {
		JumpCut(w, e, s.cfg.JumpCutThreshold)
	}

	// Integration. Acceleration is rebuilt from scratch: gravity, then
	// directional input (left wins a simultaneous press), then friction
	// proportional to current speed.
	acc := cp.Vector{X: 0, Y: s.cfg.Gravity}
	if in.Left {
		acc.X = -s.cfg.PlayerAccel
	} else if in.Right {
		acc.X = s.cfg.PlayerAccel
	}
	acc.X += vel.V.X * -s.cfg.Friction

	// v = u + at, t = 1
	vel.V = vel.V.Add(acc)
	if math.Abs(vel.V.X) < velocityDeadzone {
		vel.V.X = 0
	}

	// x = ut + at²/2, t = 1. The half-acceleration term is part of the
	// game feel; do not simplify to pos += vel.
	tr.Pos = tr.Pos.Add(vel.V.Add(acc.Mult(0.5)))
	accel.A = acc

	col.Rect.SetMidBottom(tr.Pos.X, tr.Pos.Y)
	if col.Rect.Left() < 0 {
		tr.Pos.X = leftWallOffset + col.Rect.Width/2
		col.Rect.SetMidBottom(tr.Pos.X, tr.Pos.Y)
	}
}

// ground clears the airborne flag once a grounding collision is detected
// outside the jump probe: falling or resting, and overlapping terrain. The
// contact is resolved by pinning the feet just into the terrain top so the
// next probe still registers.
func (s *PlayerSystem) ground(w *ecs.World, e ecs.Entity, st *component.PlayerState, vel *component.Velocity, tr *component.Transform, col *component.Collider) {
	if vel.V.Y < 0 {
		return
	}
	hit, ok := ecs.Overlap(w, col.Rect, component.PlatformTagComponent.Kind())
	if !ok {
		hit, ok = ecs.Overlap(w, col.Rect, component.BaseTagComponent.Kind())
	}
	if !ok {
		return
	}

	tr.Pos.Y = hit.Top() + 1
	vel.V.Y = 0
	col.Rect.SetMidBottom(tr.Pos.X, tr.Pos.Y)

	if st.Jumping {
		st.Jumping = false
		w.Events().Push(ecs.Event{Kind: ecs.EventLand, Entity: e})
	}
}

// animate picks the displayed frame from (velocity.x, jumping, ticks since
// the last change). Run outranks idle; both branches re-anchor the rect
// bottom so the feet never shift when frame sizes differ.
func (s *PlayerSystem) animate(w *ecs.World, e ecs.Entity, st *component.PlayerState, vel *component.Velocity, tr *component.Transform, col *component.Collider) {
	anim, ok := ecs.Get(w, e, component.AnimatorComponent.Kind())
	if !ok || anim.Frames == nil {
		return
	}
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return
	}

	now := w.Tick()
	st.Running = vel.V.X != 0

	changed := false
	if st.Running && now-anim.LastChange > s.runTicks {
		anim.LastChange = now
		facing := component.FacingRight
		if vel.V.X < 0 {
			facing = component.FacingLeft
		}
		st.Facing = facing
		changed = advanceFrame(anim, anim.Frames.Run, facing, sprite, col)
	}

	if !st.Jumping && !st.Running && now-anim.LastChange > s.idleTicks {
		anim.LastChange = now
		// idle facing follows where the player stands, not how it moves
		facing := component.FacingRight
		if tr.Pos.X <= 0 {
			facing = component.FacingLeft
		}
		st.Facing = facing
		changed = advanceFrame(anim, anim.Frames.Idle, facing, sprite, col)
	}

	if changed {
		sprite.RecomputeMask()
	}
}

// advanceFrame steps the frame index modulo the sequence length, swaps the
// sprite, and re-anchors the collider bottom.
func advanceFrame(anim *component.Animator, seq [2]component.Sequence, facing component.Facing, sprite *component.Sprite, col *component.Collider) bool {
	frames := seq[facing]
	if len(frames) == 0 {
		panic("player system: advance on empty animation sequence")
	}
	anim.Index = (anim.Index + 1) % len(frames)
	frame := frames[anim.Index]

	bottom := col.Rect.Bottom()
	sprite.SetFrame(frame)
	col.Rect.Width = float64(frame.W)
	col.Rect.Height = float64(frame.H)
	col.Rect.SetBottom(bottom)
	return true
}

// TriggerJump is the edge-triggered jump command. The guard probes terrain
// with the rect shifted jumpProbeShift pixels, against platforms and bases
// independently; the shift happens on a stack copy so members are never
// mutated. Already-airborne triggers are a no-op.
func TriggerJump(w *ecs.World, e ecs.Entity, jumpVelocity float64) bool {
	st, ok := ecs.Get(w, e, component.PlayerStateComponent.Kind())
	if !ok {
		return false
	}
	vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		return false
	}
	col, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return false
	}

	probe := col.Rect
	probe.X += jumpProbeShift
	onPlatform := ecs.Probe(w, probe, component.PlatformTagComponent.Kind())
	onBase := ecs.Probe(w, probe, component.BaseTagComponent.Kind())

	if (onPlatform || onBase) && !st.Jumping {
		st.Jumping = true
		vel.V.Y = -jumpVelocity
		w.Events().Push(ecs.Event{Kind: ecs.EventJump, Entity: e})
		return true
	}
	return false
}

// JumpCut shortens the jump arc when the jump key is released early: while
// airborne and rising faster than the threshold, the upward velocity is
// clamped to exactly the threshold. Falling or slow ascents are untouched.
func JumpCut(w *ecs.World, e ecs.Entity, threshold float64) bool {
	st, ok := ecs.Get(w, e, component.PlayerStateComponent.Kind())
	if !ok || !st.Jumping {
		return false
	}
	vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		return false
	}
	if vel.V.Y < -threshold {
		vel.V.Y = -threshold
		return true
	}
	return false
}
