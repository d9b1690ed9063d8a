package character

import (
	"math"

	"github.com/Faultbox/vrbox/internal/engine/input"
	vmath "github.com/Faultbox/vrbox/pkg/math"
)

// Integrator owns one character's MotionState and advances it per tick.
type Integrator struct {
	params MotionParams
	state  MotionState
	spawnX float64
	spawnZ float64
	bounds *Bounds
}

// NewIntegrator creates an integrator with the character at rest at the spawn
// point. A non-finite spawn coordinate is replaced by 0.
func NewIntegrator(params MotionParams, spawnX, spawnZ float64) *Integrator {
	if !vmath.IsFinite(spawnX) {
		spawnX = 0
	}
	if !vmath.IsFinite(spawnZ) {
		spawnZ = 0
	}
	it := &Integrator{
		params: params.sanitized(),
		spawnX: spawnX,
		spawnZ: spawnZ,
	}
	it.Reset()
	return it
}

// Params returns the effective tuning.
func (it *Integrator) Params() MotionParams {
	return it.params
}

// State returns the current motion state.
func (it *Integrator) State() MotionState {
	return it.state
}

// SetBounds limits the character to the ground rectangle. Position is
// clamped to the edge and the velocity into the edge is dropped.
func (it *Integrator) SetBounds(b Bounds) {
	it.bounds = &b
	it.clampToBounds()
}

// Reset returns the character to the spawn point at rest.
func (it *Integrator) Reset() {
	it.state = MotionState{
		PositionX: it.spawnX,
		PositionZ: it.spawnZ,
		Grounded:  true,
	}
	it.clampToBounds()
}

// Teleport moves the character to (x, z) at rest. Non-finite targets are ignored.
func (it *Integrator) Teleport(x, z float64) {
	if !vmath.IsFinite(x) || !vmath.IsFinite(z) {
		return
	}
	it.state.PositionX = x
	it.state.PositionZ = z
	it.state.VelocityX = 0
	it.state.VelocityZ = 0
	it.clampToBounds()
}

// Step advances the state by dt seconds under intent and returns the new state.
//
// While intent.Sit is set the character stays where it is and its velocity
// is dropped. A dt that is not a positive finite number leaves the state
// untouched; dt above MaxStep is capped.
func (it *Integrator) Step(intent input.Intent, dt float64) MotionState {
	intent = intent.Sanitized()
	if !vmath.IsFinite(dt) || dt <= 0 {
		return it.state
	}
	dt = math.Min(dt, it.params.MaxStep)

	it.state.Grounded = true

	if intent.Sit {
		it.state.VelocityX = 0
		it.state.VelocityZ = 0
		return it.state
	}

	switch it.params.Mode {
	case ModeDirect:
		it.stepDirect(intent, dt)
	default:
		it.stepSmoothed(intent, dt)
	}

	it.clampToBounds()
	if it.state.Speed() > 0 {
		it.state.Heading = HeadingFromVelocity(it.state.VelocityX, it.state.VelocityZ)
	}
	return it.state
}

func (it *Integrator) stepDirect(intent input.Intent, dt float64) {
	it.state.PositionX += intent.MoveX * it.params.Speed * dt
	it.state.PositionZ += intent.MoveZ * it.params.Speed * dt

	// Reported for pose and facing only; direct mode has no inertia.
	perFrame := it.params.Speed * it.params.FrameDuration()
	it.state.VelocityX = intent.MoveX * perFrame
	it.state.VelocityZ = intent.MoveZ * perFrame
}

func (it *Integrator) stepSmoothed(intent input.Intent, dt float64) {
	frames := dt * it.params.FrameRate
	decay := math.Pow(it.params.Damping, frames)

	it.state.VelocityX = it.smoothAxis(it.state.VelocityX, intent.MoveX, frames, decay)
	it.state.VelocityZ = it.smoothAxis(it.state.VelocityZ, intent.MoveZ, frames, decay)

	it.state.PositionX += it.state.VelocityX * frames
	it.state.PositionZ += it.state.VelocityZ * frames
}

// smoothAxis applies accelerate, clamp, damp to one velocity component.
func (it *Integrator) smoothAxis(v, intent, frames, decay float64) float64 {
	p := it.params
	if intent != 0 {
		v += intent * p.Acceleration * frames
		v = vmath.Clamp(v, -p.MaxSpeed, p.MaxSpeed)
	}
	v *= decay
	if intent == 0 && math.Abs(v) < p.RestSpeed {
		v = 0
	}
	return v
}

func (it *Integrator) clampToBounds() {
	if it.bounds == nil {
		return
	}
	b := it.bounds
	if it.state.PositionX < b.MinX {
		it.state.PositionX, it.state.VelocityX = b.MinX, 0
	} else if it.state.PositionX > b.MaxX {
		it.state.PositionX, it.state.VelocityX = b.MaxX, 0
	}
	if it.state.PositionZ < b.MinZ {
		it.state.PositionZ, it.state.VelocityZ = b.MinZ, 0
	} else if it.state.PositionZ > b.MaxZ {
		it.state.PositionZ, it.state.VelocityZ = b.MaxZ, 0
	}
}

func hypot(x, z float64) float64 {
	return math.Hypot(x, z)
}
