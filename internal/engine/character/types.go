// Package character integrates the humanoid's motion and derives its pose.
package character

import "fmt"

// Mode selects the integration policy.
type Mode int

const (
	// ModeSmoothed accelerates, clamps and damps a tracked velocity.
	ModeSmoothed Mode = iota
	// ModeDirect moves the character at a fixed speed along the intent with
	// instantaneous start and stop.
	ModeDirect
)

// String returns the config name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSmoothed:
		return "smoothed"
	case ModeDirect:
		return "direct"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a config name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "smoothed", "":
		return ModeSmoothed, nil
	case "direct":
		return ModeDirect, nil
	default:
		return ModeSmoothed, fmt.Errorf("unknown motion mode %q", s)
	}
}

// MotionState is the character's kinematic state.
//
// Velocities are in world units per reference frame (1/FrameRate seconds),
// the unit the tuning constants are expressed in.
type MotionState struct {
	PositionX float64
	PositionZ float64
	VelocityX float64
	VelocityZ float64
	Heading   float64 // Yaw in radians, 0 faces +Z (south)
	Grounded  bool
}

// Speed returns the horizontal speed in units per reference frame.
func (m MotionState) Speed() float64 {
	return hypot(m.VelocityX, m.VelocityZ)
}

// MotionParams tunes the integrator.
type MotionParams struct {
	Mode Mode

	// Direct mode speed in world units per second.
	Speed float64

	// Smoothed mode tuning, per reference frame.
	Acceleration float64
	MaxSpeed     float64
	Damping      float64

	// RestSpeed snaps a coasting axis (no intent) to zero once its speed
	// drops below this value.
	RestSpeed float64

	// FrameRate is the reference frame rate the per-frame constants were
	// tuned at.
	FrameRate float64

	// MaxStep caps a single step's dt in seconds.
	MaxStep float64
}

// DefaultMotionParams returns the default tuning.
func DefaultMotionParams() MotionParams {
	return MotionParams{
		Mode:         ModeSmoothed,
		Speed:        DefaultDirectSpeed,
		Acceleration: DefaultAcceleration,
		MaxSpeed:     DefaultMaxSpeed,
		Damping:      DefaultDamping,
		RestSpeed:    DefaultRestSpeed,
		FrameRate:    DefaultFrameRate,
		MaxStep:      DefaultMaxStep,
	}
}

// FrameDuration returns the reference frame length in seconds.
func (p MotionParams) FrameDuration() float64 {
	return 1 / p.FrameRate
}

// SteadySpeed returns the speed a smoothed integrator settles at under a
// constant full-scale intent.
func (p MotionParams) SteadySpeed() float64 {
	free := p.Damping * p.Acceleration / (1 - p.Damping)
	capped := p.Damping * p.MaxSpeed
	if p.Damping >= 1 || free > capped {
		return capped
	}
	return free
}

// sanitized replaces unusable values with the defaults.
func (p MotionParams) sanitized() MotionParams {
	d := DefaultMotionParams()
	if !(p.FrameRate > 0) {
		p.FrameRate = d.FrameRate
	}
	if !(p.Damping > 0 && p.Damping <= 1) {
		p.Damping = d.Damping
	}
	if !(p.MaxSpeed > 0) {
		p.MaxSpeed = d.MaxSpeed
	}
	if !(p.Acceleration >= 0) {
		p.Acceleration = d.Acceleration
	}
	if !(p.Speed >= 0) {
		p.Speed = d.Speed
	}
	if !(p.RestSpeed >= 0) {
		p.RestSpeed = 0
	}
	if !(p.MaxStep > 0) {
		p.MaxStep = d.MaxStep
	}
	return p
}

// Bounds is the walkable ground rectangle.
type Bounds struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Contains reports whether (x, z) lies inside the bounds.
func (b Bounds) Contains(x, z float64) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

// Default tuning, per frame at 60 fps.
const (
	DefaultAcceleration = 0.05
	DefaultMaxSpeed     = 0.5
	DefaultDamping      = 0.90
	DefaultRestSpeed    = 0.01
	DefaultFrameRate    = 60.0
	DefaultMaxStep      = 0.25

	// DefaultDirectSpeed is 0.2 units per frame at 60 fps.
	DefaultDirectSpeed = 12.0
)
