package character

import "math"

// Pose is what the renderer applies to the humanoid model each tick.
type Pose struct {
	LeftLegAngle   float64 // Rotation about the hip X axis, radians
	RightLegAngle  float64
	VerticalOffset float64 // Height of the model origin above ground
	Heading        float64 // Yaw, radians
	Seated         bool
}

// LegSwingAngle returns the walk-cycle angle. The right leg swings in antiphase.
func (p Pose) LegSwingAngle() float64 {
	return p.LeftLegAngle
}

// PoseParams tunes pose synthesis.
type PoseParams struct {
	SwingAmplitude float64 // Radians
	SwingFrequency float64 // Radians per second of elapsed time
	MovingEpsilon  float64 // Speed (units per frame) above which the legs swing
	StandingHeight float64
	SeatedHeight   float64
	SeatedLegAngle float64
}

// DefaultPoseParams returns the default pose tuning.
func DefaultPoseParams() PoseParams {
	return PoseParams{
		SwingAmplitude: DefaultSwingAmplitude,
		SwingFrequency: DefaultSwingFrequency,
		MovingEpsilon:  DefaultMovingEpsilon,
		StandingHeight: DefaultStandingHeight,
		SeatedHeight:   DefaultSeatedHeight,
		SeatedLegAngle: -math.Pi / 2,
	}
}

// DerivePose computes the pose from motion state, the sit flag and the
// elapsed session time in seconds. It never modifies motion.
func DerivePose(motion MotionState, sit bool, elapsed float64, p PoseParams) Pose {
	pose := Pose{
		VerticalOffset: p.StandingHeight,
		Heading:        motion.Heading,
	}

	switch {
	case sit:
		pose.Seated = true
		pose.LeftLegAngle = p.SeatedLegAngle
		pose.RightLegAngle = p.SeatedLegAngle
		pose.VerticalOffset = p.SeatedHeight
	case motion.Speed() > p.MovingEpsilon:
		swing := p.SwingAmplitude * math.Sin(elapsed*p.SwingFrequency)
		pose.LeftLegAngle = swing
		pose.RightLegAngle = -swing
	}

	return pose
}

// Default pose values.
const (
	DefaultSwingAmplitude = 0.5
	// DefaultSwingFrequency matches sin(ms * 0.005) in seconds.
	DefaultSwingFrequency = 5.0
	DefaultMovingEpsilon  = 0.01
	DefaultStandingHeight = 0.6
	DefaultSeatedHeight   = 0.3
)
