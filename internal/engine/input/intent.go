// Package input merges the sandbox's input sources into one intent per tick.
//
// Device binding (keyboard listeners, joystick widgets, touch drags) lives
// outside this package. Devices publish Samples through the Source
// interface and the Normalizer reads the latest value of each source once
// per tick.
package input

import (
	"fmt"

	vmath "github.com/Faultbox/vrbox/pkg/math"
)

// Intent is the normalized per-tick motion request.
//
// MoveX < 0 is west (left), MoveZ < 0 is north (forward). Both axes are
// always within [-1, 1].
type Intent struct {
	MoveX float64
	MoveZ float64
	Sit   bool
}

// Action returns the intent as the recorded action vector [moveX, moveZ, sit].
func (i Intent) Action() [3]float64 {
	sit := 0.0
	if i.Sit {
		sit = 1
	}
	return [3]float64{i.MoveX, i.MoveZ, sit}
}

// Magnitude returns the length of the movement part of the intent.
func (i Intent) Magnitude() float64 {
	return vmath.Vec2{X: i.MoveX, Y: i.MoveZ}.Length()
}

// IsMoving reports whether either movement axis is non-zero.
func (i Intent) IsMoving() bool {
	return i.MoveX != 0 || i.MoveZ != 0
}

// Sanitized returns a copy with both axes clamped into [-1, 1] and NaN
// replaced by zero.
func (i Intent) Sanitized() Intent {
	return Intent{
		MoveX: vmath.ClampUnit(i.MoveX),
		MoveZ: vmath.ClampUnit(i.MoveZ),
		Sit:   i.Sit,
	}
}

func (i Intent) String() string {
	return fmt.Sprintf("intent(x=%.3f z=%.3f sit=%t)", i.MoveX, i.MoveZ, i.Sit)
}
