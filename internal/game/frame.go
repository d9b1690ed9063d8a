package game

import (
	"fmt"

	"github.com/Faultbox/vrbox/internal/engine/character"
	"github.com/Faultbox/vrbox/internal/engine/input"
	"github.com/Faultbox/vrbox/internal/game/world"
	vmath "github.com/Faultbox/vrbox/pkg/math"
)

// Frame is everything a renderer needs for one tick.
type Frame struct {
	Tick      uint64
	Elapsed   float64     // Session time in seconds
	Position  vmath.Vec3  // Y is the pose's vertical offset
	Velocity  vmath.Vec2  // Units per reference frame
	Direction int         // character.DirS..DirSE
	Pose      character.Pose
	Intent    input.Intent
	Near      world.TypeSet
	Reward    float64
	Revealed  []string // Zones revealed during this tick
}

func (f Frame) String() string {
	return fmt.Sprintf("tick=%d pos=(%.3f, %.3f, %.3f) %s near=%s reward=%g",
		f.Tick, f.Position.X, f.Position.Y, f.Position.Z, f.Intent, f.Near, f.Reward)
}
