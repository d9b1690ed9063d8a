package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/vrbox/internal/engine/input"
	"github.com/Faultbox/vrbox/internal/logger"
)

const axisMax = 32767.0

// Controllers tracks open game controllers and reports the first one's left
// stick as a continuous source. The A button toggles sit.
type Controllers struct {
	open []*sdl.GameController
	sit  input.Toggle
	log  *zap.Logger
}

// NewControllers opens every game controller already attached.
func NewControllers() *Controllers {
	c := &Controllers{log: logger.Named("input")}
	for i := 0; i < sdl.NumJoysticks(); i++ {
		c.Open(i)
	}
	return c
}

// Open opens the device at index if it is a game controller.
func (c *Controllers) Open(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		c.log.Warn("failed to open controller", zap.Int("index", index), zap.Error(sdl.GetError()))
		return
	}
	id := gc.Joystick().InstanceID()
	for _, o := range c.open {
		if o.Joystick().InstanceID() == id {
			return
		}
	}
	c.open = append(c.open, gc)
	c.log.Info("controller connected", zap.String("name", gc.Name()), zap.Int32("id", int32(id)))
}

// Remove closes the controller with the given instance ID.
func (c *Controllers) Remove(id sdl.JoystickID) {
	for i, gc := range c.open {
		if gc.Joystick().InstanceID() == id {
			gc.Close()
			c.open = append(c.open[:i], c.open[i+1:]...)
			c.log.Info("controller disconnected", zap.Int32("id", int32(id)))
			return
		}
	}
}

// Len returns the number of open controllers.
func (c *Controllers) Len() int {
	return len(c.open)
}

// Sample reads the first controller. With none attached it reports idle.
func (c *Controllers) Sample() input.Sample {
	if len(c.open) == 0 {
		return input.Sample{Continuous: true}
	}
	gc := c.open[0]
	return input.Sample{
		MoveX:      axis(gc.Axis(sdl.CONTROLLER_AXIS_LEFTX)),
		MoveZ:      axis(gc.Axis(sdl.CONTROLLER_AXIS_LEFTY)),
		Sit:        c.sit.Update(gc.Button(sdl.CONTROLLER_BUTTON_A) != 0),
		Continuous: true,
	}
}

// Reset stands the character up.
func (c *Controllers) Reset() {
	c.sit.Set(false)
}

// Close closes every controller.
func (c *Controllers) Close() {
	for _, gc := range c.open {
		gc.Close()
	}
	c.open = nil
}

// axis maps a raw stick value to [-1, 1]. Stick up is negative, which is
// forward on the Z axis.
func axis(v int16) float64 {
	f := float64(v) / axisMax
	if f < -1 {
		return -1
	}
	return f
}
