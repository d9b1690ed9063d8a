package input

import "sync"

// Sample is the raw state a source reports for the current tick.
//
// Continuous marks analog sources (joystick, touch drag, gamepad stick).
// A continuous source reporting a non-zero axis overrides discrete sources
// on that axis.
type Sample struct {
	MoveX      float64
	MoveZ      float64
	Sit        bool
	Continuous bool
}

// Source produces the latest sample of one input device.
type Source interface {
	Sample() Sample
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() Sample

// Sample calls f.
func (f SourceFunc) Sample() Sample {
	return f()
}

// Directional is the boolean key schema used by keyboard bindings.
type Directional struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Sit      bool
}

// Sample converts the directional keys to a discrete axis sample.
// Opposite keys held together cancel out.
func (d Directional) Sample() Sample {
	var s Sample
	if d.Left {
		s.MoveX--
	}
	if d.Right {
		s.MoveX++
	}
	if d.Forward {
		s.MoveZ--
	}
	if d.Backward {
		s.MoveZ++
	}
	s.Sit = d.Sit
	return s
}

// Axes is a continuous analog reading such as a virtual joystick vector.
type Axes struct {
	MoveX float64
	MoveZ float64
	Sit   bool
}

// Sample reports the axes as a continuous sample.
func (a Axes) Sample() Sample {
	return Sample{MoveX: a.MoveX, MoveZ: a.MoveZ, Sit: a.Sit, Continuous: true}
}

// Cached holds the latest sample written by a device callback.
//
// Store may be called from any goroutine; the simulation tick only reads
// the most recent value and never waits for input.
type Cached struct {
	mu     sync.Mutex
	sample Sample
}

// NewCached returns a cached source reporting continuous samples when
// continuous is true.
func NewCached(continuous bool) *Cached {
	return &Cached{sample: Sample{Continuous: continuous}}
}

// Store replaces the cached sample. The Continuous flag of the source is kept.
func (c *Cached) Store(s Sample) {
	c.mu.Lock()
	s.Continuous = c.sample.Continuous
	c.sample = s
	c.mu.Unlock()
}

// StoreDirectional stores a directional key state.
func (c *Cached) StoreDirectional(d Directional) {
	c.Store(d.Sample())
}

// Release zeroes the movement axes, as when a joystick is let go.
func (c *Cached) Release() {
	c.mu.Lock()
	c.sample.MoveX = 0
	c.sample.MoveZ = 0
	c.mu.Unlock()
}

// Sample returns the cached sample.
func (c *Cached) Sample() Sample {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sample
}

// Toggle turns a held button into a sticky on/off state.
// The state flips on each released-to-pressed edge.
type Toggle struct {
	held bool
	on   bool
}

// Update feeds the current button state and returns the toggle state.
func (t *Toggle) Update(pressed bool) bool {
	if pressed && !t.held {
		t.on = !t.on
	}
	t.held = pressed
	return t.on
}

// On returns the current toggle state.
func (t *Toggle) On() bool {
	return t.on
}

// Set forces the toggle state.
func (t *Toggle) Set(on bool) {
	t.on = on
}
