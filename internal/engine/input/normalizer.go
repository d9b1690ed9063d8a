package input

import (
	"math"

	"go.uber.org/zap"

	"github.com/Faultbox/vrbox/internal/logger"
	vmath "github.com/Faultbox/vrbox/pkg/math"
)

// Normalizer merges registered sources into one Intent per tick.
//
// Merge rules, per axis:
//   - the first continuous source whose value exceeds the deadzone wins
//   - otherwise discrete sources are summed and clamped to [-1, 1]
//
// Sit is OR'd across all sources. Sticky sit toggling belongs to the
// source that reads the button (see Toggle).
type Normalizer struct {
	sources  []Source
	deadzone float64
	log      *zap.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithDeadzone ignores continuous axis values whose magnitude is at or
// below d. The default of 0 lets any non-zero analog value override the
// keyboard.
func WithDeadzone(d float64) Option {
	return func(n *Normalizer) {
		if vmath.IsFinite(d) && d > 0 {
			n.deadzone = math.Min(d, 1)
		}
	}
}

// NewNormalizer creates a normalizer with the given sources registered.
func NewNormalizer(sources []Source, opts ...Option) *Normalizer {
	n := &Normalizer{log: logger.Named("input")}
	for _, opt := range opts {
		opt(n)
	}
	for _, src := range sources {
		n.Register(src)
	}
	return n
}

// Register adds a source. Nil sources are ignored.
func (n *Normalizer) Register(src Source) {
	if src == nil {
		return
	}
	n.sources = append(n.sources, src)
	n.log.Debug("input source registered", zap.Int("sources", len(n.sources)))
}

// Len returns the number of registered sources.
func (n *Normalizer) Len() int {
	return len(n.sources)
}

// Sample reads every source once and returns the merged intent.
// With no sources the result is the zero Intent.
func (n *Normalizer) Sample() Intent {
	var (
		discreteX, discreteZ float64
		analogX, analogZ     float64
		haveX, haveZ         bool
		sit                  bool
	)

	for _, src := range n.sources {
		s := src.Sample()
		x := vmath.ClampUnit(s.MoveX)
		z := vmath.ClampUnit(s.MoveZ)
		sit = sit || s.Sit

		if !s.Continuous {
			discreteX += x
			discreteZ += z
			continue
		}
		if !haveX && math.Abs(x) > n.deadzone {
			analogX, haveX = x, true
		}
		if !haveZ && math.Abs(z) > n.deadzone {
			analogZ, haveZ = z, true
		}
	}

	intent := Intent{
		MoveX: vmath.ClampUnit(discreteX),
		MoveZ: vmath.ClampUnit(discreteZ),
		Sit:   sit,
	}
	if haveX {
		intent.MoveX = analogX
	}
	if haveZ {
		intent.MoveZ = analogZ
	}
	return intent
}
