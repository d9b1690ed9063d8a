package episode

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/vrbox/internal/game/world"
	"github.com/Faultbox/vrbox/internal/logger"
)

// State is the recorder's lifecycle state.
type State int

const (
	Idle State = iota
	Recording
)

func (s State) String() string {
	if s == Recording {
		return "recording"
	}
	return "idle"
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithFormat sets the export format.
func WithFormat(f Format) Option {
	return func(r *Recorder) { r.format = f }
}

// WithAutoStart controls whether the recorder begins Recording at construction.
func WithAutoStart(on bool) Option {
	return func(r *Recorder) { r.autoStart = on }
}

// Recorder accumulates steps while Recording. It is not safe for concurrent use.
type Recorder struct {
	schema    Schema
	format    Format
	autoStart bool

	state State
	id    string
	steps []Step

	log *zap.Logger
}

// NewRecorder creates a recorder for schema. By default it starts Recording.
func NewRecorder(schema Schema, opts ...Option) *Recorder {
	r := &Recorder{
		schema:    Schema{Near: append([]world.POIType(nil), schema.Near...)},
		autoStart: true,
		log:       logger.Named("recorder"),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.autoStart {
		r.Begin()
	}
	return r
}

// Begin clears the buffer, assigns a new episode ID and starts Recording.
func (r *Recorder) Begin() {
	r.steps = r.steps[:0]
	r.id = uuid.New().String()
	r.state = Recording
	r.log.Info("episode started", zap.String("episode", r.id), zap.Strings("schema", r.schema.Fields()))
}

// Stop ends Recording and keeps the buffer.
func (r *Recorder) Stop() {
	if r.state != Recording {
		return
	}
	r.state = Idle
	r.log.Info("episode stopped", zap.String("episode", r.id), zap.Int("steps", len(r.steps)))
}

// Reset clears the buffer without changing the state.
func (r *Recorder) Reset() {
	r.steps = r.steps[:0]
	r.log.Debug("episode reset", zap.String("episode", r.id), zap.Stringer("state", r.state))
}

// RecordStep appends one step while Recording and reports whether it was
// accepted. Steps whose state width does not match the schema are dropped.
func (r *Recorder) RecordStep(tick uint64, state []float64, action [3]float64, reward float64) bool {
	if r.state != Recording {
		return false
	}
	if len(state) != r.schema.Width() {
		r.log.Debug("step rejected",
			zap.Uint64("tick", tick),
			zap.Int("width", len(state)),
			zap.Int("want", r.schema.Width()),
		)
		return false
	}
	s := make([]float64, len(state))
	copy(s, state)
	r.steps = append(r.steps, Step{Tick: tick, State: s, Action: action, Reward: reward})
	return true
}

// Episode returns the buffered steps in columnar form. The buffer is not cleared.
func (r *Recorder) Episode() *Episode {
	e := &Episode{
		States:  make([][]float64, len(r.steps)),
		Actions: make([][3]float64, len(r.steps)),
		Rewards: make([]float64, len(r.steps)),
	}
	for i, s := range r.steps {
		e.States[i] = append([]float64(nil), s.State...)
		e.Actions[i] = s.Action
		e.Rewards[i] = s.Reward
	}
	return e
}

// Export encodes the buffered episode in the configured format.
func (r *Recorder) Export() ([]byte, error) {
	return Encode(r.Episode(), r.format)
}

// Steps returns a copy of the buffered steps.
func (r *Recorder) Steps() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// Len returns the number of buffered steps.
func (r *Recorder) Len() int { return len(r.steps) }

func (r *Recorder) State() State { return r.state }

// ID returns the current episode ID, empty before the first Begin.
func (r *Recorder) ID() string { return r.id }

func (r *Recorder) Schema() Schema { return r.schema }

func (r *Recorder) Format() Format { return r.format }

// TotalReward sums the rewards in the buffer.
func (r *Recorder) TotalReward() float64 {
	var sum float64
	for _, s := range r.steps {
		sum += s.Reward
	}
	return sum
}
