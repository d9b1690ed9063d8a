// Package game runs the sandbox control loop: input, motion, pose,
// points of interest, reward and recording, once per tick.
package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/vrbox/internal/engine/character"
	"github.com/Faultbox/vrbox/internal/engine/input"
	"github.com/Faultbox/vrbox/internal/game/episode"
	"github.com/Faultbox/vrbox/internal/game/reward"
	"github.com/Faultbox/vrbox/internal/game/world"
	"github.com/Faultbox/vrbox/internal/logger"
	vmath "github.com/Faultbox/vrbox/pkg/math"
)

// Config holds session tuning.
type Config struct {
	Motion         character.MotionParams
	Pose           character.PoseParams
	SpawnX, SpawnZ float64
	Schema         episode.Schema
	Recorder       []episode.Option
}

// DefaultConfig returns the default tuning.
func DefaultConfig() Config {
	return Config{
		Motion: character.DefaultMotionParams(),
		Pose:   character.DefaultPoseParams(),
		Schema: episode.DefaultSchema(),
	}
}

// Session owns every per-character component and advances them together.
// It is driven from a single goroutine.
type Session struct {
	cfg Config

	input      *input.Normalizer
	integrator *character.Integrator
	facing     *character.Facing
	world      *world.World
	policy     *reward.Policy
	recorder   *episode.Recorder

	tick    uint64
	elapsed float64
	last    Frame

	log *zap.Logger
}

// New creates a session. A nil policy uses the default reward table.
func New(cfg Config, in *input.Normalizer, w *world.World, policy *reward.Policy) *Session {
	if in == nil {
		in = input.NewNormalizer(nil)
	}
	if w == nil {
		w = world.New("empty", nil, nil, world.Rect{})
	}
	if policy == nil {
		policy = reward.Default()
	}
	if len(cfg.Schema.Near) == 0 {
		cfg.Schema = episode.DefaultSchema()
	}

	integrator := character.NewIntegrator(cfg.Motion, cfg.SpawnX, cfg.SpawnZ)
	if w.Bounds.Valid() {
		integrator.SetBounds(character.Bounds{
			MinX: w.Bounds.MinX, MaxX: w.Bounds.MaxX,
			MinZ: w.Bounds.MinZ, MaxZ: w.Bounds.MaxZ,
		})
	}

	s := &Session{
		cfg:        cfg,
		input:      in,
		integrator: integrator,
		facing:     character.NewFacing(),
		world:      w,
		policy:     policy,
		recorder:   episode.NewRecorder(cfg.Schema, cfg.Recorder...),
		log:        logger.Named("session"),
	}
	s.last = s.snapshot(input.Intent{}, integrator.State(), nil)

	s.log.Info("session created",
		zap.String("world", w.Name),
		zap.Int("pois", len(w.POIs)),
		zap.Stringer("mode", integrator.Params().Mode),
		zap.String("episode", s.recorder.ID()),
	)
	return s
}

// Tick advances the session by dt seconds and returns the resulting frame.
// Exactly one step is recorded per tick while the recorder is Recording.
func (s *Session) Tick(dt float64) Frame {
	intent := s.input.Sample()
	motion := s.integrator.Step(intent, dt)
	if vmath.IsFinite(dt) && dt > 0 {
		s.elapsed += dt
	}

	pos := vmath.Vec2{X: motion.PositionX, Y: motion.PositionZ}
	revealed := s.world.Update(pos)

	f := s.snapshot(intent, motion, revealed)
	s.recorder.RecordStep(s.tick, s.cfg.Schema.State(pos.X, pos.Y, f.Near), intent.Action(), f.Reward)

	s.last = f
	s.tick++
	return f
}

// snapshot derives pose, nearby types and reward for the current tick.
func (s *Session) snapshot(intent input.Intent, motion character.MotionState, revealed []string) Frame {
	pos := vmath.Vec2{X: motion.PositionX, Y: motion.PositionZ}
	pose := character.DerivePose(motion, intent.Sit, s.elapsed, s.cfg.Pose)
	near := s.world.Nearby(pos)

	return Frame{
		Tick:      s.tick,
		Elapsed:   s.elapsed,
		Position:  vmath.Lift(pos, pose.VerticalOffset),
		Velocity:  vmath.Vec2{X: motion.VelocityX, Y: motion.VelocityZ},
		Direction: s.facing.Update(motion.Heading),
		Pose:      pose,
		Intent:    intent,
		Near:      near,
		Reward:    s.policy.Evaluate(intent.Sit, near),
		Revealed:  revealed,
	}
}

// Last returns the most recent frame.
func (s *Session) Last() Frame {
	return s.last
}

// Restart returns the character to spawn, hides all zones and begins a new episode.
func (s *Session) Restart() {
	prev := s.recorder.ID()
	s.integrator.Reset()
	s.facing.Reset()
	s.world.Reset()
	s.tick = 0
	s.elapsed = 0
	s.recorder.Begin()
	s.last = s.snapshot(input.Intent{}, s.integrator.State(), nil)
	s.log.Info("session restarted", zap.String("previous", prev), zap.String("episode", s.recorder.ID()))
}

// ToggleRecording stops a Recording episode, keeping its steps, or begins a
// new one when the recorder is Idle. It returns the new state.
func (s *Session) ToggleRecording() episode.State {
	if s.recorder.State() == episode.Recording {
		s.recorder.Stop()
	} else {
		s.recorder.Begin()
	}
	return s.recorder.State()
}

// EnsureRecording begins an episode if the recorder is Idle.
func (s *Session) EnsureRecording() {
	if s.recorder.State() == episode.Idle {
		s.recorder.Begin()
	}
}

// Export encodes the recorded episode.
func (s *Session) Export() ([]byte, error) {
	return s.recorder.Export()
}

// ExportTo writes the recorded episode to path.
func (s *Session) ExportTo(path string) error {
	data, err := s.Export()
	if err != nil {
		return err
	}
	if err := episode.WriteFile(path, data); err != nil {
		return fmt.Errorf("failed to export episode %s: %w", s.recorder.ID(), err)
	}
	s.log.Info("episode exported",
		zap.String("path", path),
		zap.String("episode", s.recorder.ID()),
		zap.Int("steps", s.recorder.Len()),
		zap.Float64("total_reward", s.recorder.TotalReward()),
	)
	return nil
}

// Recorder returns the session's recorder.
func (s *Session) Recorder() *episode.Recorder { return s.recorder }

// World returns the session's world.
func (s *Session) World() *world.World { return s.world }

// Input returns the session's normalizer so callers can register sources.
func (s *Session) Input() *input.Normalizer { return s.input }

// Ticks returns the number of ticks run since the last restart.
func (s *Session) Ticks() uint64 { return s.tick }
