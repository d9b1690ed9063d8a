package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Faultbox/vrbox/internal/engine/character"
	"github.com/Faultbox/vrbox/internal/game/episode"
	"github.com/Faultbox/vrbox/internal/game/reward"
	"github.com/Faultbox/vrbox/internal/game/world"
	vmath "github.com/Faultbox/vrbox/pkg/math"
)

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if err := c.checkFinite(); err != nil {
		return err
	}
	if _, err := character.ParseMode(c.Motion.Mode); err != nil {
		return fmt.Errorf("motion.mode: %w", err)
	}
	if !(c.Motion.FrameRate > 0) {
		return fmt.Errorf("motion.frame_rate must be positive, got %v", c.Motion.FrameRate)
	}
	if !(c.Motion.Damping > 0 && c.Motion.Damping <= 1) {
		return fmt.Errorf("motion.damping must be in (0, 1], got %v", c.Motion.Damping)
	}
	if c.Motion.MaxSpeed <= 0 {
		return fmt.Errorf("motion.max_speed must be positive, got %v", c.Motion.MaxSpeed)
	}
	if c.Input.Deadzone < 0 || c.Input.Deadzone >= 1 {
		return fmt.Errorf("input.deadzone must be in [0, 1), got %v", c.Input.Deadzone)
	}
	if c.World.LayoutFile == "" && !(c.World.ActivationRadius > 0) {
		return errors.New("world.activation_radius must be positive")
	}
	if _, err := reward.NewPolicy(c.Reward.Table); err != nil {
		return fmt.Errorf("reward.table: %w", err)
	}
	if _, err := episode.ParseFormat(c.Recorder.Format); err != nil {
		return fmt.Errorf("recorder.format: %w", err)
	}
	if c.Session.Frames < 0 {
		return fmt.Errorf("session.frames must not be negative, got %d", c.Session.Frames)
	}
	if !(c.Session.TickRate > 0) {
		return fmt.Errorf("session.tick_rate must be positive, got %v", c.Session.TickRate)
	}
	return nil
}

// checkFinite rejects NaN and infinite values in settings that feed
// positions, distances or rewards.
func (c *Config) checkFinite() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"motion.speed", c.Motion.Speed},
		{"motion.acceleration", c.Motion.Acceleration},
		{"motion.max_speed", c.Motion.MaxSpeed},
		{"motion.rest_speed", c.Motion.RestSpeed},
		{"motion.frame_rate", c.Motion.FrameRate},
		{"motion.spawn_x", c.Motion.SpawnX},
		{"motion.spawn_z", c.Motion.SpawnZ},
		{"input.deadzone", c.Input.Deadzone},
		{"world.block_size", c.World.BlockSize},
		{"world.bench_chance", c.World.BenchChance},
		{"world.activation_radius", c.World.ActivationRadius},
		{"world.indoor_reveal_z", c.World.IndoorRevealZ},
		{"world.ground_size", c.World.GroundSize},
		{"session.tick_rate", c.Session.TickRate},
	}
	for _, f := range fields {
		if !vmath.IsFinite(f.value) {
			return fmt.Errorf("%s must be a finite number, got %v", f.name, f.value)
		}
	}
	return nil
}

// MotionParams converts the motion section.
func (c *Config) MotionParams() (character.MotionParams, error) {
	mode, err := character.ParseMode(c.Motion.Mode)
	if err != nil {
		return character.MotionParams{}, err
	}
	return character.MotionParams{
		Mode:         mode,
		Speed:        c.Motion.Speed,
		Acceleration: c.Motion.Acceleration,
		MaxSpeed:     c.Motion.MaxSpeed,
		Damping:      c.Motion.Damping,
		RestSpeed:    c.Motion.RestSpeed,
		FrameRate:    c.Motion.FrameRate,
		MaxStep:      c.Motion.MaxStep.Seconds(),
	}, nil
}

// PoseParams converts the pose section.
func (c *Config) PoseParams() character.PoseParams {
	p := character.DefaultPoseParams()
	p.SwingAmplitude = c.Pose.SwingAmplitude
	p.SwingFrequency = c.Pose.SwingFrequency
	p.MovingEpsilon = c.Pose.MovingEpsilon
	p.StandingHeight = c.Pose.StandingHeight
	p.SeatedHeight = c.Pose.SeatedHeight
	return p
}

// TownParams converts the world section for procedural generation.
func (c *Config) TownParams() world.TownParams {
	p := world.DefaultTownParams()
	p.Seed = c.World.Seed
	p.GridSize = c.World.GridSize
	p.BlockSize = c.World.BlockSize
	p.BenchChance = c.World.BenchChance
	p.Radius = c.World.ActivationRadius
	p.IndoorRevealZ = c.World.IndoorRevealZ
	p.GroundSize = c.World.GroundSize
	return p
}

// LoadWorld loads the configured layout file, or generates the town when
// none is set.
func (c *Config) LoadWorld() (*world.World, error) {
	if c.World.LayoutFile != "" {
		return world.LoadLayout(c.World.LayoutFile)
	}
	return world.GenerateTown(c.TownParams()), nil
}

// RewardPolicy builds the reward policy.
func (c *Config) RewardPolicy() (*reward.Policy, error) {
	return reward.NewPolicy(c.Reward.Table)
}

// RecorderOptions converts the recorder section.
func (c *Config) RecorderOptions() ([]episode.Option, error) {
	format, err := episode.ParseFormat(c.Recorder.Format)
	if err != nil {
		return nil, err
	}
	return []episode.Option{
		episode.WithFormat(format),
		episode.WithAutoStart(c.Recorder.AutoStart),
	}, nil
}

// ExportPath returns where episodes are written.
func (c *Config) ExportPath() string {
	name := c.Recorder.FileName
	if name == "" {
		name = episode.DefaultFileName
	}
	return filepath.Join(c.Recorder.ExportDir, name)
}
