// Package config handles sandbox configuration loading and management.
package config

import (
	"time"

	"github.com/Faultbox/vrbox/internal/engine/character"
	"github.com/Faultbox/vrbox/internal/game/episode"
	"github.com/Faultbox/vrbox/internal/game/reward"
	"github.com/Faultbox/vrbox/internal/game/world"
)

// Config holds all sandbox settings.
type Config struct {
	Motion   MotionConfig   `yaml:"motion"`
	Pose     PoseConfig     `yaml:"pose"`
	Input    InputConfig    `yaml:"input"`
	World    WorldConfig    `yaml:"world"`
	Reward   RewardConfig   `yaml:"reward"`
	Recorder RecorderConfig `yaml:"recorder"`
	Session  SessionConfig  `yaml:"session"`
	Window   WindowConfig   `yaml:"window"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// MotionConfig tunes the motion integrator. Smoothed-mode values are per
// reference frame at FrameRate.
type MotionConfig struct {
	Mode         string        `yaml:"mode"`  // "smoothed" or "direct"
	Speed        float64       `yaml:"speed"` // Direct mode, units per second
	Acceleration float64       `yaml:"acceleration"`
	MaxSpeed     float64       `yaml:"max_speed"`
	Damping      float64       `yaml:"damping"`
	RestSpeed    float64       `yaml:"rest_speed"`
	FrameRate    float64       `yaml:"frame_rate"`
	MaxStep      time.Duration `yaml:"max_step"`
	SpawnX       float64       `yaml:"spawn_x"`
	SpawnZ       float64       `yaml:"spawn_z"`
}

// PoseConfig tunes the walk cycle and sitting pose.
type PoseConfig struct {
	SwingAmplitude float64 `yaml:"swing_amplitude"`
	SwingFrequency float64 `yaml:"swing_frequency"`
	MovingEpsilon  float64 `yaml:"moving_epsilon"`
	StandingHeight float64 `yaml:"standing_height"`
	SeatedHeight   float64 `yaml:"seated_height"`
}

// InputConfig holds input device settings.
type InputConfig struct {
	Deadzone  float64 `yaml:"deadzone"`
	SitToggle bool    `yaml:"sit_toggle"`
	Joystick  bool    `yaml:"joystick"`
}

// WorldConfig selects a layout file or the procedural town.
type WorldConfig struct {
	LayoutFile       string  `yaml:"layout_file"` // Empty generates a town
	Seed             int64   `yaml:"seed"`
	GridSize         int     `yaml:"grid_size"`
	BlockSize        float64 `yaml:"block_size"`
	BenchChance      float64 `yaml:"bench_chance"`
	ActivationRadius float64 `yaml:"activation_radius"`
	IndoorRevealZ    float64 `yaml:"indoor_reveal_z"`
	GroundSize       float64 `yaml:"ground_size"`
}

// RewardConfig holds the reward table, highest priority first.
type RewardConfig struct {
	Table []reward.Entry `yaml:"table"`
}

// RecorderConfig holds episode recording and export settings.
type RecorderConfig struct {
	AutoStart bool   `yaml:"auto_start"`
	Format    string `yaml:"format"` // "wrapped" or "bare"
	ExportDir string `yaml:"export_dir"`
	FileName  string `yaml:"file_name"`
}

// SessionConfig controls how the sandbox runs.
type SessionConfig struct {
	Headless bool    `yaml:"headless"`
	Frames   int     `yaml:"frames"` // Headless tick budget
	Script   string  `yaml:"script"` // tengo control script
	TickRate float64 `yaml:"tick_rate"`
}

// WindowConfig holds the debug view window settings.
type WindowConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	VSync  bool    `yaml:"vsync"`
	Scale  float64 `yaml:"scale"` // Pixels per world unit
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the default tuning.
func Default() *Config {
	town := world.DefaultTownParams()
	return &Config{
		Motion: MotionConfig{
			Mode:         character.ModeSmoothed.String(),
			Speed:        character.DefaultDirectSpeed,
			Acceleration: character.DefaultAcceleration,
			MaxSpeed:     character.DefaultMaxSpeed,
			Damping:      character.DefaultDamping,
			RestSpeed:    character.DefaultRestSpeed,
			FrameRate:    character.DefaultFrameRate,
			MaxStep:      250 * time.Millisecond,
		},
		Pose: PoseConfig{
			SwingAmplitude: character.DefaultSwingAmplitude,
			SwingFrequency: character.DefaultSwingFrequency,
			MovingEpsilon:  character.DefaultMovingEpsilon,
			StandingHeight: character.DefaultStandingHeight,
			SeatedHeight:   character.DefaultSeatedHeight,
		},
		Input: InputConfig{
			Deadzone:  0,
			SitToggle: true,
			Joystick:  true,
		},
		World: WorldConfig{
			Seed:             town.Seed,
			GridSize:         town.GridSize,
			BlockSize:        town.BlockSize,
			BenchChance:      town.BenchChance,
			ActivationRadius: town.Radius,
			IndoorRevealZ:    town.IndoorRevealZ,
			GroundSize:       town.GroundSize,
		},
		Reward: RewardConfig{
			Table: reward.DefaultTable(),
		},
		Recorder: RecorderConfig{
			AutoStart: true,
			Format:    episode.FormatWrapped.String(),
			ExportDir: ".",
			FileName:  episode.DefaultFileName,
		},
		Session: SessionConfig{
			Frames:   600,
			TickRate: character.DefaultFrameRate,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 800,
			VSync:  true,
			Scale:  2,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
