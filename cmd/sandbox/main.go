// Package main is the entry point for the humanoid sandbox.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/vrbox/internal/config"
	"github.com/Faultbox/vrbox/internal/engine/input"
	"github.com/Faultbox/vrbox/internal/engine/input/scripted"
	"github.com/Faultbox/vrbox/internal/game"
	"github.com/Faultbox/vrbox/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote config to %s\n", path)
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== VR Box Sandbox ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	session, script, err := newSession(cfg)
	if err != nil {
		logger.Error("failed to create session", zap.Error(err))
		os.Exit(1)
	}

	if cfg.Session.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = runHeadless(ctx, cfg, session)
	} else {
		err = runInteractive(cfg, session, script)
	}
	if err != nil {
		logger.Error("sandbox error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("sandbox closed normally")
}

// newSession builds the world, reward policy, recorder and session from
// config. A configured script is registered as the first input source.
func newSession(cfg *config.Config) (*game.Session, *scripted.Source, error) {
	w, err := cfg.LoadWorld()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load world: %w", err)
	}
	policy, err := cfg.RewardPolicy()
	if err != nil {
		return nil, nil, err
	}
	motion, err := cfg.MotionParams()
	if err != nil {
		return nil, nil, err
	}
	recOpts, err := cfg.RecorderOptions()
	if err != nil {
		return nil, nil, err
	}

	sc := game.DefaultConfig()
	sc.Motion = motion
	sc.Pose = cfg.PoseParams()
	sc.SpawnX = cfg.Motion.SpawnX
	sc.SpawnZ = cfg.Motion.SpawnZ
	sc.Recorder = recOpts

	normalizer := input.NewNormalizer(nil, input.WithDeadzone(cfg.Input.Deadzone))
	session := game.New(sc, normalizer, w, policy)

	var script *scripted.Source
	if cfg.Session.Script != "" {
		script, err = scripted.Load(cfg.Session.Script)
		if err != nil {
			return nil, nil, err
		}
		script.Bind(func() scripted.Observation {
			f := session.Last()
			near := make([]string, 0, f.Near.Len())
			for _, t := range f.Near.Types() {
				near = append(near, t.String())
			}
			return scripted.Observation{
				Tick:    f.Tick,
				X:       f.Position.X,
				Z:       f.Position.Z,
				Elapsed: f.Elapsed,
				Near:    near,
			}
		})
		normalizer.Register(script)
	}
	return session, script, nil
}
