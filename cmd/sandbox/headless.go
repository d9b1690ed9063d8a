package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/Faultbox/vrbox/internal/config"
	"github.com/Faultbox/vrbox/internal/game"
	"github.com/Faultbox/vrbox/internal/logger"
)

// runHeadless ticks the session at a fixed rate for the configured number
// of frames, then exports the episode. Cancelling ctx stops early and still
// exports. An Idle recorder is started first.
func runHeadless(ctx context.Context, cfg *config.Config, session *game.Session) error {
	session.EnsureRecording()
	dt := 1 / cfg.Session.TickRate
	logger.Info("running headless",
		zap.Int("frames", cfg.Session.Frames),
		zap.Float64("dt", dt),
		zap.String("script", cfg.Session.Script),
	)

	var reward float64
	for i := 0; i < cfg.Session.Frames; i++ {
		if ctx.Err() != nil {
			logger.Warn("interrupted", zap.Int("frames", i))
			break
		}
		f := session.Tick(dt)
		reward += f.Reward
		if len(f.Revealed) > 0 {
			logger.Debug("frame", zap.Stringer("frame", f))
		}
	}

	logger.Info("headless run finished",
		zap.Uint64("ticks", session.Ticks()),
		zap.Float64("total_reward", reward),
		zap.Stringer("final", session.Last()),
	)
	return session.ExportTo(cfg.ExportPath())
}
