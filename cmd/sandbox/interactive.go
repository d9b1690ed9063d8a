package main

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/vrbox/internal/config"
	"github.com/Faultbox/vrbox/internal/engine/debug"
	"github.com/Faultbox/vrbox/internal/engine/input/scripted"
	"github.com/Faultbox/vrbox/internal/engine/input/sdlinput"
	"github.com/Faultbox/vrbox/internal/engine/window"
	"github.com/Faultbox/vrbox/internal/game"
	"github.com/Faultbox/vrbox/internal/logger"
)

// runInteractive opens the debug window and drives the session from the
// keyboard and game controllers until the window closes or Esc is pressed.
// F6 starts and stops recording.
func runInteractive(cfg *config.Config, session *game.Session, script *scripted.Source) error {
	win, err := window.New(window.Config{
		Title:  "VR Box Sandbox",
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	keyboard := sdlinput.NewKeyboard(cfg.Input.SitToggle)
	session.Input().Register(keyboard)

	var controllers *sdlinput.Controllers
	if cfg.Input.Joystick {
		controllers = sdlinput.NewControllers()
		defer controllers.Close()
		session.Input().Register(controllers)
	}
	pump := sdlinput.NewPump(controllers)
	shots := debug.NewScreenshotCapture(cfg.Recorder.ExportDir, "sandbox")
	view := newView(win.Renderer(), session.World(), cfg.Window.Scale, shots, session.Recorder().ID)

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting sandbox loop")

	running := true
	for running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if pump.Update() {
			break
		}
		for _, event := range pump.Events() {
			if event.Type != sdlinput.EventKeyDown {
				continue
			}
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				running = false
			case sdl.SCANCODE_F5:
				if err := session.ExportTo(cfg.ExportPath()); err != nil {
					logger.Error("export failed", zap.Error(err))
				}
			case sdl.SCANCODE_F6:
				state := session.ToggleRecording()
				logger.Info("recording toggled", zap.Stringer("state", state), zap.String("episode", session.Recorder().ID()))
			case sdl.SCANCODE_F12:
				view.RequestCapture()
			case sdl.SCANCODE_R:
				session.Restart()
				keyboard.Reset()
				if controllers != nil {
					controllers.Reset()
				}
				if script != nil {
					script.Reset()
				}
			}
		}

		// 2. Advance the session
		f := session.Tick(dt)

		// 3. Render
		if err := view.Draw(f); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			win.SetTitle(fmt.Sprintf("VR Box Sandbox - %d fps - steps %d - reward %g",
				frameCount, session.Recorder().Len(), session.Recorder().TotalReward()))
			logger.Debug("fps", zap.Int("count", frameCount), zap.Stringer("frame", f))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}
