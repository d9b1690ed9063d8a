package config

import (
	"flag"
	"path/filepath"
)

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagMode     = flag.String("mode", "", "Movement mode: smoothed or direct")
	flagHeadless = flag.Bool("headless", false, "Run without a window")
	flagFrames   = flag.Int("frames", 0, "Headless tick budget")
	flagScript   = flag.String("script", "", "tengo control script")
	flagSeed     = flag.Int64("seed", 0, "Town layout seed (0 keeps the configured seed)")
	flagLayout   = flag.String("layout", "", "YAML layout file instead of the generated town")
	flagOut      = flag.String("out", "", "Episode export path")

	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the -write-config target, or "" when not set.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMode != "" {
		cfg.Motion.Mode = *flagMode
	}
	if *flagHeadless {
		cfg.Session.Headless = true
	}
	if *flagFrames > 0 {
		cfg.Session.Frames = *flagFrames
	}
	if *flagScript != "" {
		cfg.Session.Script = *flagScript
	}
	if *flagSeed != 0 {
		cfg.World.Seed = *flagSeed
	}
	if *flagLayout != "" {
		cfg.World.LayoutFile = *flagLayout
	}
	if *flagOut != "" {
		cfg.Recorder.ExportDir = filepath.Dir(*flagOut)
		cfg.Recorder.FileName = filepath.Base(*flagOut)
	}
}
