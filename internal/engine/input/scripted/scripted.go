// Package scripted drives the character from a tengo script, for headless
// episode generation.
//
// The script defines a function
//
//	control := func(obs, state) { return {move_x: 0, move_z: -1, sit: false} }
//
// called once per tick. obs carries tick, x, z, elapsed and near (a list of
// POI type names). state is a map kept across ticks.
package scripted

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"

	"github.com/Faultbox/vrbox/internal/engine/input"
	"github.com/Faultbox/vrbox/internal/logger"
)

const dispatchScript = `
__out := control(__obs, __state)
`

// Observation is what the script sees of the previous tick.
type Observation struct {
	Tick    uint64
	X, Z    float64
	Elapsed float64
	Near    []string
}

// Source is an input.Source backed by a compiled script.
type Source struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
	observe  func() Observation

	failures int
	log      *zap.Logger
}

// Load compiles the script at path.
func Load(path string) (*Source, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := New(path, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// New compiles src. name is used in log messages.
func New(name string, src []byte) (*Source, error) {
	full := append(append([]byte{}, src...), dispatchScript...)
	script := tengo.NewScript(full)
	_ = script.Add("__obs", map[string]interface{}{})
	_ = script.Add("__state", map[string]interface{}{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("failed to compile script: %w", err)
	}

	return &Source{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		observe:  func() Observation { return Observation{} },
		log:      logger.Named("script").With(zap.String("script", name)),
	}, nil
}

// Bind sets the function that reports the latest observation.
func (s *Source) Bind(observe func() Observation) {
	if observe != nil {
		s.observe = observe
	}
}

// Reset clears the script's persistent state map.
func (s *Source) Reset() {
	s.state = &tengo.Map{Value: map[string]tengo.Object{}}
}

// Sample runs the script once. A failing run yields an idle sample.
func (s *Source) Sample() input.Sample {
	obs := s.observe()
	near := make([]interface{}, len(obs.Near))
	for i, n := range obs.Near {
		near[i] = n
	}

	if err := s.run(map[string]interface{}{
		"tick":    int64(obs.Tick),
		"x":       obs.X,
		"z":       obs.Z,
		"elapsed": obs.Elapsed,
		"near":    near,
	}); err != nil {
		s.failures++
		if s.failures == 1 {
			s.log.Warn("script run failed", zap.Uint64("tick", obs.Tick), zap.Error(err))
		}
		return input.Sample{}
	}

	out := s.compiled.Get("__out").Map()
	return input.Sample{
		MoveX:      toFloat(out["move_x"]),
		MoveZ:      toFloat(out["move_z"]),
		Sit:        toBool(out["sit"]),
		Continuous: true,
	}
}

// Failures returns how many runs have failed.
func (s *Source) Failures() int {
	return s.failures
}

// run executes one call of control. Panics raised inside the VM, such as an
// integer division by zero, are returned as errors.
func (s *Source) run(obs map[string]interface{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("script panic: %v", r)
		}
	}()
	if err := s.compiled.Set("__obs", obs); err != nil {
		return err
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		return err
	}
	return s.compiled.Run()
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
	}
	return 0
}

func toBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	case float64:
		return b != 0
	}
	return false
}
