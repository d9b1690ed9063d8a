package scripted

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/vrbox/internal/engine/input"
)

const walkThenSit = `
control := func(obs, state) {
	if obs.tick < 3 {
		return {move_z: -1}
	}
	return {sit: true}
}
`

func TestWalkThenSit(t *testing.T) {
	src, err := New("walk", []byte(walkThenSit))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var tick uint64
	src.Bind(func() Observation { return Observation{Tick: tick} })

	for ; tick < 3; tick++ {
		s := src.Sample()
		if s.MoveZ != -1 || s.MoveX != 0 || s.Sit {
			t.Errorf("tick %d: sample = %+v", tick, s)
		}
		if !s.Continuous {
			t.Error("scripted samples should be continuous")
		}
	}
	if s := src.Sample(); !s.Sit || s.MoveZ != 0 {
		t.Errorf("tick 3: sample = %+v", s)
	}
}

func TestStatePersists(t *testing.T) {
	src, err := New("counter", []byte(`
control := func(obs, state) {
	state.n = (state.n || 0) + 1
	return {move_x: state.n > 2 ? 0.5 : 0}
}
`))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	src.Sample()
	src.Sample()
	if s := src.Sample(); s.MoveX != 0.5 {
		t.Errorf("third sample MoveX = %v, want 0.5", s.MoveX)
	}

	src.Reset()
	if s := src.Sample(); s.MoveX != 0 {
		t.Errorf("after Reset MoveX = %v, want 0", s.MoveX)
	}
}

func TestObservationFields(t *testing.T) {
	src, err := New("obs", []byte(`
control := func(obs, state) {
	sit := false
	for _, n in obs.near {
		if n == "bench" { sit = true }
	}
	return {move_x: obs.x, move_z: obs.z, sit: sit}
}
`))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	src.Bind(func() Observation {
		return Observation{X: 0.25, Z: -0.75, Near: []string{"sofa", "bench"}}
	})
	s := src.Sample()
	if s.MoveX != 0.25 || s.MoveZ != -0.75 || !s.Sit {
		t.Errorf("sample = %+v", s)
	}
}

func TestCompileError(t *testing.T) {
	if _, err := New("bad", []byte(`control := func(obs, state) {`)); err == nil {
		t.Error("expected compile error")
	}
	if _, err := New("missing", []byte(`x := 1`)); err == nil {
		t.Error("expected error when control is undefined")
	}
}

func TestRuntimeErrorYieldsIdle(t *testing.T) {
	src, err := New("boom", []byte(`
control := func(obs, state) {
	return {move_x: 1 / obs.tick}
}
`))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s := src.Sample(); s != (input.Sample{}) {
		t.Errorf("sample = %+v, want idle", s)
	}
	if src.Failures() != 1 {
		t.Errorf("Failures = %d, want 1", src.Failures())
	}

	// The next tick divides by one and runs normally.
	src.Bind(func() Observation { return Observation{Tick: 1} })
	if s := src.Sample(); s.MoveX != 1 || !s.Continuous {
		t.Errorf("sample after failure = %+v, want move_x 1", s)
	}
	if src.Failures() != 1 {
		t.Errorf("Failures = %d, want 1", src.Failures())
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.tengo")
	if err := os.WriteFile(path, []byte(walkThenSit), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "nope.tengo")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNormalizerIntegration(t *testing.T) {
	src, err := New("walk", []byte(walkThenSit))
	if err != nil {
		t.Fatal(err)
	}
	n := input.NewNormalizer([]input.Source{src})
	if got := n.Sample(); got.MoveZ != -1 {
		t.Errorf("intent = %v", got)
	}
}
