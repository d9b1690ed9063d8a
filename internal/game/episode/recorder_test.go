package episode

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Faultbox/vrbox/internal/game/world"
)

func record3(r *Recorder) {
	r.RecordStep(0, []float64{0, 0, 0, 0, 0}, [3]float64{0, -1, 0}, 0)
	r.RecordStep(1, []float64{0, -0.045, 1, 0, 0}, [3]float64{0, -1, 0}, 0)
	r.RecordStep(2, []float64{0, -0.045, 1, 0, 0}, [3]float64{0, 0, 1}, 1)
}

func TestRecorderRoundTrip(t *testing.T) {
	r := NewRecorder(DefaultSchema())
	record3(r)

	data, err := r.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if data[0] != '[' {
		t.Errorf("default export not wrapped: %s", data)
	}

	e, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if e.Len() != 3 {
		t.Fatalf("Len = %d, want 3", e.Len())
	}
	if e.States[1][1] != -0.045 || e.States[2][2] != 1 {
		t.Errorf("states = %v", e.States)
	}
	if e.Actions[2] != [3]float64{0, 0, 1} {
		t.Errorf("actions[2] = %v", e.Actions[2])
	}
	if e.Rewards[2] != 1 || e.TotalReward() != 1 {
		t.Errorf("rewards = %v", e.Rewards)
	}
}

func TestExportIdempotent(t *testing.T) {
	r := NewRecorder(DefaultSchema())
	record3(r)

	a, err := r.Export()
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Export()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("exports differ:\n%s\n%s", a, b)
	}
	if r.Len() != 3 {
		t.Errorf("export cleared buffer: Len = %d", r.Len())
	}
}

func TestExportEmpty(t *testing.T) {
	r := NewRecorder(DefaultSchema())
	data, err := r.Export()
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"states":[],"actions":[],"rewards":[]}]`
	if string(data) != want {
		t.Errorf("Export = %s, want %s", data, want)
	}
}

func TestExportBare(t *testing.T) {
	r := NewRecorder(DefaultSchema(), WithFormat(FormatBare))
	record3(r)
	data, err := r.Export()
	if err != nil {
		t.Fatal(err)
	}
	if data[0] != '{' {
		t.Errorf("bare export starts with %q", data[0])
	}
	e, err := Decode(data)
	if err != nil || e.Len() != 3 {
		t.Errorf("Decode(bare) = %v, %v", e, err)
	}
}

func TestIdleIsNoop(t *testing.T) {
	r := NewRecorder(DefaultSchema(), WithAutoStart(false))
	if r.State() != Idle {
		t.Fatalf("State = %v, want idle", r.State())
	}
	if r.RecordStep(0, []float64{0, 0, 0, 0, 0}, [3]float64{}, 0) {
		t.Error("RecordStep accepted while idle")
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestLifecycle(t *testing.T) {
	r := NewRecorder(DefaultSchema())
	first := r.ID()
	if r.State() != Recording || first == "" {
		t.Fatalf("auto start: state=%v id=%q", r.State(), first)
	}
	record3(r)

	r.Stop()
	if r.State() != Idle || r.Len() != 3 {
		t.Errorf("Stop: state=%v len=%d", r.State(), r.Len())
	}

	r.Begin()
	if r.Len() != 0 {
		t.Errorf("Begin kept %d steps", r.Len())
	}
	if r.ID() == first {
		t.Error("Begin reused episode ID")
	}

	record3(r)
	r.Reset()
	if r.Len() != 0 || r.State() != Recording {
		t.Errorf("Reset: state=%v len=%d", r.State(), r.Len())
	}
}

func TestRejectsWrongWidth(t *testing.T) {
	r := NewRecorder(DefaultSchema())
	if r.RecordStep(0, []float64{1, 2}, [3]float64{}, 0) {
		t.Error("accepted short state")
	}
	if r.RecordStep(0, []float64{1, 2, 3, 4, 5, 6}, [3]float64{}, 0) {
		t.Error("accepted long state")
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestRecordCopiesState(t *testing.T) {
	r := NewRecorder(DefaultSchema())
	state := []float64{1, 2, 0, 0, 0}
	r.RecordStep(0, state, [3]float64{}, 0)
	state[0] = 99
	if got := r.Episode().States[0][0]; got != 1 {
		t.Errorf("recorded state aliased caller slice: %v", got)
	}
}

func TestSchemaState(t *testing.T) {
	s := DefaultSchema()
	got := s.State(3, -4, world.NewTypeSet(world.POISofa))
	want := []float64{3, -4, 0, 1, 0}
	if len(got) != len(want) {
		t.Fatalf("State = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("State[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if f := s.Fields(); f[4] != "near_bed" {
		t.Errorf("Fields = %v", f)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"blank", "  ", ErrEmptyDocument},
		{"empty array", "[]", ErrEmptyDocument},
		{"column mismatch", `{"states":[[0,0,0,0,0]],"actions":[],"rewards":[0]}`, ErrMalformed},
		{"ragged states", `{"states":[[0,0,0],[0,0]],"actions":[[0,0,0],[0,0,0]],"rewards":[0,0]}`, ErrMalformed},
		{"null episode", `[null]`, ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.in))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode(%s) err = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
	if _, err := Decode([]byte("{not json")); err == nil {
		t.Error("expected syntax error")
	}
}

func TestWriteAndReadFile(t *testing.T) {
	r := NewRecorder(DefaultSchema())
	record3(r)
	data, err := r.Export()
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out", DefaultFileName)
	if err := WriteFile(path, data); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	eps, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(eps) != 1 || eps[0].Len() != 3 {
		t.Errorf("ReadFile = %d episodes", len(eps))
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatWrapped, "wrapped": FormatWrapped, "BARE": FormatBare} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("csv"); err == nil {
		t.Error("expected error")
	}
}
