package world

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	vmath "github.com/Faultbox/vrbox/pkg/math"
)

func TestZonesLatch(t *testing.T) {
	w := New("test", nil, []ZoneTrigger{{Zone: IndoorZone, MaxZ: -160}}, Rect{-200, 200, -200, 200})

	if got := w.Update(vmath.Vec2{Y: -100}); len(got) != 0 {
		t.Errorf("Update(-100) revealed %v", got)
	}
	got := w.Update(vmath.Vec2{Y: -170})
	if len(got) != 1 || got[0] != IndoorZone {
		t.Fatalf("Update(-170) = %v, want [indoor]", got)
	}
	if got := w.Update(vmath.Vec2{Y: -180}); len(got) != 0 {
		t.Errorf("second reveal reported %v", got)
	}
	w.Update(vmath.Vec2{Y: 0})
	if !w.Zones.Revealed(IndoorZone) {
		t.Error("zone hid again after leaving")
	}

	w.Reset()
	if w.Zones.Revealed(IndoorZone) {
		t.Error("Reset left zone revealed")
	}
}

func TestZeroZonesReveal(t *testing.T) {
	var z Zones
	if !z.Reveal("attic") || !z.Revealed("attic") {
		t.Error("zero Zones could not reveal")
	}
}

func TestGenerateTownDeterministic(t *testing.T) {
	p := DefaultTownParams()
	p.Seed = 42
	a := GenerateTown(p)
	b := GenerateTown(p)

	if len(a.POIs) != len(b.POIs) {
		t.Fatalf("POI count differs: %d vs %d", len(a.POIs), len(b.POIs))
	}
	for i := range a.POIs {
		if a.POIs[i] != b.POIs[i] {
			t.Errorf("POI %d differs: %+v vs %+v", i, a.POIs[i], b.POIs[i])
		}
	}
}

func TestGenerateTownLayout(t *testing.T) {
	p := DefaultTownParams()
	w := GenerateTown(p)

	if w.Count(POISofa) != 1 || w.Count(POIBed) != 1 {
		t.Errorf("sofa=%d bed=%d, want 1 each", w.Count(POISofa), w.Count(POIBed))
	}
	benches := w.Count(POIBench)
	if benches == 0 || benches > 121 {
		t.Errorf("bench count %d out of range", benches)
	}

	for _, poi := range w.POIs {
		if poi.Type != POIBench {
			if poi.Zone != IndoorZone {
				t.Errorf("%s not gated by indoor zone", poi.ID)
			}
			continue
		}
		// Benches stay within half the spread of a block center.
		cx := poi.Position.X / p.BlockSize
		cz := poi.Position.Y / p.BlockSize
		dx := (cx - float64(int64(cx+sign(cx)*0.5))) * p.BlockSize
		dz := (cz - float64(int64(cz+sign(cz)*0.5))) * p.BlockSize
		if abs(dx) > p.BenchSpread/2 || abs(dz) > p.BenchSpread/2 {
			t.Errorf("%s at %v too far from block center", poi.ID, poi.Position)
		}
	}

	if w.Bounds != (Rect{-200, 200, -200, 200}) {
		t.Errorf("Bounds = %+v", w.Bounds)
	}

	// The bed is hidden until the character walks into the house.
	bed := vmath.Vec2{X: p.BedOffsetX, Y: p.IndoorCenterZ}
	if w.Nearby(bed).Has(POIBed) {
		t.Error("bed visible before reveal")
	}
	w.Update(bed)
	if !w.Nearby(bed).Has(POIBed) {
		t.Error("bed not near after reveal")
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

const testLayout = `
name: flat
bounds: {min_x: -50, max_x: 50, min_z: -50, max_z: 50}
triggers:
  - zone: indoor
    max_z: -20
pois:
  - id: park-bench
    type: bench
    x: 5
    z: 5
  - id: bed
    type: Bed
    x: 0
    z: -30
    radius: 3
    zone: indoor
`

func TestParseLayout(t *testing.T) {
	w, err := ParseLayout([]byte(testLayout))
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if w.Name != "flat" || len(w.POIs) != 2 {
		t.Fatalf("unexpected world %s", w)
	}
	if w.POIs[0].Radius != DefaultActivationRadius {
		t.Errorf("default radius = %v", w.POIs[0].Radius)
	}
	if w.POIs[1].Type != POIBed || w.POIs[1].Radius != 3 {
		t.Errorf("bed = %+v", w.POIs[1])
	}
	if w.Zones.Revealed(IndoorZone) {
		t.Error("zone revealed at load")
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		target error
		substr string
	}{
		{
			name:   "unknown type",
			yaml:   "bounds: {min_x: -1, max_x: 1, min_z: -1, max_z: 1}\npois:\n  - {id: a, type: throne}\n",
			target: ErrUnknownPOIType,
		},
		{
			name:   "duplicate id",
			yaml:   "bounds: {min_x: -1, max_x: 1, min_z: -1, max_z: 1}\npois:\n  - {id: a, type: bench}\n  - {id: a, type: sofa}\n",
			target: ErrDuplicatePOI,
		},
		{
			name:   "negative radius",
			yaml:   "bounds: {min_x: -1, max_x: 1, min_z: -1, max_z: 1}\npois:\n  - {id: a, type: bench, radius: -2}\n",
			substr: "radius",
		},
		{
			name:   "empty bounds",
			yaml:   "pois: []\n",
			substr: "bounds",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
			if tt.substr != "" && !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("err = %v, want mention of %q", err, tt.substr)
			}
		})
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	orig := GenerateTown(DefaultTownParams())
	path := filepath.Join(t.TempDir(), "layouts", "town.yaml")

	if err := SaveLayout(orig, path); err != nil {
		t.Fatalf("SaveLayout: %v", err)
	}
	loaded, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if len(loaded.POIs) != len(orig.POIs) {
		t.Fatalf("POI count %d, want %d", len(loaded.POIs), len(orig.POIs))
	}
	for i := range orig.POIs {
		if loaded.POIs[i] != orig.POIs[i] {
			t.Errorf("POI %d = %+v, want %+v", i, loaded.POIs[i], orig.POIs[i])
		}
	}
	if len(loaded.Triggers) != 1 || loaded.Triggers[0] != orig.Triggers[0] {
		t.Errorf("triggers = %+v", loaded.Triggers)
	}
}
