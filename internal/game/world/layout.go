package world

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	vmath "github.com/Faultbox/vrbox/pkg/math"
)

// ErrDuplicatePOI is returned when two layout entries share an ID.
var ErrDuplicatePOI = errors.New("duplicate point of interest id")

// Layout is the on-disk form of a world.
type Layout struct {
	Name     string          `yaml:"name"`
	Bounds   Rect            `yaml:"bounds"`
	Triggers []TriggerLayout `yaml:"triggers,omitempty"`
	POIs     []POILayout     `yaml:"pois"`
}

// TriggerLayout is a zone trigger entry.
type TriggerLayout struct {
	Zone string  `yaml:"zone"`
	MaxZ float64 `yaml:"max_z"`
}

// POILayout is a point of interest entry. A zero radius means DefaultActivationRadius.
type POILayout struct {
	ID     string  `yaml:"id"`
	Type   POIType `yaml:"type"`
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Radius float64 `yaml:"radius,omitempty"`
	Zone   string  `yaml:"zone,omitempty"`
}

// LoadLayout reads a YAML layout file and builds a world from it.
func LoadLayout(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	w, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// ParseLayout builds a world from YAML layout data.
func ParseLayout(data []byte) (*World, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	return l.Build()
}

// Build validates the layout and converts it to a world.
func (l Layout) Build() (*World, error) {
	if !l.Bounds.Valid() {
		return nil, fmt.Errorf("bounds must have positive area: %+v", l.Bounds)
	}

	seen := make(map[string]bool, len(l.POIs))
	pois := make([]POI, 0, len(l.POIs))
	for i, e := range l.POIs {
		id := e.ID
		if id == "" {
			id = fmt.Sprintf("%s-%d", e.Type, i)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePOI, id)
		}
		seen[id] = true

		radius := e.Radius
		if radius == 0 {
			radius = DefaultActivationRadius
		}
		p := POI{
			ID:       id,
			Type:     e.Type,
			Position: vmath.Vec2{X: e.X, Y: e.Z},
			Radius:   radius,
			Zone:     e.Zone,
		}
		if !p.usable() {
			return nil, fmt.Errorf("poi %q: radius must be positive and position finite", id)
		}
		pois = append(pois, p)
	}

	triggers := make([]ZoneTrigger, 0, len(l.Triggers))
	for _, t := range l.Triggers {
		if t.Zone == "" {
			return nil, errors.New("trigger zone must not be empty")
		}
		triggers = append(triggers, ZoneTrigger{Zone: t.Zone, MaxZ: t.MaxZ})
	}

	return New(l.Name, pois, triggers, l.Bounds), nil
}

// ToLayout converts a world back to its on-disk form.
func (w *World) ToLayout() Layout {
	l := Layout{Name: w.Name, Bounds: w.Bounds}
	for _, t := range w.Triggers {
		l.Triggers = append(l.Triggers, TriggerLayout{Zone: t.Zone, MaxZ: t.MaxZ})
	}
	for _, p := range w.POIs {
		l.POIs = append(l.POIs, POILayout{
			ID:     p.ID,
			Type:   p.Type,
			X:      p.Position.X,
			Z:      p.Position.Y,
			Radius: p.Radius,
			Zone:   p.Zone,
		})
	}
	return l
}

// MarshalLayout encodes the world as YAML.
func MarshalLayout(w *World) ([]byte, error) {
	return yaml.Marshal(w.ToLayout())
}

// SaveLayout writes the world layout to path, creating parent directories.
func SaveLayout(w *World, path string) error {
	data, err := MarshalLayout(w)
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create layout directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}
	return nil
}
