// Package world describes the sandbox town as the control loop sees it:
// points of interest, zone reveal flags and the ground boundary.
package world

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/vrbox/internal/logger"
	vmath "github.com/Faultbox/vrbox/pkg/math"
)

// Rect is an axis-aligned rectangle on the ground plane.
type Rect struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinZ float64 `yaml:"min_z"`
	MaxZ float64 `yaml:"max_z"`
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p vmath.Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinZ && p.Y <= r.MaxZ
}

// Valid reports whether the rectangle has positive area.
func (r Rect) Valid() bool {
	return r.MaxX > r.MinX && r.MaxZ > r.MinZ
}

// World is the read-only town description plus the zone flags it owns.
type World struct {
	Name     string
	POIs     []POI
	Zones    *Zones
	Triggers []ZoneTrigger
	Bounds   Rect

	log *zap.Logger
}

// New creates a world. Zones named by triggers or gated POIs are registered hidden.
func New(name string, pois []POI, triggers []ZoneTrigger, bounds Rect) *World {
	zones := NewZones()
	for _, t := range triggers {
		zones.revealed[t.Zone] = false
	}
	for _, p := range pois {
		if p.Gated() {
			zones.revealed[p.Zone] = false
		}
	}
	return &World{
		Name:     name,
		POIs:     pois,
		Zones:    zones,
		Triggers: triggers,
		Bounds:   bounds,
		log:      logger.Named("world"),
	}
}

// Update fires zone triggers for the character's position and returns the
// zones revealed by this call.
func (w *World) Update(position vmath.Vec2) []string {
	var revealed []string
	for _, t := range w.Triggers {
		if t.Fires(position) && w.Zones.Reveal(t.Zone) {
			revealed = append(revealed, t.Zone)
			w.log.Info("zone revealed",
				zap.String("zone", t.Zone),
				zap.Float64("x", position.X),
				zap.Float64("z", position.Y),
			)
		}
	}
	return revealed
}

// Nearby returns the POI types near position under the current zone flags.
func (w *World) Nearby(position vmath.Vec2) TypeSet {
	return Nearby(position, w.POIs, w.Zones)
}

// Reset hides every zone.
func (w *World) Reset() {
	w.Zones.HideAll()
}

// Count returns how many POIs of type t the world has.
func (w *World) Count(t POIType) int {
	n := 0
	for _, p := range w.POIs {
		if p.Type == t {
			n++
		}
	}
	return n
}

func (w *World) String() string {
	return fmt.Sprintf("world %q: %d pois, zones %v", w.Name, len(w.POIs), w.Zones.Names())
}
