package world

import (
	"sort"

	vmath "github.com/Faultbox/vrbox/pkg/math"
)

// Zones holds the reveal flag of each named zone. Unknown zones are hidden.
type Zones struct {
	revealed map[string]bool
}

// NewZones creates hidden zones with the given names.
func NewZones(names ...string) *Zones {
	z := &Zones{revealed: make(map[string]bool, len(names))}
	for _, n := range names {
		z.revealed[n] = false
	}
	return z
}

// Revealed reports whether zone is revealed.
func (z *Zones) Revealed(zone string) bool {
	if z == nil {
		return false
	}
	return z.revealed[zone]
}

// Reveal marks zone revealed and reports whether it was hidden before.
func (z *Zones) Reveal(zone string) bool {
	if z.revealed == nil {
		z.revealed = make(map[string]bool)
	}
	if z.revealed[zone] {
		return false
	}
	z.revealed[zone] = true
	return true
}

// HideAll hides every zone, as at the start of a new session.
func (z *Zones) HideAll() {
	for n := range z.revealed {
		z.revealed[n] = false
	}
}

// Names returns all known zone names, sorted.
func (z *Zones) Names() []string {
	names := make([]string, 0, len(z.revealed))
	for n := range z.revealed {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ZoneTrigger reveals Zone once the character's Z coordinate drops below MaxZ.
// Reveals latch for the rest of the session.
type ZoneTrigger struct {
	Zone string
	MaxZ float64
}

// Fires reports whether position satisfies the trigger.
func (t ZoneTrigger) Fires(position vmath.Vec2) bool {
	return position.IsFinite() && position.Y < t.MaxZ
}
