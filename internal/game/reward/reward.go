// Package reward maps the character's situation to a scalar reward.
package reward

import (
	"fmt"

	"github.com/Faultbox/vrbox/internal/game/world"
	vmath "github.com/Faultbox/vrbox/pkg/math"
)

// Entry assigns a reward value to a POI type.
type Entry struct {
	Type  world.POIType `yaml:"type"`
	Value float64       `yaml:"value"`
}

// Policy awards the value of the highest-priority nearby POI type while the
// character sits. Earlier entries have higher priority.
type Policy struct {
	table []Entry
}

// DefaultTable ranks bed above sofa above bench.
func DefaultTable() []Entry {
	return []Entry{
		{Type: world.POIBed, Value: 3},
		{Type: world.POISofa, Value: 2},
		{Type: world.POIBench, Value: 1},
	}
}

// NewPolicy creates a policy from a priority-ordered table.
func NewPolicy(table []Entry) (*Policy, error) {
	seen := world.TypeSet(0)
	for i, e := range table {
		if !e.Type.Valid() {
			return nil, fmt.Errorf("reward entry %d: %w", i, world.ErrUnknownPOIType)
		}
		if !vmath.IsFinite(e.Value) {
			return nil, fmt.Errorf("reward entry %d: value %v is not finite", i, e.Value)
		}
		if seen.Has(e.Type) {
			return nil, fmt.Errorf("reward entry %d: type %s listed twice", i, e.Type)
		}
		seen = seen.Add(e.Type)
	}
	t := make([]Entry, len(table))
	copy(t, table)
	return &Policy{table: t}, nil
}

// Default returns a policy using DefaultTable.
func Default() *Policy {
	return &Policy{table: DefaultTable()}
}

// Evaluate returns 0 unless sitting. While sitting it returns the value of
// the first table entry whose type is in near, or 0 if none is.
func (p *Policy) Evaluate(sit bool, near world.TypeSet) float64 {
	if !sit || near.Empty() {
		return 0
	}
	for _, e := range p.table {
		if near.Has(e.Type) {
			return e.Value
		}
	}
	return 0
}

// Table returns a copy of the priority table.
func (p *Policy) Table() []Entry {
	t := make([]Entry, len(p.table))
	copy(t, p.table)
	return t
}

// Max returns the largest value any single step can earn.
func (p *Policy) Max() float64 {
	var m float64
	for _, e := range p.table {
		if e.Value > m {
			m = e.Value
		}
	}
	return m
}
