package episode

import (
	"github.com/Faultbox/vrbox/internal/game/world"
)

// Schema fixes the layout of recorded state vectors:
// [posX, posZ, near<Near[0]>, near<Near[1]>, ...].
type Schema struct {
	Near []world.POIType
}

// DefaultSchema records bench, sofa and bed flags.
func DefaultSchema() Schema {
	return Schema{Near: []world.POIType{world.POIBench, world.POISofa, world.POIBed}}
}

// Width returns the length of every state vector.
func (s Schema) Width() int {
	return 2 + len(s.Near)
}

// State builds a state vector for the given position and nearby types.
func (s Schema) State(x, z float64, near world.TypeSet) []float64 {
	v := make([]float64, 0, s.Width())
	v = append(v, x, z)
	for _, t := range s.Near {
		v = append(v, flag(near.Has(t)))
	}
	return v
}

// Fields names each state column.
func (s Schema) Fields() []string {
	f := []string{"x", "z"}
	for _, t := range s.Near {
		f = append(f, "near_"+t.String())
	}
	return f
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
