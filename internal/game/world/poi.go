package world

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"gopkg.in/yaml.v3"

	vmath "github.com/Faultbox/vrbox/pkg/math"
)

// ErrUnknownPOIType is returned when a layout names a type that does not exist.
var ErrUnknownPOIType = errors.New("unknown point of interest type")

// POIType is the kind of furniture a point of interest represents.
type POIType uint8

const (
	POIBench POIType = iota
	POISofa
	POIBed
	POIChair

	numPOITypes
)

var poiTypeNames = [numPOITypes]string{
	POIBench: "bench",
	POISofa:  "sofa",
	POIBed:   "bed",
	POIChair: "chair",
}

// String returns the layout name of the type.
func (t POIType) String() string {
	if t < numPOITypes {
		return poiTypeNames[t]
	}
	return fmt.Sprintf("POIType(%d)", uint8(t))
}

// Valid reports whether t is a known type.
func (t POIType) Valid() bool {
	return t < numPOITypes
}

// ParsePOIType converts a layout name to a POIType. Matching is case-insensitive.
func ParsePOIType(s string) (POIType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range poiTypeNames {
		if n == name {
			return POIType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPOIType, s)
}

// AllPOITypes returns every known type in declaration order.
func AllPOITypes() []POIType {
	out := make([]POIType, 0, numPOITypes)
	for t := POIType(0); t < numPOITypes; t++ {
		out = append(out, t)
	}
	return out
}

// MarshalYAML writes the type by name.
func (t POIType) MarshalYAML() (interface{}, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPOIType, uint8(t))
	}
	return t.String(), nil
}

// UnmarshalYAML reads the type by name.
func (t *POIType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParsePOIType(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed
	return nil
}

// POI is an interactable location supplied by the world.
//
// A POI with a non-empty Zone only counts while that zone is revealed.
type POI struct {
	ID       string
	Type     POIType
	Position vmath.Vec2 // X, Z on the ground plane
	Radius   float64
	Zone     string
}

// Gated reports whether the POI depends on a zone flag.
func (p POI) Gated() bool {
	return p.Zone != ""
}

// usable reports whether the POI has a finite position and a positive radius.
func (p POI) usable() bool {
	return p.Type.Valid() && p.Position.IsFinite() && vmath.IsFinite(p.Radius) && p.Radius > 0
}

// TypeSet is the set of POI types the character is currently near.
type TypeSet uint32

// Add returns the set with t included.
func (s TypeSet) Add(t POIType) TypeSet {
	if !t.Valid() {
		return s
	}
	return s | 1<<t
}

// Has reports whether t is in the set.
func (s TypeSet) Has(t POIType) bool {
	return t.Valid() && s&(1<<t) != 0
}

// Empty reports whether the set has no members.
func (s TypeSet) Empty() bool {
	return s == 0
}

// Len returns the number of members.
func (s TypeSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Types returns the members in declaration order.
func (s TypeSet) Types() []POIType {
	var out []POIType
	for t := POIType(0); t < numPOITypes; t++ {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// NewTypeSet builds a set from types.
func NewTypeSet(types ...POIType) TypeSet {
	var s TypeSet
	for _, t := range types {
		s = s.Add(t)
	}
	return s
}

func (s TypeSet) String() string {
	names := make([]string, 0, s.Len())
	for _, t := range s.Types() {
		names = append(names, t.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
