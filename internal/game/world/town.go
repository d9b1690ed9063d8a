package world

import (
	"fmt"
	"math/rand"

	vmath "github.com/Faultbox/vrbox/pkg/math"
)

// TownParams controls procedural town generation.
type TownParams struct {
	Seed        int64
	GridSize    int     // Blocks from the center in each direction
	BlockSize   float64 // World units per block
	BenchChance float64 // Probability of a bench per block
	BenchSpread float64 // Bench offset range around the block center
	Radius      float64 // Activation radius for generated POIs
	GroundSize  float64 // Edge length of the square ground plane

	IndoorZone    string
	IndoorCenterZ float64
	IndoorRevealZ float64
	SofaOffsetX   float64
	BedOffsetX    float64
}

// DefaultTownParams returns the default town layout.
func DefaultTownParams() TownParams {
	return TownParams{
		Seed:          1,
		GridSize:      5,
		BlockSize:     40,
		BenchChance:   0.4,
		BenchSpread:   20,
		Radius:        DefaultActivationRadius,
		GroundSize:    400,
		IndoorZone:    IndoorZone,
		IndoorCenterZ: -200,
		IndoorRevealZ: -160,
		SofaOffsetX:   -4,
		BedOffsetX:    4,
	}
}

// GenerateTown lays out benches on a grid of blocks and an indoor room with
// a sofa and a bed behind the indoor zone. The same seed gives the same town.
func GenerateTown(p TownParams) *World {
	rng := rand.New(rand.NewSource(p.Seed))

	var pois []POI
	for gx := -p.GridSize; gx <= p.GridSize; gx++ {
		for gz := -p.GridSize; gz <= p.GridSize; gz++ {
			if rng.Float64() >= p.BenchChance {
				continue
			}
			center := vmath.Vec2{X: float64(gx) * p.BlockSize, Y: float64(gz) * p.BlockSize}
			offset := vmath.Vec2{
				X: (rng.Float64() - 0.5) * p.BenchSpread,
				Y: (rng.Float64() - 0.5) * p.BenchSpread,
			}
			pois = append(pois, POI{
				ID:       fmt.Sprintf("bench-%d-%d", gx, gz),
				Type:     POIBench,
				Position: center.Add(offset),
				Radius:   p.Radius,
			})
		}
	}

	pois = append(pois,
		POI{
			ID:       "sofa",
			Type:     POISofa,
			Position: vmath.Vec2{X: p.SofaOffsetX, Y: p.IndoorCenterZ},
			Radius:   p.Radius,
			Zone:     p.IndoorZone,
		},
		POI{
			ID:       "bed",
			Type:     POIBed,
			Position: vmath.Vec2{X: p.BedOffsetX, Y: p.IndoorCenterZ},
			Radius:   p.Radius,
			Zone:     p.IndoorZone,
		},
	)

	half := p.GroundSize / 2
	return New(
		fmt.Sprintf("town-%d", p.Seed),
		pois,
		[]ZoneTrigger{{Zone: p.IndoorZone, MaxZ: p.IndoorRevealZ}},
		Rect{MinX: -half, MaxX: half, MinZ: -half, MaxZ: half},
	)
}

// IndoorZone is the zone gating the house interior.
const IndoorZone = "indoor"

// DefaultActivationRadius is the default sit-near distance.
const DefaultActivationRadius = 2.0
