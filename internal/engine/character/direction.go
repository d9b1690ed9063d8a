package character

import (
	"math"
)

// Eight-way facing directions.
const (
	DirS  = 0
	DirSW = 1
	DirW  = 2
	DirNW = 3
	DirN  = 4
	DirNE = 5
	DirE  = 6
	DirSE = 7
)

// HeadingFromVelocity returns the yaw of a velocity vector in radians.
// 0 faces +Z (south), π/2 faces +X (east). A zero vector faces south.
func HeadingFromVelocity(vx, vz float64) float64 {
	if vx == 0 && vz == 0 {
		return 0
	}
	return math.Atan2(vx, vz)
}

// Facing tracks the eight-way direction of a heading with hysteresis so a
// heading near a sector boundary does not flicker between two directions.
type Facing struct {
	sector int // -1 until the first update
}

// NewFacing returns a facing with no previous direction.
func NewFacing() *Facing {
	return &Facing{sector: -1}
}

// Update returns the direction (DirS..DirSE) for heading.
func (f *Facing) Update(heading float64) int {
	// Sectors run S, SE, E, NE, N, NW, W, SW as the heading grows.
	angle := normalizeAngle(heading)

	sector := int((angle + SectorSize/2) / SectorSize)
	if sector >= 8 {
		sector = 0
	}

	if f.sector >= 0 {
		diff := angle - float64(f.sector)*SectorSize
		for diff > math.Pi {
			diff -= 2 * math.Pi
		}
		for diff < -math.Pi {
			diff += 2 * math.Pi
		}
		if math.Abs(diff) < SectorSize/2+HysteresisAngle {
			sector = f.sector
		}
	}

	f.sector = sector
	return SectorToDirection[sector]
}

// Reset forgets the previous direction.
func (f *Facing) Reset() {
	f.sector = -1
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// SectorToDirection maps a heading sector to a direction index.
var SectorToDirection = [8]int{DirS, DirSE, DirE, DirNE, DirN, DirNW, DirW, DirSW}

// HysteresisAngle is the dead zone (~11°) on each side of a sector boundary.
const HysteresisAngle = math.Pi / 16

// SectorSize is the angular size of each direction sector (45°).
const SectorSize = math.Pi / 4
