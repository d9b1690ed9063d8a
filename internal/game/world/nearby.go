package world

import vmath "github.com/Faultbox/vrbox/pkg/math"

// ZoneReader exposes zone reveal flags. The evaluator never changes them.
type ZoneReader interface {
	Revealed(zone string) bool
}

// Nearby returns the types of all POIs strictly within their activation
// radius of position, measured on the ground plane.
//
// Gated POIs count only while zones reports their zone revealed; with a nil
// zones they never count. Malformed POIs are skipped.
func Nearby(position vmath.Vec2, pois []POI, zones ZoneReader) TypeSet {
	var near TypeSet
	if !position.IsFinite() {
		return near
	}
	for _, p := range pois {
		if near.Has(p.Type) || !p.usable() {
			continue
		}
		if p.Gated() && (zones == nil || !zones.Revealed(p.Zone)) {
			continue
		}
		if position.Distance(p.Position) < p.Radius {
			near = near.Add(p.Type)
		}
	}
	return near
}
