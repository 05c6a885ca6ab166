package game

import "math"

// InCone returns true if the point (px,py) lies within a cone whose apex is
// at (cx,cy). aperture is the full spread in degrees, reach the max distance
// in pixels and rotation the cone heading in degrees (0 = right, 90 = down).
func InCone(px, py, cx, cy, aperture, reach, rotation float64) bool {
	dist := Distance(px, py, cx, cy)
	if dist > reach {
		return false
	}
	if aperture >= 360 || dist == 0 {
		return true
	}

	bearing := BearingTo(cx, cy, px, py)
	start := normalizeDeg(rotation - aperture/2)
	end := normalizeDeg(rotation + aperture/2)

	if start <= end {
		return bearing >= start && bearing <= end
	}
	// Window crosses 0°.
	return bearing >= start || bearing <= end
}

// BearingTo returns the angle in degrees, normalized to [0,360), from
// (ox,oy) toward (tx,ty).
func BearingTo(ox, oy, tx, ty float64) float64 {
	return normalizeDeg(math.Atan2(ty-oy, tx-ox) * 180 / math.Pi)
}

// Distance is the Euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// normalizeDeg wraps an angle to [0, 360).
func normalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// stepToward moves (x,y) by step px toward (tx,ty). Callers guarantee the
// points are more than arriveDist apart.
func stepToward(x, y, tx, ty, step float64) (float64, float64) {
	dx := tx - x
	dy := ty - y
	dist := math.Hypot(dx, dy)
	return x + dx/dist*step, y + dy/dist*step
}
