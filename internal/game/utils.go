package game

import "math"

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// segmentAngle returns the angular width of one wedge in degrees.
func segmentAngle(segments int) float64 {
	return 360 / float64(segments)
}

// wrapDegrees maps an angle into [0, 360).
func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

func clampMax(v, hi float64) float64 {
	if v > hi {
		return hi
	}
	return v
}
