package gamemath

import gomath "math"

// Remap maps v from [inMin, inMax] onto [outMin, outMax] without clamping.
func Remap(v, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Facing returns the horizontal scale for a velocity x component.
// Zero keeps the current facing.
func Facing(velocityX, current float64) float64 {
	switch {
	case velocityX > 0:
		return 1
	case velocityX < 0:
		return -1
	default:
		return current
	}
}

// WalkBob returns the sprite tilt and vertical scale for the walk cycle.
// A stationary entity gets exactly (0, 1).
func WalkBob(elapsed, speed, frequency, maxTilt, minScaleY, maxScaleY float64) (rotation, scaleY float64) {
	if speed <= 0 {
		return 0, 1
	}
	phase := gomath.Sin(elapsed * speed * frequency)
	rotation = Remap(phase, -1, 1, -maxTilt, maxTilt)
	scaleY = Remap(phase, -1, 1, minScaleY, maxScaleY)
	return rotation, scaleY
}
