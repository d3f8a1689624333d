package gamemath

import (
	gomath "math"

	"github.com/yohamta/donburi/features/math"
)

// Normalize returns v scaled to unit length. A zero vector stays zero.
func Normalize(v math.Vec2) math.Vec2 {
	length := gomath.Hypot(v.X, v.Y)
	if length == 0 {
		return math.Vec2{}
	}
	return math.NewVec2(v.X/length, v.Y/length)
}

// SeekVelocity returns the velocity that moves from toward to at the given speed.
func SeekVelocity(from, to math.Vec2, speed float64) math.Vec2 {
	dir := Normalize(math.NewVec2(to.X-from.X, to.Y-from.Y))
	return math.NewVec2(dir.X*speed, dir.Y*speed)
}

// Lerp interpolates between a and b by t.
func Lerp(a, b math.Vec2, t float64) math.Vec2 {
	return math.NewVec2(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
}

// Axis combines a negative and positive key into -1, 0 or 1.
// Holding both cancels out.
func Axis(negative, positive bool) float64 {
	var v float64
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
