package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Facing indices. The order matters: it is the input scan order, the door
// order and the animation suffix.
const (
	DirRight = 0
	DirUp    = 1
	DirLeft  = 2
	DirDown  = 3

	NoDirection = -1
)

var directions = [4]dmath.Vec2{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
}

// ValidDirection reports whether i is one of the four facings.
func ValidDirection(i int) bool {
	return i >= DirRight && i <= DirDown
}

// DirectionVector returns the unit vector for a facing index. Anything
// outside 0..3 yields the zero vector.
func DirectionVector(i int) dmath.Vec2 {
	if !ValidDirection(i) {
		return dmath.Vec2{}
	}
	return directions[i]
}

// Opposite returns the facing pointing the other way.
func Opposite(i int) int {
	return (i + 2) % 4
}

// SnapToAxis reduces a displacement to a unit vector on its dominant axis.
// |dx| >= |dy| picks the horizontal axis, so ties go to X. A zero component
// on the chosen axis snaps to -1.
func SnapToAxis(delta dmath.Vec2) dmath.Vec2 {
	if math.Abs(delta.X) >= math.Abs(delta.Y) {
		return dmath.Vec2{X: unitSign(delta.X), Y: 0}
	}
	return dmath.Vec2{X: 0, Y: unitSign(delta.Y)}
}

// DirectionIndex maps a displacement to the facing of its dominant axis.
func DirectionIndex(v dmath.Vec2) int {
	s := SnapToAxis(v)
	switch {
	case s.X > 0:
		return DirRight
	case s.Y > 0:
		return DirUp
	case s.X < 0:
		return DirLeft
	default:
		return DirDown
	}
}

func unitSign(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}
