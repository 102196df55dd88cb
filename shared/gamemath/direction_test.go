package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestDirectionVector(t *testing.T) {
	assert.Equal(t, dmath.Vec2{X: 1, Y: 0}, DirectionVector(DirRight))
	assert.Equal(t, dmath.Vec2{X: 0, Y: 1}, DirectionVector(DirUp))
	assert.Equal(t, dmath.Vec2{X: -1, Y: 0}, DirectionVector(DirLeft))
	assert.Equal(t, dmath.Vec2{X: 0, Y: -1}, DirectionVector(DirDown))
	assert.Equal(t, dmath.Vec2{}, DirectionVector(NoDirection))
	assert.Equal(t, dmath.Vec2{}, DirectionVector(4))
}

func TestSnapToAxis(t *testing.T) {
	tests := []struct {
		name  string
		delta dmath.Vec2
		want  dmath.Vec2
	}{
		{"horizontal dominant", dmath.Vec2{X: 3, Y: 1}, dmath.Vec2{X: 1, Y: 0}},
		{"vertical dominant", dmath.Vec2{X: 1, Y: 3}, dmath.Vec2{X: 0, Y: 1}},
		{"tie favors x", dmath.Vec2{X: 2, Y: 2}, dmath.Vec2{X: 1, Y: 0}},
		{"negative tie favors x", dmath.Vec2{X: -2, Y: 2}, dmath.Vec2{X: -1, Y: 0}},
		{"negative vertical", dmath.Vec2{X: 0.5, Y: -4}, dmath.Vec2{X: 0, Y: -1}},
		{"zero snaps negative x", dmath.Vec2{}, dmath.Vec2{X: -1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SnapToAxis(tt.delta))
		})
	}
}

func TestDirectionIndexRoundTrip(t *testing.T) {
	for i := DirRight; i <= DirDown; i++ {
		assert.Equal(t, i, DirectionIndex(DirectionVector(i)))
	}
	assert.Equal(t, DirLeft, DirectionIndex(dmath.Vec2{X: -5, Y: 1}))
}

func TestOpposite(t *testing.T) {
	assert.Equal(t, DirLeft, Opposite(DirRight))
	assert.Equal(t, DirDown, Opposite(DirUp))
	assert.Equal(t, DirRight, Opposite(DirLeft))
	assert.Equal(t, DirUp, Opposite(DirDown))
}
