package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PhysicsData is the movement sink. Velocity is in world units per second
// and is integrated against the collision space once per tick.
type PhysicsData struct {
	Velocity math.Vec2
	Blocked  bool // movement was cut short by a wall this tick
}

var Physics = donburi.NewComponentType[PhysicsData]()

// ClockData is the simulation clock singleton.
type ClockData struct {
	Now   float64 // seconds since the scene started
	Delta float64 // seconds per tick
	Tick  int
}

var Clock = donburi.NewComponentType[ClockData]()
