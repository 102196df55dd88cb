package systems

import (
	"github.com/automoto/delver/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TickContext is what every step function knows about time. Now is an
// absolute clock value in seconds; deadlines are compared against it.
type TickContext struct {
	Now   float64
	Delta float64
}

// UpdateClock advances the simulation clock by one tick. It must run before
// every other system.
func UpdateClock(ecs *ecs.ECS) {
	clockEntry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)
	clock.Tick++
	clock.Now += clock.Delta
}

// tickContext reads the clock singleton. A world without a clock is frozen at
// zero.
func tickContext(w donburi.World) TickContext {
	clockEntry, ok := components.Clock.First(w)
	if !ok {
		return TickContext{}
	}
	clock := components.Clock.Get(clockEntry)
	return TickContext{Now: clock.Now, Delta: clock.Delta}
}
