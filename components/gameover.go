package components

import "github.com/yohamta/donburi"

// GameOverOption is an entry of the game over menu, in display order.
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverQuit

	gameOverOptionCount
)

// GameOverData is the game over menu: the highlighted entry and the number
// of keys the run ended with.
type GameOverData struct {
	SelectedOption GameOverOption
	KeysHeld       int
}

// Move shifts the highlight by delta entries, wrapping at both ends.
func (g *GameOverData) Move(delta int) {
	n := int(gameOverOptionCount)
	g.SelectedOption = GameOverOption(((int(g.SelectedOption)+delta)%n + n) % n)
}

var GameOver = donburi.NewComponentType[GameOverData]()
