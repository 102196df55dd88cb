package scenes

// SceneChanger allows scenes to trigger transitions and end the game.
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}
