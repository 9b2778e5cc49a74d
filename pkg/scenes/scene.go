package scenes

import (
	"github.com/decker502/lessons/pkg/game"
)

// Scene is a type alias for game.Scene.
// The menu and every lesson implement the game.Scene interface.
type Scene = game.Scene
