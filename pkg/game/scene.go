package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application (the lesson menu or a single lesson).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，场景被切换掉时调用 Close 释放资源（如停止音乐）
type Closer interface {
	Close()
}
