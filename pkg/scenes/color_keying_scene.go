package scenes

import (
	"github.com/decker502/lessons/internal/logging"
	"github.com/decker502/lessons/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// ColorKeyingScene 在背景上绘制一个色键透明的人物
type ColorKeyingScene struct {
	background *components.Texture
	foo        *components.Texture
}

// NewColorKeyingScene 创建色键课程
func NewColorKeyingScene(env *Env) *ColorKeyingScene {
	log := logging.Named("ColorKeying")
	w, h := env.ScreenSize()
	return &ColorKeyingScene{
		background: env.texture("background", w, h),
		foo:        env.keyedTexture("foo", 64, 205, log),
	}
}

func (s *ColorKeyingScene) Update(deltaTime float64) {}

func (s *ColorKeyingScene) Draw(screen *ebiten.Image) {
	screen.Fill(clearWhite)
	s.background.Render(screen, 0, 0)
	s.foo.Render(screen, 240, 190)
}
