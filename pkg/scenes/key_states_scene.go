package scenes

import (
	"github.com/decker502/lessons/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyStateTextures 按优先级排列的方向键与对应图片
var keyStateTextures = []struct {
	key ebiten.Key
	id  string
}{
	{ebiten.KeyArrowUp, "up"},
	{ebiten.KeyArrowDown, "down"},
	{ebiten.KeyArrowLeft, "left"},
	{ebiten.KeyArrowRight, "right"},
}

// pickKeyTexture 根据当前键盘状态选择图片ID，优先级 上 > 下 > 左 > 右，无按键时为 "press"
func pickKeyTexture(pressed func(ebiten.Key) bool) string {
	for _, kt := range keyStateTextures {
		if pressed(kt.key) {
			return kt.id
		}
	}
	return "press"
}

// KeyStatesScene 根据当前按下的方向键显示不同图片
type KeyStatesScene struct {
	textures map[string]*components.Texture
	current  string
}

// NewKeyStatesScene 创建按键状态课程
func NewKeyStatesScene(env *Env) *KeyStatesScene {
	w, h := env.ScreenSize()
	s := &KeyStatesScene{
		textures: make(map[string]*components.Texture),
		current:  "press",
	}
	s.textures["press"] = env.texture("press", w, h)
	for _, kt := range keyStateTextures {
		s.textures[kt.id] = env.texture(kt.id, w, h)
	}
	return s
}

func (s *KeyStatesScene) Update(deltaTime float64) {
	s.current = pickKeyTexture(ebiten.IsKeyPressed)
}

func (s *KeyStatesScene) Draw(screen *ebiten.Image) {
	screen.Fill(clearGray)
	s.textures[s.current].Render(screen, 0, 0)
}
