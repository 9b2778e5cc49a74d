package scenes

import (
	"github.com/decker502/lessons/internal/logging"
	"github.com/decker502/lessons/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// modulationStep 每次按键颜色/透明度的变化量
const modulationStep = 32

// Modulation 颜色调制与透明度
//
// 颜色分量按字节回绕，透明度限制在 [0, 255]。
type Modulation struct {
	R, G, B, A uint8
}

// NewModulation 返回原色、完全不透明的调制
func NewModulation() Modulation {
	return Modulation{R: 255, G: 255, B: 255, A: 255}
}

// HandleKey 根据按键调整调制，返回按键是否被处理
//
//	R/F/V 增加红/绿/蓝，T/G/B 减少红/绿/蓝，A/Z 增加/减少透明度
func (m *Modulation) HandleKey(key ebiten.Key) bool {
	switch key {
	case ebiten.KeyR:
		m.R += modulationStep
	case ebiten.KeyF:
		m.G += modulationStep
	case ebiten.KeyV:
		m.B += modulationStep
	case ebiten.KeyT:
		m.R -= modulationStep
	case ebiten.KeyG:
		m.G -= modulationStep
	case ebiten.KeyB:
		m.B -= modulationStep
	case ebiten.KeyA:
		if int(m.A)+modulationStep > 255 {
			m.A = 255
		} else {
			m.A += modulationStep
		}
	case ebiten.KeyZ:
		if int(m.A)-modulationStep < 0 {
			m.A = 0
		} else {
			m.A -= modulationStep
		}
	default:
		return false
	}
	return true
}

// Apply 将调制应用到纹理
func (m Modulation) Apply(t *components.Texture) {
	t.SetColor(m.R, m.G, m.B)
	t.SetAlpha(m.A)
}

// AlphaBlendingScene 在背景上绘制一张可调颜色和透明度的纹理
type AlphaBlendingScene struct {
	background *components.Texture
	modulated  *components.Texture
	modulation Modulation
	keys       []ebiten.Key
}

// NewAlphaBlendingScene 创建透明度混合课程
func NewAlphaBlendingScene(env *Env) *AlphaBlendingScene {
	log := logging.Named("AlphaBlending")
	w, h := env.ScreenSize()

	modulated := env.keyedTexture("alpha", w, h, log)

	return &AlphaBlendingScene{
		background: env.texture("background", w, h),
		modulated:  modulated,
		modulation: NewModulation(),
	}
}

func (s *AlphaBlendingScene) Update(deltaTime float64) {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		s.modulation.HandleKey(k)
	}
	s.modulation.Apply(s.modulated)
}

func (s *AlphaBlendingScene) Draw(screen *ebiten.Image) {
	screen.Fill(clearWhite)
	s.background.Render(screen, 0, 0)
	s.modulated.Render(screen, 0, 0)
}
