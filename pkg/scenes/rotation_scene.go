package scenes

import (
	"image"

	"github.com/decker502/lessons/internal/logging"
	"github.com/decker502/lessons/pkg/components"
	"github.com/decker502/lessons/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// rotationStep P/O 每次旋转的角度
const rotationStep = 60

// Pose 精灵的旋转角度与翻转方式
type Pose struct {
	Degrees float64
	Flip    components.Flip
}

// HandleKey 根据按键调整姿态，返回按键是否被处理
//
//	P/O 顺时针/逆时针旋转，Right 水平翻转，Left 取消翻转，Up 垂直翻转
func (p *Pose) HandleKey(key ebiten.Key) bool {
	switch key {
	case ebiten.KeyP:
		p.Degrees += rotationStep
	case ebiten.KeyO:
		p.Degrees -= rotationStep
	case ebiten.KeyArrowRight:
		p.Flip = components.FlipHorizontal
	case ebiten.KeyArrowLeft:
		p.Flip = components.FlipNone
	case ebiten.KeyArrowUp:
		p.Flip = components.FlipVertical
	default:
		return false
	}
	return true
}

// walkClip 返回第 tick 次更新时的行走动画裁剪区域
func walkClip(tick int) image.Rectangle {
	frame := (tick / config.WalkingTicksPerFrame) % config.WalkingAnimationFrames
	x := frame * config.WalkingFrameWidth
	return image.Rect(x, 0, x+config.WalkingFrameWidth, config.WalkingFrameHeight)
}

// RotationScene 居中绘制可旋转、翻转、调色的行走动画
type RotationScene struct {
	background *components.Texture
	sprites    *components.Texture
	modulation Modulation
	pose       Pose
	tick       int
	keys       []ebiten.Key
}

// NewRotationScene 创建旋转与翻转课程
func NewRotationScene(env *Env) *RotationScene {
	log := logging.Named("Rotation")
	w, h := env.ScreenSize()

	sprites := env.keyedTexture("spritesheet",
		config.WalkingFrameWidth*config.WalkingAnimationFrames, config.WalkingFrameHeight, log)

	return &RotationScene{
		background: env.texture("background", w, h),
		sprites:    sprites,
		modulation: NewModulation(),
	}
}

func (s *RotationScene) Update(deltaTime float64) {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if !s.pose.HandleKey(k) {
			s.modulation.HandleKey(k)
		}
	}
	s.modulation.Apply(s.sprites)
	s.tick = (s.tick + 1) % (config.WalkingTicksPerFrame * config.WalkingAnimationFrames)
}

func (s *RotationScene) Draw(screen *ebiten.Image) {
	screen.Fill(clearWhite)
	s.background.Render(screen, 0, 0)

	clip := walkClip(s.tick)
	b := screen.Bounds()
	s.sprites.RenderEx(screen, (b.Dx()-clip.Dx())/2, (b.Dy()-clip.Dy())/2, components.RenderOptions{
		Clip:    &clip,
		Degrees: s.pose.Degrees,
		Flip:    s.pose.Flip,
	})
}
