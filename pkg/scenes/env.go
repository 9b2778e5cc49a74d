package scenes

import (
	"image/color"

	"github.com/decker502/lessons/pkg/components"
	"github.com/decker502/lessons/pkg/config"
	"github.com/decker502/lessons/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
)

var (
	// clearWhite 大多数课程的背景色
	clearWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	// clearGray 输入、音频、计时课程的背景色
	clearGray = color.RGBA{R: 0x5F, G: 0x5F, B: 0x5F, A: 0xFF}
	// textColor 文字颜色
	textColor = color.Black
	// placeholderColor 资源缺失时占位图的颜色
	placeholderColor = color.RGBA{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF}
)

// Env 场景共用的依赖
//
// Audio、Settings 可为 nil（测试中不需要音频和存档）。
type Env struct {
	Config    *config.LessonsConfig
	Resources *game.ResourceManager
	Audio     *game.AudioManager
	Settings  *game.SettingsManager
	Scenes    *game.SceneManager
}

// ScreenSize 返回逻辑屏幕尺寸
func (e *Env) ScreenSize() (int, int) {
	return e.Config.Screen.Width, e.Config.Screen.Height
}

// texture 加载图片资源，失败时使用 w*h 的占位图
func (e *Env) texture(id string, w, h int) *components.Texture {
	return components.NewTexture(e.Resources.ImageOrPlaceholder(e.Config.ImagePath(id), w, h, placeholderColor))
}

// keyedTexture 加载图片资源并应用色键，失败时使用占位图
func (e *Env) keyedTexture(id string, w, h int, log *zap.SugaredLogger) *components.Texture {
	key := e.Config.ColorKey
	img, err := e.Resources.LoadImageWithColorKey(e.Config.ImagePath(id), color.RGBA{R: key[0], G: key[1], B: key[2], A: 0xFF})
	if err != nil {
		log.Warnf("Failed to load %s, using placeholder: %v", id, err)
		return components.NewTexture(game.Placeholder(w, h, placeholderColor))
	}
	return components.NewTexture(img)
}

// font 返回课程字体，缺失时为内置位图字体
func (e *Env) font() text.Face {
	return e.Resources.FontOrFallback(e.Config.FontPath(), e.Config.Font.Size)
}

// drawCentered 水平居中绘制纹理
func drawCentered(screen *ebiten.Image, t *components.Texture, y int) {
	w := screen.Bounds().Dx()
	t.Render(screen, (w-t.Width)/2, y)
}
