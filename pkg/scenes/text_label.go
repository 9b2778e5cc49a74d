package scenes

import (
	"image/color"

	"github.com/decker502/lessons/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer 格式化课程中显示的数字
var printer = message.NewPrinter(language.English)

// textLabel 文字纹理，内容变化时才重新渲染
type textLabel struct {
	face    text.Face
	color   color.Color
	content string
	texture *components.Texture
}

func newTextLabel(face text.Face, clr color.Color, content string) *textLabel {
	l := &textLabel{face: face, color: clr}
	l.Set(content)
	return l
}

// Set 更新文字内容
func (l *textLabel) Set(content string) {
	if l.texture != nil && content == l.content {
		return
	}
	if l.texture != nil && l.texture.Image != nil {
		l.texture.Image.Deallocate()
	}
	l.content = content
	l.texture = components.NewTextureFromText(content, l.face, l.color)
}

// Text 返回当前文字
func (l *textLabel) Text() string {
	return l.content
}

// Width 返回渲染后的宽度
func (l *textLabel) Width() int {
	return l.texture.Width
}

// Height 返回渲染后的高度
func (l *textLabel) Height() int {
	return l.texture.Height
}

// Render 在 (x, y) 处绘制
func (l *textLabel) Render(dst *ebiten.Image, x, y int) {
	l.texture.Render(dst, x, y)
}
