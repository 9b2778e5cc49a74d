package components

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Flip 渲染时的翻转方式
type Flip int

const (
	// FlipNone 不翻转
	FlipNone Flip = iota
	// FlipHorizontal 水平翻转
	FlipHorizontal
	// FlipVertical 垂直翻转
	FlipVertical
)

// Texture 纹理封装
// 保存图像尺寸、颜色调制和透明度，提供与渲染位置、裁剪、旋转、翻转相关的绘制
type Texture struct {
	Image  *ebiten.Image
	Width  int
	Height int

	// 颜色调制 (0-255)，默认 255 即原色
	R, G, B uint8
	// A 透明度 (0-255)，默认 255 不透明，按 alpha 混合
	A uint8
}

// NewTexture 包装一张图像
func NewTexture(img *ebiten.Image) *Texture {
	t := &Texture{Image: img, R: 255, G: 255, B: 255, A: 255}
	if img != nil {
		b := img.Bounds()
		t.Width, t.Height = b.Dx(), b.Dy()
	}
	return t
}

// NewTextureFromText 将文字渲染为纹理
func NewTextureFromText(str string, face text.Face, clr color.Color) *Texture {
	w, h := text.Measure(str, face, 0)
	img := ebiten.NewImage(max(1, int(math.Ceil(w))), max(1, int(math.Ceil(h))))

	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(img, str, face, op)

	return NewTexture(img)
}

// SetColor 设置颜色调制
func (t *Texture) SetColor(r, g, b uint8) {
	t.R, t.G, t.B = r, g, b
}

// SetAlpha 设置透明度
func (t *Texture) SetAlpha(a uint8) {
	t.A = a
}

// RenderOptions 绘制参数
type RenderOptions struct {
	// Clip 源图裁剪区域，为 nil 时绘制整张图
	Clip *image.Rectangle
	// Degrees 顺时针旋转角度
	Degrees float64
	// Center 旋转中心（相对绘制区域左上角），为 nil 时使用绘制区域中心
	Center *image.Point
	// Flip 翻转方式
	Flip Flip
}

// Render 在 (x, y) 处绘制纹理
func (t *Texture) Render(dst *ebiten.Image, x, y int) {
	t.RenderEx(dst, x, y, RenderOptions{})
}

// RenderEx 在 (x, y) 处按裁剪、旋转、翻转参数绘制纹理
func (t *Texture) RenderEx(dst *ebiten.Image, x, y int, opts RenderOptions) {
	if t.Image == nil {
		return
	}

	src := t.Image
	w, h := t.Width, t.Height
	if opts.Clip != nil {
		src = t.Image.SubImage(*opts.Clip).(*ebiten.Image)
		w, h = opts.Clip.Dx(), opts.Clip.Dy()
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = t.geoM(w, h, x, y, opts)
	op.ColorScale.Scale(float32(t.R)/255, float32(t.G)/255, float32(t.B)/255, 1)
	op.ColorScale.ScaleAlpha(float32(t.A) / 255)
	op.Filter = ebiten.FilterLinear

	dst.DrawImage(src, op)
}

// geoM 计算绘制变换：先翻转，再绕中心旋转，最后平移到目标位置
func (t *Texture) geoM(w, h, x, y int, opts RenderOptions) ebiten.GeoM {
	var g ebiten.GeoM

	switch opts.Flip {
	case FlipHorizontal:
		g.Scale(-1, 1)
		g.Translate(float64(w), 0)
	case FlipVertical:
		g.Scale(1, -1)
		g.Translate(0, float64(h))
	}

	if opts.Degrees != 0 {
		cx, cy := float64(w)/2, float64(h)/2
		if opts.Center != nil {
			cx, cy = float64(opts.Center.X), float64(opts.Center.Y)
		}
		g.Translate(-cx, -cy)
		g.Rotate(opts.Degrees * math.Pi / 180)
		g.Translate(cx, cy)
	}

	g.Translate(float64(x), float64(y))
	return g
}

// ApplyColorKey 将与 key 颜色相同的像素设为完全透明
func ApplyColorKey(src image.Image, key color.RGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := dst.NRGBAAt(x, y)
			if c.R == key.R && c.G == key.G && c.B == key.B {
				dst.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
	return dst
}
