package components

import (
	"image"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApplyColorKey 测试色键像素变为透明，其它像素保持不变
func TestApplyColorKey(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	cyan := color.RGBA{R: 0, G: 255, B: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}
	src.Set(0, 0, cyan)
	src.Set(1, 0, red)
	src.Set(0, 1, red)
	src.Set(1, 1, cyan)

	out := ApplyColorKey(src, cyan)

	require.Equal(t, src.Bounds(), out.Bounds())
	assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), out.NRGBAAt(1, 1).A)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, out.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, out.NRGBAAt(0, 1))
}

// TestNewTextureDefaults 测试纹理默认不调制
func TestNewTextureDefaults(t *testing.T) {
	tex := NewTexture(ebiten.NewImage(64, 205))

	assert.Equal(t, 64, tex.Width)
	assert.Equal(t, 205, tex.Height)
	assert.Equal(t, uint8(255), tex.R)
	assert.Equal(t, uint8(255), tex.G)
	assert.Equal(t, uint8(255), tex.B)
	assert.Equal(t, uint8(255), tex.A)
}

// TestTextureGeoM 测试翻转与旋转变换
func TestTextureGeoM(t *testing.T) {
	tex := NewTexture(nil)

	// 水平翻转：左上角映射到右上角
	g := tex.geoM(64, 205, 10, 20, RenderOptions{Flip: FlipHorizontal})
	x, y := g.Apply(0, 0)
	assert.InDelta(t, 74, x, 1e-9)
	assert.InDelta(t, 20, y, 1e-9)

	// 垂直翻转：左上角映射到左下角
	g = tex.geoM(64, 205, 0, 0, RenderOptions{Flip: FlipVertical})
	x, y = g.Apply(0, 0)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 205, y, 1e-9)

	// 绕中心旋转 180 度：左上角映射到右下角
	g = tex.geoM(10, 20, 0, 0, RenderOptions{Degrees: 180})
	x, y = g.Apply(0, 0)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 20, y, 1e-9)

	// 中心点不随旋转移动
	g = tex.geoM(10, 20, 5, 5, RenderOptions{Degrees: 60})
	x, y = g.Apply(5, 10)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 15, y, 1e-9)
}

// TestRenderNilImage 测试没有图像时绘制不会崩溃
func TestRenderNilImage(t *testing.T) {
	tex := NewTexture(nil)
	dst := ebiten.NewImage(10, 10)

	tex.Render(dst, 0, 0)
}
