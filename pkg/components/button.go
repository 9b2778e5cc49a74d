package components

import "image"

// ButtonSprite 按钮当前显示的精灵帧
type ButtonSprite int

const (
	// ButtonSpriteMouseOut 鼠标在按钮外
	ButtonSpriteMouseOut ButtonSprite = iota
	// ButtonSpriteMouseOverMotion 鼠标在按钮上移动
	ButtonSpriteMouseOverMotion
	// ButtonSpriteMouseDown 在按钮上按下
	ButtonSpriteMouseDown
	// ButtonSpriteMouseUp 在按钮上松开
	ButtonSpriteMouseUp
	// ButtonSpriteTotal 精灵帧数量
	ButtonSpriteTotal
)

// MouseEvent 鼠标事件类型
type MouseEvent int

const (
	MouseMotion MouseEvent = iota
	MouseButtonDown
	MouseButtonUp
)

// Button 根据鼠标事件切换精灵帧的按钮
//
// 精灵表纵向排列，每帧尺寸与按钮相同。
type Button struct {
	X, Y          int
	Width, Height int
	Sprite        ButtonSprite
}

// NewButton 创建位于 (x, y) 的按钮
func NewButton(x, y, width, height int) *Button {
	return &Button{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Sprite: ButtonSpriteMouseOut,
	}
}

// Contains 判断点是否在按钮内（包含边缘）
func (b *Button) Contains(x, y int) bool {
	if x < b.X || x > b.X+b.Width {
		return false
	}
	if y < b.Y || y > b.Y+b.Height {
		return false
	}
	return true
}

// HandleMouse 处理一次鼠标事件
//
// 参数:
//   - ev: 事件类型
//   - x, y: 事件发生时的鼠标位置
func (b *Button) HandleMouse(ev MouseEvent, x, y int) {
	if !b.Contains(x, y) {
		b.Sprite = ButtonSpriteMouseOut
		return
	}

	switch ev {
	case MouseMotion:
		b.Sprite = ButtonSpriteMouseOverMotion
	case MouseButtonDown:
		b.Sprite = ButtonSpriteMouseDown
	case MouseButtonUp:
		b.Sprite = ButtonSpriteMouseUp
	}
}

// Clip 返回当前精灵帧在精灵表中的区域
func (b *Button) Clip() image.Rectangle {
	top := int(b.Sprite) * b.Height
	return image.Rect(0, top, b.Width, top+b.Height)
}
