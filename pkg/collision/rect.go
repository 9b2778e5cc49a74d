// Package collision 提供轴对齐矩形（AABB）碰撞检测
//
// 所有函数都是纯函数，没有副作用，可在任意位置调用。
package collision

import "image"

// Rect 轴对齐矩形，(X, Y) 为左上角
// 约束：W >= 0, H >= 0
type Rect struct {
	X int // 左上角X坐标（像素）
	Y int // 左上角Y坐标（像素）
	W int // 宽度（像素）
	H int // 高度（像素）
}

// Right 返回矩形右边界 X + W
func (r Rect) Right() int { return r.X + r.W }

// Bottom 返回矩形下边界 Y + H
func (r Rect) Bottom() int { return r.Y + r.H }

// Image 转换为 image.Rectangle，用于绘制
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

// Union 返回同时包含 r 和 o 的最小矩形
func (r Rect) Union(o Rect) Rect {
	left := min(r.X, o.X)
	top := min(r.Y, o.Y)
	right := max(r.Right(), o.Right())
	bottom := max(r.Bottom(), o.Bottom())
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Intersects 检查两个矩形是否重叠（分离轴检测）
//
// 只有重叠面积大于零才算碰撞：边缘刚好接触（如 rightA == leftB）不算碰撞。
// 沿墙滑动时依赖这一边界行为。
func Intersects(a, b Rect) bool {
	// 空矩形没有面积
	if a.W <= 0 || a.H <= 0 || b.W <= 0 || b.H <= 0 {
		return false
	}

	// 任一轴上分离则没有碰撞
	if a.Bottom() <= b.Y {
		return false
	}
	if a.Y >= b.Bottom() {
		return false
	}
	if a.Right() <= b.X {
		return false
	}
	if a.X >= b.Right() {
		return false
	}
	return true
}

// IntersectsAny 检查两组矩形中是否存在任意一对重叠
// 任一组为空时返回 false；遇到第一对重叠即返回
func IntersectsAny(setA, setB []Rect) bool {
	for _, a := range setA {
		for _, b := range setB {
			if Intersects(a, b) {
				return true
			}
		}
	}
	return false
}
