// Package entities 定义课程中可移动的实体
package entities

import (
	"github.com/decker502/lessons/pkg/collision"
)

// Direction 方向键
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

const (
	// DotWidth 圆点宽度（像素）
	DotWidth = 20
	// DotHeight 圆点高度（像素）
	DotHeight = 20
)

// Dot 可移动的圆点
//
// 持有位置、速度和碰撞盒集合。每次 Step 先处理水平方向再处理垂直方向，
// 两个方向分别回退，斜向移动时可以沿墙滑动。
type Dot struct {
	x, y          int // 锚点（左上角）
	velX, velY    int
	width, height int
	vel           int // 每次按键改变的速度
	screenW       int
	screenH       int
	colliders     *collision.ColliderSet
	swept         []collision.Rect // 扫掠检测缓冲区
}

// DotOptions 创建圆点的参数
type DotOptions struct {
	ScreenWidth  int
	ScreenHeight int
	X, Y         int // 初始位置
	Width        int // 为 0 时使用 DotWidth
	Height       int // 为 0 时使用 DotHeight
	Velocity     int // 每次按键改变的速度
	// Colliders 碰撞盒集合，为 nil 时使用覆盖整个圆点的单碰撞盒
	Colliders *collision.ColliderSet
}

// NewDot 创建圆点
func NewDot(opts DotOptions) *Dot {
	w, h := opts.Width, opts.Height
	if w == 0 {
		w = DotWidth
	}
	if h == 0 {
		h = DotHeight
	}
	colliders := opts.Colliders
	if colliders == nil {
		colliders = collision.NewBoxCollider(w, h)
	}

	d := &Dot{
		x:         opts.X,
		y:         opts.Y,
		width:     w,
		height:    h,
		vel:       opts.Velocity,
		screenW:   opts.ScreenWidth,
		screenH:   opts.ScreenHeight,
		colliders: colliders,
		swept:     make([]collision.Rect, colliders.Len()),
	}
	d.colliders.MoveTo(d.x, d.y)
	return d
}

// HandleKey 根据方向键的按下/松开调整速度
// 按下时加速，松开时对称地减速；按键重复事件由输入层过滤
func (d *Dot) HandleKey(dir Direction, pressed bool) {
	delta := d.vel
	if !pressed {
		delta = -delta
	}
	switch dir {
	case DirUp:
		d.velY -= delta
	case DirDown:
		d.velY += delta
	case DirLeft:
		d.velX -= delta
	case DirRight:
		d.velX += delta
	}
}

// Step 按当前速度移动一步
//
// 水平和垂直方向分别移动、分别检测：越界或与障碍物碰撞时只回退该方向的位移。
// 碰撞检测使用从旧位置到新位置的扫掠盒，速度大于障碍物厚度时也不会穿过。
// 起点已与障碍物重叠时只检测终点，使圆点能够移出障碍物。
func (d *Dot) Step(obstacles []collision.Rect) {
	if d.velX != 0 {
		stuck := d.sweepFrom(d.x, d.y, obstacles)
		d.x += d.velX
		d.colliders.MoveTo(d.x, d.y)
		if d.x < 0 || d.x+d.width > d.screenW || d.blocked(stuck, obstacles) {
			d.x -= d.velX
			d.colliders.MoveTo(d.x, d.y)
		}
	}

	if d.velY != 0 {
		stuck := d.sweepFrom(d.x, d.y, obstacles)
		d.y += d.velY
		d.colliders.MoveTo(d.x, d.y)
		if d.y < 0 || d.y+d.height > d.screenH || d.blocked(stuck, obstacles) {
			d.y -= d.velY
			d.colliders.MoveTo(d.x, d.y)
		}
	}
}

// sweepFrom 记录移动前的碰撞盒，返回起点是否已与障碍物重叠
func (d *Dot) sweepFrom(x, y int, obstacles []collision.Rect) bool {
	d.colliders.MoveTo(x, y)
	copy(d.swept, d.colliders.Boxes())
	return collision.IntersectsAny(d.swept, obstacles)
}

// blocked 检测移动后的碰撞盒；起点重叠时只看终点，否则看扫掠盒
func (d *Dot) blocked(stuck bool, obstacles []collision.Rect) bool {
	if stuck {
		return collision.IntersectsAny(d.colliders.Boxes(), obstacles)
	}
	for i, box := range d.colliders.Boxes() {
		d.swept[i] = d.swept[i].Union(box)
	}
	return collision.IntersectsAny(d.swept, obstacles)
}

// Position 返回当前锚点坐标，供渲染使用
func (d *Dot) Position() (int, int) {
	return d.x, d.y
}

// Velocity 返回当前速度
func (d *Dot) Velocity() (int, int) {
	return d.velX, d.velY
}

// SetVelocity 直接设置速度
func (d *Dot) SetVelocity(vx, vy int) {
	d.velX, d.velY = vx, vy
}

// Size 返回圆点尺寸
func (d *Dot) Size() (int, int) {
	return d.width, d.height
}

// Colliders 返回当前位置下的碰撞盒
func (d *Dot) Colliders() []collision.Rect {
	return d.colliders.Boxes()
}
