package entities

import (
	"testing"

	"github.com/decker502/lessons/pkg/collision"
	"github.com/stretchr/testify/assert"
)

func newTestDot(x, y int) *Dot {
	return NewDot(DotOptions{
		ScreenWidth:  640,
		ScreenHeight: 480,
		X:            x,
		Y:            y,
		Velocity:     10,
	})
}

// TestStepBlockedByObstacle 测试移动路径上有障碍物时回退水平位移
func TestStepBlockedByObstacle(t *testing.T) {
	d := newTestDot(0, 0)
	d.SetVelocity(10, 0)

	d.Step([]collision.Rect{{X: 5, Y: 0, W: 5, H: 20}})

	x, y := d.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

// TestStepOutOfBounds 测试越过屏幕左边界时回退
func TestStepOutOfBounds(t *testing.T) {
	d := newTestDot(0, 0)
	d.SetVelocity(-10, 0)

	d.Step(nil)

	x, y := d.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

// TestStepScreenEdges 测试右边界和下边界
func TestStepScreenEdges(t *testing.T) {
	d := newTestDot(620, 460)
	d.SetVelocity(1, 1)
	d.Step(nil)

	x, y := d.Position()
	assert.Equal(t, 620, x, "x + width may not exceed the screen width")
	assert.Equal(t, 460, y)

	d = newTestDot(610, 450)
	d.SetVelocity(10, 10)
	d.Step(nil)

	x, y = d.Position()
	assert.Equal(t, 620, x, "x + width may equal the screen width")
	assert.Equal(t, 460, y)
}

// TestStepFreeMovement 测试无障碍物时两个方向都移动
func TestStepFreeMovement(t *testing.T) {
	d := newTestDot(100, 100)
	d.SetVelocity(10, -10)

	d.Step(nil)

	x, y := d.Position()
	assert.Equal(t, 110, x)
	assert.Equal(t, 90, y)
}

// TestStepSlidesAlongWall 测试斜向移动撞墙时仍沿墙滑动
func TestStepSlidesAlongWall(t *testing.T) {
	wall := []collision.Rect{{X: 300, Y: 40, W: 40, H: 400}}
	d := newTestDot(275, 100)
	d.SetVelocity(10, 10)

	d.Step(wall)

	x, y := d.Position()
	assert.Equal(t, 275, x, "horizontal move into the wall is rejected")
	assert.Equal(t, 110, y, "vertical move is still applied")
}

// TestStepTouchingWallAllowed 测试贴墙（边缘接触）不算碰撞
func TestStepTouchingWallAllowed(t *testing.T) {
	wall := []collision.Rect{{X: 300, Y: 40, W: 40, H: 400}}
	d := newTestDot(270, 100)
	d.SetVelocity(10, 0)

	d.Step(wall)

	x, _ := d.Position()
	assert.Equal(t, 280, x)
	assert.Equal(t, collision.Rect{X: 280, Y: 100, W: 20, H: 20}, d.Colliders()[0])
}

// TestStepNoTunneling 测试高速移动时不会穿过薄障碍物
func TestStepNoTunneling(t *testing.T) {
	thin := []collision.Rect{{X: 100, Y: 0, W: 2, H: 480}}
	d := newTestDot(50, 50)
	d.SetVelocity(100, 0)

	d.Step(thin)

	x, _ := d.Position()
	assert.Equal(t, 50, x)
}

// TestStepEscapesOverlappingObstacle 测试起点已与障碍物重叠时可以移出
func TestStepEscapesOverlappingObstacle(t *testing.T) {
	obstacle := []collision.Rect{{X: 5, Y: 0, W: 5, H: 20}}

	d := newTestDot(0, 0)
	d.SetVelocity(30, 0)
	d.Step(obstacle)
	x, _ := d.Position()
	assert.Equal(t, 30, x, "target is clear, dot should leave the obstacle")

	d = newTestDot(0, 0)
	d.SetVelocity(2, 0)
	d.Step(obstacle)
	x, _ = d.Position()
	assert.Equal(t, 0, x, "target still overlaps, move is rolled back")
}

// TestStepCollidersFollowPosition 测试回退后碰撞盒与位置一致
func TestStepCollidersFollowPosition(t *testing.T) {
	d := NewDot(DotOptions{
		ScreenWidth:  640,
		ScreenHeight: 480,
		X:            0,
		Y:            0,
		Velocity:     1,
		Colliders:    collision.NewStripCollider(DotWidth, collision.DotSilhouette),
	})
	other := collision.NewStripCollider(DotWidth, collision.DotSilhouette)
	other.MoveTo(20, 0)

	d.SetVelocity(1, 0)
	d.Step(other.Boxes())

	x, _ := d.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 7, d.Colliders()[0].X)
}

// TestHandleKey 测试按下与松开对称地改变速度
func TestHandleKey(t *testing.T) {
	d := newTestDot(0, 0)

	d.HandleKey(DirRight, true)
	d.HandleKey(DirDown, true)
	vx, vy := d.Velocity()
	assert.Equal(t, 10, vx)
	assert.Equal(t, 10, vy)

	d.HandleKey(DirLeft, true)
	d.HandleKey(DirUp, true)
	vx, vy = d.Velocity()
	assert.Equal(t, 0, vx)
	assert.Equal(t, 0, vy)

	d.HandleKey(DirRight, false)
	d.HandleKey(DirDown, false)
	d.HandleKey(DirLeft, false)
	d.HandleKey(DirUp, false)
	vx, vy = d.Velocity()
	assert.Equal(t, 0, vx)
	assert.Equal(t, 0, vy)

	d.HandleKey(DirLeft, true)
	vx, _ = d.Velocity()
	assert.Equal(t, -10, vx)
}

// TestNewDotDefaults 测试默认尺寸与碰撞盒
func TestNewDotDefaults(t *testing.T) {
	d := newTestDot(3, 4)
	w, h := d.Size()

	assert.Equal(t, DotWidth, w)
	assert.Equal(t, DotHeight, h)
	assert.Equal(t, []collision.Rect{{X: 3, Y: 4, W: 20, H: 20}}, d.Colliders())
}
