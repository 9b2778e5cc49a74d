package scenes

import (
	"image/color"

	"github.com/decker502/lessons/internal/logging"
	"github.com/decker502/lessons/pkg/collision"
	"github.com/decker502/lessons/pkg/components"
	"github.com/decker502/lessons/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// wallColor 墙的描边颜色
var wallColor = color.Black

// dotKeys 方向键与圆点方向的对应关系
var dotKeys = map[ebiten.Key]entities.Direction{
	ebiten.KeyArrowUp:    entities.DirUp,
	ebiten.KeyArrowDown:  entities.DirDown,
	ebiten.KeyArrowLeft:  entities.DirLeft,
	ebiten.KeyArrowRight: entities.DirRight,
}

// applyDotKeys 按下时加速度，松开时减速度；只处理边沿，不处理按键重复
func applyDotKeys(dot *entities.Dot, pressed, released []ebiten.Key) {
	for _, k := range pressed {
		if dir, ok := dotKeys[k]; ok {
			dot.HandleKey(dir, true)
		}
	}
	for _, k := range released {
		if dir, ok := dotKeys[k]; ok {
			dot.HandleKey(dir, false)
		}
	}
}

// DotScene 方向键控制圆点移动，可选地与墙和另一个圆点碰撞
//
// 运动、碰撞、逐像素碰撞三个课程共用此场景，区别在于碰撞盒和障碍物。
type DotScene struct {
	dotTexture *components.Texture
	dot        *entities.Dot
	other      *entities.Dot // 静止的圆点，可为 nil
	wall       *collision.Rect

	obstacles []collision.Rect
	pressed   []ebiten.Key
	released  []ebiten.Key
}

// dotSceneOptions DotScene 的组成
type dotSceneOptions struct {
	name       string
	velocity   int
	silhouette bool // 使用条带轮廓代替单个碰撞盒
	wall       bool
	otherDot   bool
}

func newDotScene(env *Env, opts dotSceneOptions) *DotScene {
	log := logging.Named(opts.name)
	w, h := env.ScreenSize()
	dw, dh := env.Config.Dot.Width, env.Config.Dot.Height

	newColliders := func() *collision.ColliderSet {
		if opts.silhouette {
			return collision.NewStripCollider(dw, collision.DotSilhouette)
		}
		return nil
	}

	s := &DotScene{
		dotTexture: env.keyedTexture("dot", dw, dh, log),
		dot: entities.NewDot(entities.DotOptions{
			ScreenWidth:  w,
			ScreenHeight: h,
			Width:        dw,
			Height:       dh,
			Velocity:     opts.velocity,
			Colliders:    newColliders(),
		}),
	}

	if opts.wall {
		wc := env.Config.Wall
		s.wall = &collision.Rect{X: wc.X, Y: wc.Y, W: wc.W, H: wc.H}
	}
	if opts.otherDot {
		s.other = entities.NewDot(entities.DotOptions{
			ScreenWidth:  w,
			ScreenHeight: h,
			X:            w / 4,
			Y:            h / 4,
			Width:        dw,
			Height:       dh,
			Colliders:    newColliders(),
		})
	}
	return s
}

// NewMotionScene 创建运动课程：圆点只受屏幕边界限制
func NewMotionScene(env *Env) *DotScene {
	return newDotScene(env, dotSceneOptions{name: "Motion", velocity: env.Config.Dot.Velocity})
}

// NewCollisionScene 创建碰撞课程：单碰撞盒圆点与墙
func NewCollisionScene(env *Env) *DotScene {
	return newDotScene(env, dotSceneOptions{
		name:     "Collision",
		velocity: env.Config.Dot.Velocity,
		wall:     true,
	})
}

// NewPixelCollisionScene 创建逐像素碰撞课程：条带轮廓圆点与墙、另一个圆点
func NewPixelCollisionScene(env *Env) *DotScene {
	return newDotScene(env, dotSceneOptions{
		name:       "PixelCollision",
		velocity:   env.Config.Dot.PixelVelocity,
		silhouette: true,
		wall:       true,
		otherDot:   true,
	})
}

// Dot 返回受控的圆点
func (s *DotScene) Dot() *entities.Dot {
	return s.dot
}

// Obstacles 返回当前帧的障碍物
func (s *DotScene) Obstacles() []collision.Rect {
	s.obstacles = s.obstacles[:0]
	if s.wall != nil {
		s.obstacles = append(s.obstacles, *s.wall)
	}
	if s.other != nil {
		s.obstacles = append(s.obstacles, s.other.Colliders()...)
	}
	return s.obstacles
}

// Step 处理一帧的按键边沿并移动圆点
func (s *DotScene) Step(pressed, released []ebiten.Key) {
	applyDotKeys(s.dot, pressed, released)
	s.dot.Step(s.Obstacles())
}

func (s *DotScene) Update(deltaTime float64) {
	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	s.released = inpututil.AppendJustReleasedKeys(s.released[:0])
	s.Step(s.pressed, s.released)
}

func (s *DotScene) Draw(screen *ebiten.Image) {
	screen.Fill(clearWhite)

	if s.wall != nil {
		vector.StrokeRect(screen,
			float32(s.wall.X), float32(s.wall.Y), float32(s.wall.W), float32(s.wall.H),
			1, wallColor, false)
	}
	if s.other != nil {
		x, y := s.other.Position()
		s.dotTexture.Render(screen, x, y)
	}
	x, y := s.dot.Position()
	s.dotTexture.Render(screen, x, y)
}
