package scenes

import (
	"github.com/decker502/lessons/internal/logging"
	"github.com/decker502/lessons/pkg/components"
	"github.com/decker502/lessons/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MouseEventsScene 四个按钮随鼠标状态切换精灵帧
type MouseEventsScene struct {
	sprites *components.Texture
	buttons []*components.Button

	lastX, lastY int
}

// NewMouseEventsScene 创建鼠标事件课程
func NewMouseEventsScene(env *Env) *MouseEventsScene {
	log := logging.Named("MouseEvents")

	s := &MouseEventsScene{
		sprites: env.keyedTexture("buttons",
			config.ButtonWidth, config.ButtonHeight*int(components.ButtonSpriteTotal), log),
		lastX: -1,
		lastY: -1,
	}
	for _, pos := range config.ButtonPositions() {
		s.buttons = append(s.buttons, components.NewButton(pos[0], pos[1], config.ButtonWidth, config.ButtonHeight))
	}
	return s
}

// mouseEvents 将本帧鼠标状态转换为事件序列
func (s *MouseEventsScene) mouseEvents(x, y int) []components.MouseEvent {
	var events []components.MouseEvent
	if x != s.lastX || y != s.lastY {
		events = append(events, components.MouseMotion)
		s.lastX, s.lastY = x, y
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, components.MouseButtonDown)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, components.MouseButtonUp)
	}
	return events
}

// HandleMouse 将一个鼠标事件分发给所有按钮
func (s *MouseEventsScene) HandleMouse(ev components.MouseEvent, x, y int) {
	for _, b := range s.buttons {
		b.HandleMouse(ev, x, y)
	}
}

func (s *MouseEventsScene) Update(deltaTime float64) {
	x, y := ebiten.CursorPosition()
	for _, ev := range s.mouseEvents(x, y) {
		s.HandleMouse(ev, x, y)
	}
}

func (s *MouseEventsScene) Draw(screen *ebiten.Image) {
	screen.Fill(clearGray)
	for _, b := range s.buttons {
		clip := b.Clip()
		s.sprites.RenderEx(screen, b.X, b.Y, components.RenderOptions{Clip: &clip})
	}
}
