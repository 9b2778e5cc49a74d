package scenes

import (
	"image/color"

	"github.com/decker502/lessons/internal/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

const (
	// menuTop 第一行课程的 Y 坐标
	menuTop = 60
	// menuRowHeight 每行高度
	menuRowHeight = 36
	// menuLeft 文字左边距
	menuLeft = 40
)

var highlightColor = color.RGBA{R: 0xCC, G: 0xE5, B: 0xFF, A: 0xFF}

// MenuScene 课程菜单
//
// 上下键选择，回车或鼠标点击进入课程。
type MenuScene struct {
	env      *Env
	lessons  []Lesson
	rows     []*textLabel
	title    *textLabel
	selected int
	keys     []ebiten.Key
	log      *zap.SugaredLogger
}

// NewMenuScene 创建课程菜单，初始选中上次运行的课程
func NewMenuScene(env *Env) *MenuScene {
	face := env.font()
	s := &MenuScene{
		env:     env,
		lessons: Lessons(),
		title:   newTextLabel(face, textColor, env.Config.Screen.Title),
		log:     logging.Named("Menu"),
	}
	for _, l := range s.lessons {
		s.rows = append(s.rows, newTextLabel(face, textColor, l.ID+"  "+l.Title))
	}

	if env.Settings != nil {
		s.Select(env.Settings.GetSettings().LastLesson)
	}
	return s
}

// Selected 返回当前选中的课程
func (s *MenuScene) Selected() Lesson {
	return s.lessons[s.selected]
}

// Select 按ID选中课程，未知ID时选中项不变
func (s *MenuScene) Select(id string) bool {
	for i, l := range s.lessons {
		if l.ID == id {
			s.selected = i
			return true
		}
	}
	return false
}

// Move 上下移动选中项，首尾循环
func (s *MenuScene) Move(delta int) {
	n := len(s.lessons)
	s.selected = ((s.selected+delta)%n + n) % n
}

// rowAt 返回 y 坐标所在的行，不在任何行上时返回 -1
func (s *MenuScene) rowAt(y int) int {
	if y < menuTop {
		return -1
	}
	row := (y - menuTop) / menuRowHeight
	if row >= len(s.lessons) {
		return -1
	}
	return row
}

// open 进入选中的课程
func (s *MenuScene) open() {
	l := s.Selected()
	s.log.Infof("Opening lesson %s (%s)", l.ID, l.Title)
	if s.env.Scenes != nil {
		s.env.Scenes.LoadLesson(l.ID)
	}
}

// HandleKey 处理一次按键，返回按键是否被处理
func (s *MenuScene) HandleKey(key ebiten.Key) bool {
	switch key {
	case ebiten.KeyArrowUp:
		s.Move(-1)
	case ebiten.KeyArrowDown:
		s.Move(1)
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		s.open()
	default:
		return false
	}
	return true
}

func (s *MenuScene) Update(deltaTime float64) {
	_, y := ebiten.CursorPosition()
	if row := s.rowAt(y); row >= 0 {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			s.selected = row
			s.open()
			return
		}
	}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		s.HandleKey(k)
	}
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(clearWhite)
	s.title.Render(screen, menuLeft, (menuTop-s.title.Height())/2)

	w := screen.Bounds().Dx()
	for i, row := range s.rows {
		y := menuTop + i*menuRowHeight
		if i == s.selected {
			vector.DrawFilledRect(screen, 0, float32(y), float32(w), menuRowHeight, highlightColor, false)
		}
		row.Render(screen, menuLeft, y+(menuRowHeight-row.Height())/2)
	}
}
