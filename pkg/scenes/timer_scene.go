package scenes

import (
	"time"

	"github.com/decker502/lessons/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// formatElapsed 计时课程显示的文字
func formatElapsed(d time.Duration) string {
	return printer.Sprintf("Seconds since start time %.3f", d.Seconds())
}

// TimerScene 可启动、停止、暂停的计时器
type TimerScene struct {
	timer    *components.Timer
	prompts  []*textLabel
	timeText *textLabel
	keys     []ebiten.Key
}

// NewTimerScene 创建计时器课程
func NewTimerScene(env *Env) *TimerScene {
	return newTimerScene(env, nil)
}

func newTimerScene(env *Env, clock components.Clock) *TimerScene {
	face := env.font()
	s := &TimerScene{
		timer: components.NewTimer(clock),
		prompts: []*textLabel{
			newTextLabel(face, textColor, "Press S to Start or Stop the Timer"),
			newTextLabel(face, textColor, "Press P to Pause or Unpause the Timer"),
			newTextLabel(face, textColor, "Press Enter to Reset Start Time."),
		},
	}
	s.timeText = newTextLabel(face, textColor, formatElapsed(0))
	return s
}

// HandleKey 处理一次按键，返回按键是否被处理
//
//	S 启动/停止，P 暂停/恢复，Enter 重新开始计时
func (s *TimerScene) HandleKey(key ebiten.Key) bool {
	switch key {
	case ebiten.KeyS:
		if s.timer.IsStarted() {
			s.timer.Stop()
		} else {
			s.timer.Start()
		}
	case ebiten.KeyP:
		if s.timer.IsPaused() {
			s.timer.Unpause()
		} else {
			s.timer.Pause()
		}
	case ebiten.KeyEnter:
		s.timer.Start()
	default:
		return false
	}
	return true
}

func (s *TimerScene) Update(deltaTime float64) {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		s.HandleKey(k)
	}
	s.timeText.Set(formatElapsed(s.timer.Ticks()))
}

func (s *TimerScene) Draw(screen *ebiten.Image) {
	screen.Fill(clearGray)

	y := 0
	for _, p := range s.prompts {
		drawCentered(screen, p.texture, y)
		y += p.Height()
	}
	drawCentered(screen, s.timeText.texture, (screen.Bounds().Dy()-s.timeText.Height())/2)
}
