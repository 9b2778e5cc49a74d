package scenes

import (
	"github.com/decker502/lessons/internal/logging"
	"github.com/decker502/lessons/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxReportedFPS 超过此值的平均帧率视为计时器刚启动时的异常值
const maxReportedFPS = 2000000

// averageFPS 计算平均帧率，异常值返回 0
func averageFPS(frames int, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	fps := float64(frames) / seconds
	if fps > maxReportedFPS {
		return 0
	}
	return fps
}

// formatFPS 帧率课程显示的文字
func formatFPS(fps float64) string {
	return printer.Sprintf("Average Frames Per Second (With Cap) %.2f", fps)
}

// FrameCapScene 限制每秒更新次数并显示平均帧率
type FrameCapScene struct {
	fpsTimer      *components.Timer
	countedFrames int
	frameCap      int
	previousTPS   int
	fpsText       *textLabel
}

// NewFrameCapScene 创建帧率限制课程
//
// 创建时把 TPS 设为配置的 frameCap（0 表示不限制），Close 时恢复。
func NewFrameCapScene(env *Env) *FrameCapScene {
	s := newFrameCapScene(env, nil)
	s.previousTPS = ebiten.TPS()

	tps := s.frameCap
	if tps == 0 {
		tps = ebiten.SyncWithFPS
	}
	ebiten.SetTPS(tps)
	logging.Named("FrameCap").Infof("TPS capped at %d (was %d)", s.frameCap, s.previousTPS)
	return s
}

func newFrameCapScene(env *Env, clock components.Clock) *FrameCapScene {
	s := &FrameCapScene{
		fpsTimer: components.NewTimer(clock),
		frameCap: env.Config.FrameCap,
		fpsText:  newTextLabel(env.font(), textColor, formatFPS(0)),
	}
	s.fpsTimer.Start()
	return s
}

// AverageFPS 返回启动以来的平均帧率
func (s *FrameCapScene) AverageFPS() float64 {
	return averageFPS(s.countedFrames, s.fpsTimer.Ticks().Seconds())
}

func (s *FrameCapScene) Update(deltaTime float64) {
	s.fpsText.Set(formatFPS(s.AverageFPS()))
	s.countedFrames++
}

func (s *FrameCapScene) Draw(screen *ebiten.Image) {
	screen.Fill(clearGray)
	b := screen.Bounds()
	s.fpsText.Render(screen, (b.Dx()-s.fpsText.Width())/2, (b.Dy()-s.fpsText.Height())/2)
}

// Close 恢复进入课程前的 TPS
func (s *FrameCapScene) Close() {
	if s.previousTPS != 0 {
		ebiten.SetTPS(s.previousTPS)
	}
}
