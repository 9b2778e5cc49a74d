package config

// 布局配置常量
// 所有课程共用 640x480 的逻辑屏幕，Ebitengine 负责缩放到实际窗口
const (
	// ScreenWidth 逻辑屏幕宽度（像素）
	ScreenWidth = 640

	// ScreenHeight 逻辑屏幕高度（像素）
	ScreenHeight = 480

	// WindowTitle 默认窗口标题
	WindowTitle = "Ebiten Lessons"

	// DefaultTPS 除帧率限制课程外的每秒更新次数
	DefaultTPS = 60

	// DefaultFrameCap 帧率限制课程的默认每秒更新次数
	DefaultFrameCap = 24
)

// 精灵图布局
const (
	// WalkingAnimationFrames 行走动画帧数
	WalkingAnimationFrames = 4

	// WalkingFrameWidth 行走动画单帧宽度
	WalkingFrameWidth = 64

	// WalkingFrameHeight 行走动画单帧高度
	WalkingFrameHeight = 205

	// WalkingTicksPerFrame 每帧动画持续的更新次数
	WalkingTicksPerFrame = 4

	// ButtonWidth 鼠标课程按钮宽度
	ButtonWidth = 300

	// ButtonHeight 鼠标课程按钮高度
	ButtonHeight = 200

	// TotalButtons 鼠标课程按钮数量
	TotalButtons = 4
)

// ButtonPositions 返回鼠标课程中 2x2 排列的按钮左上角坐标
func ButtonPositions() [TotalButtons][2]int {
	return [TotalButtons][2]int{
		{0, 0},
		{ButtonWidth, 0},
		{0, ButtonHeight},
		{ButtonWidth, ButtonHeight},
	}
}
