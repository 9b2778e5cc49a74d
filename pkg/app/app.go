// Package app 提供课程应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载配置、创建资源/音频/设置管理器、
// 注册课程场景，并实现 ebiten.Game 接口。
package app

import (
	"context"
	"fmt"
	"image/color"

	"github.com/decker502/lessons/internal/logging"
	"github.com/decker502/lessons/pkg/config"
	"github.com/decker502/lessons/pkg/embedded"
	"github.com/decker502/lessons/pkg/game"
	"github.com/decker502/lessons/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

const (
	// appName gdata 存储目录名
	appName = "ebiten-lessons"
	// sampleRate 音频采样率
	sampleRate = 48000
	// embeddedConfigPath 嵌入的默认课程配置
	embeddedConfigPath = "data/lessons.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Lesson 指定要直接进入的课程（如 "27"），为空则显示菜单
	Lesson string
	// ConfigPath 课程配置文件路径，为空则使用嵌入的 data/lessons.yaml
	ConfigPath string
}

// App 是课程应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	config          *config.LessonsConfig
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数

	log *zap.SugaredLogger
}

// NewApp 创建并初始化课程应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if err := logging.Init(cfg.Verbose); err != nil {
		return nil, fmt.Errorf("日志初始化失败: %w", err)
	}
	log := logging.Named("App")

	lessonsConfig, err := loadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("课程配置加载失败: %w", err)
	}

	resourceManager := game.NewResourceManager(audio.NewContext(sampleRate))

	if err := resourceManager.Preload(context.Background(), imagePaths(lessonsConfig)); err != nil {
		log.Warnf("Some images could not be preloaded, lessons will use placeholders: %v", err)
	}

	settingsManager, _ := game.NewSettingsManager(game.OpenStorage(appName))
	audioManager := game.NewAudioManager(resourceManager, settingsManager, lessonsConfig.SoundPath)
	log.Debugf("AudioManager initialized")

	sceneManager := game.NewSceneManager()
	env := &scenes.Env{
		Config:    lessonsConfig,
		Resources: resourceManager,
		Audio:     audioManager,
		Settings:  settingsManager,
		Scenes:    sceneManager,
	}
	sceneManager.SetSceneFactory(scenes.NewFactory(env))
	sceneManager.SetMenuFactory(func() game.Scene { return scenes.NewMenuScene(env) })

	a := &App{
		config:          lessonsConfig,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		audioManager:    audioManager,
		log:             log,
	}

	if cfg.Lesson == "" || !sceneManager.LoadLesson(cfg.Lesson) {
		if cfg.Lesson != "" {
			log.Warnf("Unknown lesson %q, showing menu", cfg.Lesson)
		}
		sceneManager.ShowMenu()
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	return a, nil
}

// loadConfig 读取课程配置：指定路径优先，否则使用嵌入的默认配置
func loadConfig(path string) (*config.LessonsConfig, error) {
	if path != "" {
		return config.LoadLessonsConfig(path)
	}
	data, err := embedded.ReadFile(embeddedConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseLessonsConfig(data)
}

// imagePaths 返回配置中所有图片的完整路径
func imagePaths(cfg *config.LessonsConfig) []string {
	paths := make([]string, 0, len(cfg.Images))
	for id := range cfg.Images {
		paths = append(paths, cfg.ImagePath(id))
	}
	return paths
}

// WindowSize 返回窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.config.Screen.Width, a.config.Screen.Height
}

// WindowTitle 返回窗口标题
func (a *App) WindowTitle() string {
	return a.config.Screen.Title
}

// Update 更新课程逻辑
// 每个 tick 调用一次
//
// Esc 退出程序，Q 从课程返回菜单，F11 切换全屏。
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.WindowSize())
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) && a.sceneManager.CurrentLesson() != "" {
		a.rememberLesson()
		a.sceneManager.ShowMenu()
		return nil
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = config.DefaultTPS
	}
	a.sceneManager.Update(1.0 / float64(tps))
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.log.Debugf("Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
}

// rememberLesson 记录当前课程，下次打开菜单时默认选中
func (a *App) rememberLesson() {
	if id := a.sceneManager.CurrentLesson(); id != "" {
		a.settingsManager.SetLastLesson(id)
	}
}

// Draw 绘制课程画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色，使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.WindowSize()
}

// Close 程序退出前保存设置并停止音乐
func (a *App) Close() {
	a.rememberLesson()
	a.audioManager.HaltMusic()
	if closer, ok := a.sceneManager.GetCurrentScene().(game.Closer); ok {
		closer.Close()
	}
	if err := a.settingsManager.Save(); err != nil {
		a.log.Warnf("Failed to save settings: %v", err)
	}
}
