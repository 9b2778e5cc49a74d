package game

import (
	"github.com/decker502/lessons/internal/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定ID的课程场景，避免循环依赖；未知ID返回 nil
type SceneFactory func(lessonID string) Scene

// SceneManager manages the application's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene  Scene
	currentLesson string       // 当前课程ID，菜单时为空
	sceneFactory  SceneFactory // 课程场景工厂
	menuFactory   func() Scene // 菜单场景工厂

	log *zap.SugaredLogger
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo, LoadLesson or ShowMenu to set one.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		log: logging.Named("SceneManager"),
	}
}

// SetSceneFactory 设置课程场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SetMenuFactory 设置菜单场景工厂函数
func (sm *SceneManager) SetMenuFactory(factory func() Scene) {
	sm.menuFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is closed if it implements Closer.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if closer, ok := sm.currentScene.(Closer); ok && sm.currentScene != scene {
		closer.Close()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentLesson 返回当前课程ID，菜单或未加载时返回空字符串
func (sm *SceneManager) CurrentLesson() string {
	return sm.currentLesson
}

// LoadLesson 加载指定ID的课程场景
// lessonID: 课程ID，如 "27"
//
// 返回 false 表示工厂未设置或ID未知，此时当前场景保持不变
func (sm *SceneManager) LoadLesson(lessonID string) bool {
	if sm.sceneFactory == nil {
		sm.log.Errorf("SceneFactory not set")
		return false
	}

	newScene := sm.sceneFactory(lessonID)
	if newScene == nil {
		sm.log.Warnf("Unknown lesson: %s", lessonID)
		return false
	}

	sm.SwitchTo(newScene)
	sm.currentLesson = lessonID
	sm.log.Infof("Switched to lesson %s", lessonID)
	return true
}

// ShowMenu 返回课程菜单
func (sm *SceneManager) ShowMenu() {
	if sm.menuFactory == nil {
		sm.log.Errorf("MenuFactory not set")
		return
	}
	sm.SwitchTo(sm.menuFactory())
	sm.currentLesson = ""
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
