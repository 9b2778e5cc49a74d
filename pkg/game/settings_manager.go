package game

import (
	"fmt"

	"github.com/decker502/lessons/internal/logging"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// GameSettings 全局设置，在各课程之间共享
type GameSettings struct {
	// 音频设置
	MusicVolume  float64 `yaml:"musicVolume"`  // 音乐音量 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 音乐开关
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏

	// LastLesson 上次运行的课程ID，未指定 -lesson 时直接进入
	LastLesson string `yaml:"lastLesson"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:  0.7,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
		Fullscreen:   false,
	}
}

// SettingsManager 保存跨课程共享的设置
// 修改只作用于内存，App 退出时统一调用 Save 持久化
type SettingsManager struct {
	store    *gdata.Manager // 为 nil 时只在内存中保存
	settings *GameSettings
	log      *zap.SugaredLogger
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建设置管理器并读取已保存的设置
// store 为 nil 或读取失败时使用默认设置；错误只记录日志
func NewSettingsManager(store *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		store:    store,
		settings: DefaultSettings(),
		log:      logging.Named("SettingsManager"),
	}
	if err := sm.Load(); err != nil {
		sm.log.Warnf("Failed to load settings: %v (using defaults)", err)
	}
	return sm, nil
}

// Load 读取已保存的设置，没有存档时恢复默认值
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.settings = loaded
	sm.log.Debugf("Settings loaded")
	return nil
}

// Save 以 YAML 写入存储；没有存储时什么也不做
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.log.Debugf("Settings saved")
	return nil
}

// GetSettings 返回当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetMusicVolume 音量限制在 [0, 1]
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
}

// SetSoundVolume 音量限制在 [0, 1]
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
}

func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetLastLesson 记录最近运行的课程，下次未指定 -lesson 时进入菜单并选中它
func (sm *SettingsManager) SetLastLesson(id string) {
	sm.settings.LastLesson = id
}

// OpenStorage 打开 gdata 存储，失败时返回 nil，设置不会持久化
func OpenStorage(appName string) *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logging.Named("SettingsManager").Warnf("gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return manager
}

func clampVolume(volume float64) float64 {
	return min(max(volume, 0), 1)
}
