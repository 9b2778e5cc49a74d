package game

import (
	"github.com/decker502/lessons/internal/logging"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

// MusicState 背景音乐状态
type MusicState int

const (
	// MusicHalted 没有音乐（从未播放或已停止）
	MusicHalted MusicState = iota
	// MusicPlaying 正在播放
	MusicPlaying
	// MusicPaused 已暂停，可恢复
	MusicPaused
)

// PathResolver 将资源ID解析为文件路径，未知ID返回空字符串
type PathResolver func(id string) string

// AudioManager 音频管理器
// 职责：
//   - 统一管理课程中所有音效和背景音乐的播放
//   - 实现音量与开关控制（读写 SettingsManager）
//   - 通过资源ID播放，无需关心路径
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager
	resolve         PathResolver

	currentMusic   *audio.Player
	currentMusicID string
	musicState     MusicState

	log *zap.SugaredLogger
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例，为 nil 时使用仅内存的默认设置
//   - resolve: 资源ID到文件路径的映射
func NewAudioManager(rm *ResourceManager, sm *SettingsManager, resolve PathResolver) *AudioManager {
	if sm == nil {
		sm, _ = NewSettingsManager(nil)
	}
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		resolve:         resolve,
		log:             logging.Named("AudioManager"),
	}
}

// PlaySound 播放音效
// 每次播放创建新的播放器，连续触发同一音效时互相叠加而不是截断
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.SoundEnabled() {
		return false
	}

	path := am.path(soundID)
	if path == "" {
		return false
	}
	player, err := am.resourceManager.NewSoundPlayer(path)
	if err != nil {
		am.log.Warnf("Failed to load sound %s: %v", soundID, err)
		return false
	}

	player.SetVolume(am.SoundVolume())
	player.Play()
	return true
}

// PlayMusic 从头循环播放背景音乐
// 同一时间只能播放一首背景音乐
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayMusic(musicID string) bool {
	if !am.MusicEnabled() {
		return false
	}

	am.HaltMusic()

	path := am.path(musicID)
	if path == "" {
		return false
	}
	player, err := am.resourceManager.LoadMusic(path)
	if err != nil {
		am.log.Warnf("Failed to load music %s: %v", musicID, err)
		return false
	}

	player.SetVolume(am.MusicVolume())
	if err := player.Rewind(); err != nil {
		am.log.Warnf("Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID
	am.musicState = MusicPlaying
	am.log.Debugf("Playing music: %s", musicID)
	return true
}

// ToggleMusic 没有音乐时开始播放，播放中则暂停，暂停中则恢复
func (am *AudioManager) ToggleMusic(musicID string) MusicState {
	switch am.musicState {
	case MusicHalted:
		am.PlayMusic(musicID)
	case MusicPlaying:
		am.PauseMusic()
	case MusicPaused:
		am.ResumeMusic()
	}
	return am.musicState
}

// PauseMusic 暂停当前背景音乐
func (am *AudioManager) PauseMusic() {
	if am.currentMusic != nil && am.musicState == MusicPlaying {
		am.currentMusic.Pause()
		am.musicState = MusicPaused
	}
}

// ResumeMusic 恢复暂停的背景音乐
func (am *AudioManager) ResumeMusic() {
	if am.currentMusic != nil && am.musicState == MusicPaused {
		am.currentMusic.Play()
		am.musicState = MusicPlaying
	}
}

// HaltMusic 停止当前背景音乐，下次播放从头开始
func (am *AudioManager) HaltMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
	}
	am.currentMusic = nil
	am.currentMusicID = ""
	am.musicState = MusicHalted
}

// MusicState 返回背景音乐状态
func (am *AudioManager) MusicState() MusicState {
	return am.musicState
}

// MusicVolume 返回音乐音量
func (am *AudioManager) MusicVolume() float64 {
	return am.settingsManager.GetSettings().MusicVolume
}

// SoundVolume 返回音效音量
func (am *AudioManager) SoundVolume() float64 {
	return am.settingsManager.GetSettings().SoundVolume
}

// SetMusicVolume 设置音乐音量并立即应用到当前音乐
func (am *AudioManager) SetMusicVolume(volume float64) {
	am.settingsManager.SetMusicVolume(volume)
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.MusicVolume())
	}
}

// SetSoundVolume 设置音效音量，从下一次播放开始生效
func (am *AudioManager) SetSoundVolume(volume float64) {
	am.settingsManager.SetSoundVolume(volume)
}

// MusicEnabled 返回音乐开关
func (am *AudioManager) MusicEnabled() bool {
	return am.settingsManager.GetSettings().MusicEnabled
}

// SoundEnabled 返回音效开关
func (am *AudioManager) SoundEnabled() bool {
	return am.settingsManager.GetSettings().SoundEnabled
}

// SetMusicEnabled 设置音乐开关，关闭时停止当前音乐
func (am *AudioManager) SetMusicEnabled(enabled bool) {
	am.settingsManager.SetMusicEnabled(enabled)
	if !enabled {
		am.HaltMusic()
	}
}

// SetSoundEnabled 设置音效开关
func (am *AudioManager) SetSoundEnabled(enabled bool) {
	am.settingsManager.SetSoundEnabled(enabled)
}

// PreloadSounds 预加载音效，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	for _, soundID := range soundIDs {
		path := am.path(soundID)
		if path == "" {
			continue
		}
		if _, err := am.resourceManager.LoadSoundEffect(path); err != nil {
			am.log.Warnf("Failed to preload sound %s: %v", soundID, err)
		}
	}
}

// path 解析资源ID，未知ID记录日志并返回空字符串
func (am *AudioManager) path(id string) string {
	path := ""
	if am.resolve != nil {
		path = am.resolve(id)
	}
	if path == "" {
		am.log.Warnf("Audio not found: %s", id)
	}
	return path
}
