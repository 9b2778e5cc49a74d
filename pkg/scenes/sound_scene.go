package scenes

import (
	"github.com/decker502/lessons/internal/logging"
	"github.com/decker502/lessons/pkg/components"
	"github.com/decker502/lessons/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// musicID 音频课程的背景音乐
const musicID = "beat"

// volumeStep 每次按键调整的音量
const volumeStep = 0.1

// soundKeys 数字键与音效的对应关系
var soundKeys = map[ebiten.Key]string{
	ebiten.KeyDigit1: "high",
	ebiten.KeyDigit2: "medium",
	ebiten.KeyDigit3: "low",
	ebiten.KeyDigit4: "scratch",
}

// SoundScene 数字键播放音效，9 切换音乐，0 停止音乐
// =/- 调整音乐音量，]/[ 调整音效音量，M/N 开关音乐和音效；设置随应用退出保存
type SoundScene struct {
	prompt *components.Texture
	audio  *game.AudioManager
	keys   []ebiten.Key
	log    *zap.SugaredLogger
}

// NewSoundScene 创建音效与音乐课程
func NewSoundScene(env *Env) *SoundScene {
	w, h := env.ScreenSize()
	s := &SoundScene{
		prompt: env.texture("prompt", w, h),
		audio:  env.Audio,
		log:    logging.Named("Sound"),
	}
	if s.audio == nil {
		s.log.Warnf("No audio manager, sounds disabled")
	} else {
		s.audio.PreloadSounds([]string{"high", "medium", "low", "scratch"})
	}
	return s
}

// HandleKey 处理一次按键，返回按键是否被处理
func (s *SoundScene) HandleKey(key ebiten.Key) bool {
	if s.audio == nil {
		return false
	}
	if id, ok := soundKeys[key]; ok {
		s.audio.PlaySound(id)
		return true
	}

	switch key {
	case ebiten.KeyDigit9:
		state := s.audio.ToggleMusic(musicID)
		s.log.Debugf("Music state: %d", state)
	case ebiten.KeyDigit0:
		s.audio.HaltMusic()
	case ebiten.KeyEqual:
		s.audio.SetMusicVolume(s.audio.MusicVolume() + volumeStep)
		s.log.Debugf("Music volume: %.1f", s.audio.MusicVolume())
	case ebiten.KeyMinus:
		s.audio.SetMusicVolume(s.audio.MusicVolume() - volumeStep)
		s.log.Debugf("Music volume: %.1f", s.audio.MusicVolume())
	case ebiten.KeyBracketRight:
		s.audio.SetSoundVolume(s.audio.SoundVolume() + volumeStep)
		s.log.Debugf("Sound volume: %.1f", s.audio.SoundVolume())
	case ebiten.KeyBracketLeft:
		s.audio.SetSoundVolume(s.audio.SoundVolume() - volumeStep)
		s.log.Debugf("Sound volume: %.1f", s.audio.SoundVolume())
	case ebiten.KeyM:
		s.audio.SetMusicEnabled(!s.audio.MusicEnabled())
	case ebiten.KeyN:
		s.audio.SetSoundEnabled(!s.audio.SoundEnabled())
	default:
		return false
	}
	return true
}

func (s *SoundScene) Update(deltaTime float64) {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		s.HandleKey(k)
	}
}

func (s *SoundScene) Draw(screen *ebiten.Image) {
	screen.Fill(clearGray)
	s.prompt.Render(screen, 0, 0)
}

// Close 离开课程时停止音乐
func (s *SoundScene) Close() {
	if s.audio != nil {
		s.audio.HaltMusic()
	}
}
