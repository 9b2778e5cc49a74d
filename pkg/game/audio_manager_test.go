package game

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSilentWAV 写入一段 16-bit 立体声静音 WAV
func writeSilentWAV(t *testing.T, path string) {
	t.Helper()
	const sampleRate = 48000
	samples := make([]byte, sampleRate/10*4) // 0.1 秒

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(samples)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(2)) // channels
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*4))
	binary.Write(&buf, binary.LittleEndian, uint16(4))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(samples)))
	buf.Write(samples)

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func newTestAudioManager(t *testing.T, sm *SettingsManager) *AudioManager {
	dir := t.TempDir()
	paths := map[string]string{
		"beat": filepath.Join(dir, "beat.wav"),
		"high": filepath.Join(dir, "high.wav"),
	}
	for _, p := range paths {
		writeSilentWAV(t, p)
	}

	rm := NewResourceManager(testAudioContext)
	return NewAudioManager(rm, sm, func(id string) string { return paths[id] })
}

// TestAudioManagerPlaySound 测试音效播放与缓存
func TestAudioManagerPlaySound(t *testing.T) {
	am := newTestAudioManager(t, nil)

	assert.True(t, am.PlaySound("high"))
	assert.Len(t, am.resourceManager.soundCache, 1)

	// 连续触发时解码数据只缓存一份，每次播放使用新的播放器
	assert.True(t, am.PlaySound("high"))
	assert.Len(t, am.resourceManager.soundCache, 1)

	assert.False(t, am.PlaySound("unknown"))
}

// TestAudioManagerSoundDisabled 测试音效关闭时不播放
func TestAudioManagerSoundDisabled(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)
	am := newTestAudioManager(t, sm)

	assert.False(t, am.PlaySound("high"))
}

// TestAudioManagerToggleMusic 测试音乐的 播放 -> 暂停 -> 恢复 -> 停止 流程
func TestAudioManagerToggleMusic(t *testing.T) {
	am := newTestAudioManager(t, nil)
	require.Equal(t, MusicHalted, am.MusicState())

	assert.Equal(t, MusicPlaying, am.ToggleMusic("beat"))
	assert.Equal(t, "beat", am.currentMusicID)

	assert.Equal(t, MusicPaused, am.ToggleMusic("beat"))
	assert.Equal(t, MusicPlaying, am.ToggleMusic("beat"))

	am.HaltMusic()
	assert.Equal(t, MusicHalted, am.MusicState())
	assert.Nil(t, am.currentMusic)

	assert.Equal(t, MusicPlaying, am.ToggleMusic("beat"), "halted music starts again")
	am.HaltMusic()
}

// TestAudioManagerToggleMissingMusic 测试音乐文件缺失时保持停止状态
func TestAudioManagerToggleMissingMusic(t *testing.T) {
	am := newTestAudioManager(t, nil)

	assert.Equal(t, MusicHalted, am.ToggleMusic("missing"))
	am.PauseMusic()
	am.ResumeMusic()
	assert.Equal(t, MusicHalted, am.MusicState())
}

// TestAudioManagerMusicDisabled 测试音乐关闭时不播放
func TestAudioManagerMusicDisabled(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.SetMusicEnabled(false)
	am := newTestAudioManager(t, sm)

	assert.False(t, am.PlayMusic("beat"))
	assert.Equal(t, MusicHalted, am.MusicState())
}

// TestAudioManagerVolume 测试音量设置写回 SettingsManager 并应用到当前音乐
func TestAudioManagerVolume(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	am := newTestAudioManager(t, sm)
	am.PreloadSounds([]string{"high", "unknown"})
	assert.Len(t, am.resourceManager.soundCache, 1)

	require.True(t, am.PlayMusic("beat"))
	am.SetSoundVolume(0.25)
	am.SetMusicVolume(2)

	assert.Equal(t, 0.25, sm.GetSettings().SoundVolume)
	assert.Equal(t, 1.0, sm.GetSettings().MusicVolume)
	assert.Equal(t, 0.25, am.SoundVolume())
	assert.InDelta(t, 1.0, am.currentMusic.Volume(), 1e-9)

	am.SetMusicVolume(-1)
	assert.Equal(t, 0.0, am.MusicVolume())
	am.HaltMusic()
}

// TestAudioManagerEnableFlags 测试开关写回设置，关闭音乐时停止播放
func TestAudioManagerEnableFlags(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	am := newTestAudioManager(t, sm)

	require.Equal(t, MusicPlaying, am.ToggleMusic("beat"))
	am.SetMusicEnabled(false)
	assert.False(t, sm.GetSettings().MusicEnabled)
	assert.Equal(t, MusicHalted, am.MusicState())

	am.SetSoundEnabled(false)
	assert.False(t, am.SoundEnabled())
	assert.False(t, am.PlaySound("high"))

	am.SetMusicEnabled(true)
	am.SetSoundEnabled(true)
	assert.True(t, am.MusicEnabled())
	assert.True(t, am.PlaySound("high"))
}

// TestAudioManagerWithoutSettings 测试没有 SettingsManager 时使用默认设置
func TestAudioManagerWithoutSettings(t *testing.T) {
	am := newTestAudioManager(t, nil)

	assert.Equal(t, DefaultSettings().MusicVolume, am.MusicVolume())
	assert.Equal(t, DefaultSettings().SoundVolume, am.SoundVolume())
	am.SetSoundVolume(0.5)
	assert.Equal(t, 0.5, am.SoundVolume())
}
