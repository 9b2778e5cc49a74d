package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStorage 在临时 HOME 下创建 gdata manager
func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	require.NoError(t, err)
	return manager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	require.NotNil(t, settings)

	assert.Equal(t, 0.7, settings.MusicVolume)
	assert.Equal(t, 0.8, settings.SoundVolume)
	assert.True(t, settings.MusicEnabled)
	assert.True(t, settings.SoundEnabled)
	assert.False(t, settings.Fullscreen)
	assert.Empty(t, settings.LastLesson)
}

// TestNewSettingsManagerNilGdata 测试没有存储时只在内存中保存
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	require.NoError(t, err)
	require.NotNil(t, sm)

	assert.Equal(t, 0.7, sm.GetSettings().MusicVolume)
	assert.NoError(t, sm.Save(), "Save() in degraded mode should not fail")
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	storage := openTestStorage(t, "test_lessons_settings")

	sm1, err := NewSettingsManager(storage)
	require.NoError(t, err)

	sm1.SetMusicVolume(0.5)
	sm1.SetSoundVolume(0.6)
	sm1.SetMusicEnabled(false)
	sm1.SetSoundEnabled(false)
	sm1.SetFullscreen(true)
	sm1.SetLastLesson("27")
	require.NoError(t, sm1.Save())

	sm2, err := NewSettingsManager(storage)
	require.NoError(t, err)
	settings := sm2.GetSettings()

	assert.Equal(t, 0.5, settings.MusicVolume)
	assert.Equal(t, 0.6, settings.SoundVolume)
	assert.False(t, settings.MusicEnabled)
	assert.False(t, settings.SoundEnabled)
	assert.True(t, settings.Fullscreen)
	assert.Equal(t, "27", settings.LastLesson)
}

// TestSettingsLoadCorrupted 测试存储内容损坏时回退到默认设置
func TestSettingsLoadCorrupted(t *testing.T) {
	storage := openTestStorage(t, "test_lessons_corrupted")
	require.NoError(t, storage.SaveObjectProp(settingsObject, settingsProperty, []byte("musicVolume: [")))

	sm, err := NewSettingsManager(storage)
	require.NoError(t, err, "a broken file does not prevent creation")
	assert.Equal(t, 0.7, sm.GetSettings().MusicVolume)

	assert.Error(t, sm.Load())
}

// TestSetVolumeClamp 测试音量范围校验
func TestSetVolumeClamp(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},  // 正常值
		{0.0, 0.0},  // 下限
		{1.0, 1.0},  // 上限
		{-0.5, 0.0}, // 低于下限
		{1.5, 1.0},  // 高于上限
	}

	for _, tt := range tests {
		sm.SetMusicVolume(tt.input)
		sm.SetSoundVolume(tt.input)
		assert.Equal(t, tt.expected, sm.GetSettings().MusicVolume, "SetMusicVolume(%v)", tt.input)
		assert.Equal(t, tt.expected, sm.GetSettings().SoundVolume, "SetSoundVolume(%v)", tt.input)
	}
}

// TestSetToggles 测试开关类设置
func TestSetToggles(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetMusicEnabled(false)
	sm.SetSoundEnabled(false)
	sm.SetFullscreen(true)

	assert.False(t, sm.GetSettings().MusicEnabled)
	assert.False(t, sm.GetSettings().SoundEnabled)
	assert.True(t, sm.GetSettings().Fullscreen)
}

// TestLoadNilGdataManager 测试没有存储时 Load() 恢复默认设置
func TestLoadNilGdataManager(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.SetMusicVolume(0.3)
	sm.SetLastLesson("10")

	require.NoError(t, sm.Load())
	assert.Equal(t, 0.7, sm.GetSettings().MusicVolume)
	assert.Empty(t, sm.GetSettings().LastLesson)
}

// TestSettingsLoadPartial 测试存档缺失字段使用默认值，越界音量被限制
func TestSettingsLoadPartial(t *testing.T) {
	storage := openTestStorage(t, "test_lessons_partial")
	require.NoError(t, storage.SaveObjectProp(settingsObject, settingsProperty, []byte("musicVolume: 3\nlastLesson: \"26\"\n")))

	sm, err := NewSettingsManager(storage)
	require.NoError(t, err)
	settings := sm.GetSettings()

	assert.Equal(t, 1.0, settings.MusicVolume)
	assert.Equal(t, 0.8, settings.SoundVolume)
	assert.True(t, settings.SoundEnabled)
	assert.Equal(t, "26", settings.LastLesson)
}
