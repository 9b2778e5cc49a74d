package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LessonsConfig 课程配置
//
// 配置文件位置: data/lessons.yaml（默认嵌入二进制，可用 -config 覆盖）
// 文件中未出现的字段保留 DefaultLessonsConfig() 的值。
type LessonsConfig struct {
	// Screen 窗口配置
	Screen ScreenConfig `yaml:"screen"`

	// BasePath 资源根目录
	BasePath string `yaml:"basePath"`

	// ColorKey 色键颜色 (R, G, B)，匹配的像素加载时变为透明
	ColorKey [3]uint8 `yaml:"colorKey"`

	// FrameCap 帧率限制课程的每秒更新次数，0 表示不限制
	FrameCap int `yaml:"frameCap"`

	// Dot 圆点配置
	Dot DotConfig `yaml:"dot"`

	// Wall 碰撞课程中的墙
	Wall RectConfig `yaml:"wall"`

	// Font 字体配置，文件缺失时使用内置位图字体
	Font FontConfig `yaml:"font"`

	// Images 图片资源 ID -> 相对路径
	Images map[string]string `yaml:"images"`

	// Sounds 音频资源 ID -> 相对路径
	Sounds map[string]string `yaml:"sounds"`
}

// ScreenConfig 窗口配置
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// DotConfig 圆点配置
type DotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Velocity 每次按键改变的速度（运动与碰撞课程）
	Velocity int `yaml:"velocity"`
	// PixelVelocity 逐像素碰撞课程中的速度
	PixelVelocity int `yaml:"pixelVelocity"`
}

// RectConfig 矩形配置
type RectConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// FontConfig 字体配置
type FontConfig struct {
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

// DefaultLessonsConfig 返回内置默认配置
func DefaultLessonsConfig() *LessonsConfig {
	return &LessonsConfig{
		Screen: ScreenConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  WindowTitle,
		},
		BasePath: "assets",
		ColorKey: [3]uint8{0, 0xFF, 0xFF},
		FrameCap: DefaultFrameCap,
		Dot: DotConfig{
			Width:         20,
			Height:        20,
			Velocity:      10,
			PixelVelocity: 1,
		},
		Wall: RectConfig{X: 300, Y: 40, W: 40, H: 400},
		Font: FontConfig{Path: "ttf/lazy.ttf", Size: 28},
		Images: map[string]string{
			"dot": "textures/dot.bmp",
		},
		Sounds: map[string]string{},
	}
}

// LoadLessonsConfig 从文件加载课程配置
//
// 参数:
//   - path: 配置文件路径（如 "data/lessons.yaml"）
//
// 返回:
//   - *LessonsConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadLessonsConfig(path string) (*LessonsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lessons config: %w", err)
	}
	return ParseLessonsConfig(data)
}

// ParseLessonsConfig 解析 YAML 格式的课程配置
func ParseLessonsConfig(data []byte) (*LessonsConfig, error) {
	config := DefaultLessonsConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse lessons config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lessons config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 屏幕尺寸为正
//   - 圆点尺寸为正且不超过屏幕
//   - 速度为正
//   - 墙的尺寸非负
//   - 帧率限制非负
func (c *LessonsConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}

	if c.Dot.Width <= 0 || c.Dot.Height <= 0 {
		return fmt.Errorf("dot size must be positive, got %dx%d", c.Dot.Width, c.Dot.Height)
	}
	if c.Dot.Width > c.Screen.Width || c.Dot.Height > c.Screen.Height {
		return fmt.Errorf("dot size %dx%d exceeds screen %dx%d",
			c.Dot.Width, c.Dot.Height, c.Screen.Width, c.Screen.Height)
	}
	if c.Dot.Velocity <= 0 || c.Dot.PixelVelocity <= 0 {
		return fmt.Errorf("dot velocities must be positive, got %d and %d",
			c.Dot.Velocity, c.Dot.PixelVelocity)
	}

	if c.Wall.W < 0 || c.Wall.H < 0 {
		return fmt.Errorf("wall size must not be negative, got %dx%d", c.Wall.W, c.Wall.H)
	}

	if c.FrameCap < 0 {
		return fmt.Errorf("frame cap must not be negative, got %d", c.FrameCap)
	}

	return nil
}

// ImagePath 返回图片资源的完整路径，未配置时返回空字符串
func (c *LessonsConfig) ImagePath(id string) string {
	return c.resolve(c.Images[id])
}

// SoundPath 返回音频资源的完整路径，未配置时返回空字符串
func (c *LessonsConfig) SoundPath(id string) string {
	return c.resolve(c.Sounds[id])
}

// FontPath 返回字体文件的完整路径
func (c *LessonsConfig) FontPath() string {
	return c.resolve(c.Font.Path)
}

func (c *LessonsConfig) resolve(rel string) string {
	if rel == "" {
		return ""
	}
	if c.BasePath == "" {
		return rel
	}
	return c.BasePath + "/" + rel
}
