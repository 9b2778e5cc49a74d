// Package logging 提供全局日志器
//
// 所有组件通过 Named() 获取带组件名的 SugaredLogger，
// 日志格式沿用 "[Component] message" 的风格。
// 未调用 Init() 前返回 no-op 日志器（静默模式）。
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu   sync.RWMutex
	root = zap.NewNop()
)

// Init 初始化全局日志器
//
// 参数：
//   - verbose: true 时输出 debug 级别的开发模式日志，false 时静默
//
// 返回：
//   - error: zap 配置构建失败时返回错误
func Init(verbose bool) error {
	if !verbose {
		set(zap.NewNop())
		return nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.DebugLevel),
		Development:      true,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	logger, err := config.Build()
	if err != nil {
		return err
	}
	set(logger)
	return nil
}

// Named 返回指定组件名的日志器
func Named(component string) *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return root.Named(component).Sugar()
}

// Sync 刷新缓冲的日志，在程序退出前调用
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}

func set(logger *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	root = logger
}
