//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。构建前需把 data/lessons.yaml
// 复制到 mobile/data/ 下：
//
//	mkdir -p mobile/data && cp data/lessons.yaml mobile/data/
//	ebitenmobile bind -target android -tags mobile -javapkg com.decker.lessons -o build/android/lessons.aar ./mobile
package mobile

import (
	"embed"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/lessons/pkg/app"
	"github.com/decker502/lessons/pkg/embedded"
)

//go:embed data/lessons.yaml
var dataFS embed.FS

func init() {
	embedded.Init(dataFS)

	// 移动端没有命令行参数，从课程菜单开始
	lessonsApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		panic(err)
	}

	mobile.SetGame(lessonsApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
