// Ebitengine 课程合集
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--lesson <id>     Lesson to open directly (e.g. 27), menu when empty
//	--config <path>   Lessons config file (default: embedded data/lessons.yaml)
//	--verbose         Enable verbose logging
//
// Controls:
//
//	Q    - Back to the lesson menu
//	ESC  - Quit
//	F11  - Toggle fullscreen
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/decker502/lessons/internal/logging"
	"github.com/decker502/lessons/pkg/app"
	"github.com/decker502/lessons/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	lessonFlag  = flag.String("lesson", "", "Lesson ID to open directly (e.g., 10, 27)")
	configFlag  = flag.String("config", "", "Path to lessons config (default: embedded data/lessons.yaml)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()
	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		Lesson:     *lessonFlag,
		ConfigPath: *configFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	ebiten.SetWindowSize(a.WindowSize())
	ebiten.SetWindowTitle(a.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(a)
	a.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		logging.Named("Main").Errorf("Game exited with error: %v", err)
		logging.Sync()
		os.Exit(1)
	}
}
