// Package main checks that every asset referenced by the lessons config exists
// and can be decoded.
//
// Usage:
//
//	go run ./cmd/check_assets [flags]
//
// Flags:
//
//	--config <path>   Lessons config file (default: data/lessons.yaml)
//	--verbose         Print every checked asset, not only failures
//
// Exit status is 1 when any asset is missing or broken.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"

	"github.com/decker502/lessons/pkg/config"
	_ "golang.org/x/image/bmp"
)

var (
	configFlag  = flag.String("config", "data/lessons.yaml", "Path to lessons config")
	verboseFlag = flag.Bool("verbose", false, "Print every checked asset")
)

// checkImage 检查图片是否存在且可解码，返回图片尺寸
func checkImage(path string) (image.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Point{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Point{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return image.Pt(cfg.Width, cfg.Height), nil
}

// checkFile 检查文件是否存在且非空
func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return fmt.Errorf("%s is empty", path)
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func main() {
	flag.Parse()

	cfg, err := config.LoadLessonsConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	checked, failures := 0, 0
	report := func(kind, id, path string, err error, detail string) {
		checked++
		if err != nil {
			failures++
			fmt.Printf("✗ %-6s %-12s %v\n", kind, id, err)
			return
		}
		if *verboseFlag {
			fmt.Printf("✓ %-6s %-12s %s %s\n", kind, id, path, detail)
		}
	}

	for _, id := range sortedKeys(cfg.Images) {
		path := cfg.ImagePath(id)
		size, err := checkImage(path)
		report("image", id, path, err, fmt.Sprintf("(%dx%d)", size.X, size.Y))
	}
	for _, id := range sortedKeys(cfg.Sounds) {
		path := cfg.SoundPath(id)
		report("sound", id, path, checkFile(path), "")
	}
	if path := cfg.FontPath(); path != "" {
		report("font", "font", path, checkFile(path), "")
	}

	fmt.Printf("Checked %d assets under %s, %d missing or broken\n", checked, cfg.BasePath, failures)
	if failures > 0 {
		os.Exit(1)
	}
}
