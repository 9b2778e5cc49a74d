package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestButtonPositions 测试鼠标课程按钮覆盖 2x2 网格且互不重叠
func TestButtonPositions(t *testing.T) {
	positions := ButtonPositions()

	assert.Equal(t, [2]int{0, 0}, positions[0])
	assert.Equal(t, [2]int{ButtonWidth, ButtonHeight}, positions[TotalButtons-1])

	seen := map[[2]int]bool{}
	for _, p := range positions {
		assert.False(t, seen[p], "duplicate button position %v", p)
		seen[p] = true
		assert.LessOrEqual(t, p[0]+ButtonWidth, ScreenWidth)
		assert.LessOrEqual(t, p[1]+ButtonHeight, ScreenHeight)
	}
}

// TestWalkingSpriteSheetFitsFrames 测试行走动画帧宽与帧数一致
func TestWalkingSpriteSheetFitsFrames(t *testing.T) {
	assert.Equal(t, 256, WalkingFrameWidth*WalkingAnimationFrames)
	assert.Less(t, WalkingFrameHeight, ScreenHeight)
	assert.Positive(t, WalkingTicksPerFrame)
}
