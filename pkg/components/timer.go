package components

import "time"

// Clock 时间来源，测试中可替换
type Clock func() time.Time

// Timer 可暂停的计时器
//
// 状态：停止 -> 运行 <-> 暂停 -> 停止
// Ticks 在运行时返回自启动以来的时长，暂停时返回暂停那一刻的时长，停止时返回 0。
type Timer struct {
	now Clock

	startTime  time.Time     // 启动时刻（扣除了已暂停的时长）
	pausedTime time.Duration // 暂停时已经过的时长

	started bool
	paused  bool
}

// NewTimer 创建计时器，clock 为 nil 时使用 time.Now
func NewTimer(clock Clock) *Timer {
	if clock == nil {
		clock = time.Now
	}
	return &Timer{now: clock}
}

// Start 启动（或重新启动）计时器
func (t *Timer) Start() {
	t.started = true
	t.paused = false
	t.startTime = t.now()
	t.pausedTime = 0
}

// Stop 停止计时器并清零
func (t *Timer) Stop() {
	t.started = false
	t.paused = false
	t.startTime = time.Time{}
	t.pausedTime = 0
}

// Pause 暂停运行中的计时器
func (t *Timer) Pause() {
	if t.started && !t.paused {
		t.paused = true
		t.pausedTime = t.now().Sub(t.startTime)
		t.startTime = time.Time{}
	}
}

// Unpause 恢复暂停的计时器
func (t *Timer) Unpause() {
	if t.started && t.paused {
		t.paused = false
		t.startTime = t.now().Add(-t.pausedTime)
		t.pausedTime = 0
	}
}

// Ticks 返回计时器当前的时长
func (t *Timer) Ticks() time.Duration {
	if !t.started {
		return 0
	}
	if t.paused {
		return t.pausedTime
	}
	return t.now().Sub(t.startTime)
}

// IsStarted 计时器是否已启动（暂停也算已启动）
func (t *Timer) IsStarted() bool {
	return t.started
}

// IsPaused 计时器是否处于暂停状态
func (t *Timer) IsPaused() bool {
	return t.paused && t.started
}
