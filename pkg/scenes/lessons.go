// Package scenes 实现课程菜单和各个课程场景
package scenes

import (
	"github.com/decker502/lessons/pkg/game"
)

// Lesson 课程注册信息
type Lesson struct {
	ID    string
	Title string
	New   func(env *Env) Scene
}

// lessons 按编号排序的课程列表
var lessons = []Lesson{
	{ID: "10", Title: "Color Keying", New: func(env *Env) Scene { return NewColorKeyingScene(env) }},
	{ID: "13", Title: "Alpha Blending", New: func(env *Env) Scene { return NewAlphaBlendingScene(env) }},
	{ID: "15", Title: "Rotation and Flipping", New: func(env *Env) Scene { return NewRotationScene(env) }},
	{ID: "17", Title: "Mouse Events", New: func(env *Env) Scene { return NewMouseEventsScene(env) }},
	{ID: "18", Title: "Key States", New: func(env *Env) Scene { return NewKeyStatesScene(env) }},
	{ID: "21", Title: "Sound Effects and Music", New: func(env *Env) Scene { return NewSoundScene(env) }},
	{ID: "23", Title: "Advanced Timers", New: func(env *Env) Scene { return NewTimerScene(env) }},
	{ID: "25", Title: "Capping Frame Rate", New: func(env *Env) Scene { return NewFrameCapScene(env) }},
	{ID: "26", Title: "Motion", New: func(env *Env) Scene { return NewMotionScene(env) }},
	{ID: "27", Title: "Collision Detection", New: func(env *Env) Scene { return NewCollisionScene(env) }},
	{ID: "28", Title: "Per-pixel Collision Detection", New: func(env *Env) Scene { return NewPixelCollisionScene(env) }},
}

// Lessons 返回所有课程（副本）
func Lessons() []Lesson {
	return append([]Lesson(nil), lessons...)
}

// FindLesson 按ID查找课程
func FindLesson(id string) (Lesson, bool) {
	for _, l := range lessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

// NewFactory 创建供 SceneManager 使用的课程工厂，未知ID返回 nil
func NewFactory(env *Env) game.SceneFactory {
	return func(lessonID string) game.Scene {
		l, ok := FindLesson(lessonID)
		if !ok {
			return nil
		}
		return l.New(env)
	}
}
