package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockScene records calls made by the SceneManager.
type mockScene struct {
	updateCalled bool
	drawCalled   bool
	closed       bool
	deltaTime    float64
}

func (m *mockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *mockScene) Close() {
	m.closed = true
}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	require.NotNil(t, sm)
	assert.Nil(t, sm.GetCurrentScene())
	assert.Empty(t, sm.CurrentLesson())
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	scene := &mockScene{}
	sm.SwitchTo(scene)

	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(64, 48))

	assert.True(t, scene.updateCalled)
	assert.True(t, scene.drawCalled)
	assert.Equal(t, 0.016, scene.deltaTime)
}

func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	assert.NotPanics(t, func() {
		sm.Update(0.016)
		sm.Draw(ebiten.NewImage(64, 48))
	})
}

func TestSceneManagerSwitchClosesPrevious(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &mockScene{}
	scene2 := &mockScene{}

	sm.SwitchTo(scene1)
	sm.SwitchTo(scene1)
	assert.False(t, scene1.closed, "switching to the same scene keeps it open")

	sm.SwitchTo(scene2)
	sm.Update(0.016)

	assert.True(t, scene1.closed)
	assert.False(t, scene1.updateCalled)
	assert.True(t, scene2.updateCalled)
}

func TestSceneManagerLoadLesson(t *testing.T) {
	sm := NewSceneManager()
	assert.False(t, sm.LoadLesson("27"), "no factory set")

	created := map[string]*mockScene{}
	sm.SetSceneFactory(func(lessonID string) Scene {
		if lessonID != "26" && lessonID != "27" {
			return nil
		}
		s := &mockScene{}
		created[lessonID] = s
		return s
	})

	require.True(t, sm.LoadLesson("27"))
	assert.Equal(t, "27", sm.CurrentLesson())
	assert.Same(t, created["27"], sm.GetCurrentScene())

	assert.False(t, sm.LoadLesson("99"))
	assert.Equal(t, "27", sm.CurrentLesson(), "unknown lesson keeps the current one")

	require.True(t, sm.LoadLesson("26"))
	assert.True(t, created["27"].closed)
}

func TestSceneManagerShowMenu(t *testing.T) {
	sm := NewSceneManager()
	menu := &mockScene{}
	sm.SetMenuFactory(func() Scene { return menu })
	sm.SetSceneFactory(func(string) Scene { return &mockScene{} })

	require.True(t, sm.LoadLesson("10"))
	sm.ShowMenu()

	assert.Same(t, menu, sm.GetCurrentScene())
	assert.Empty(t, sm.CurrentLesson())
}
