package engine

import (
	"testing"

	"texcube/engine/window"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

// stubWindow satisfies window.Window without touching GLFW, so session wiring
// can be exercised headlessly.
type stubWindow struct {
	width, height int
	running       bool
}

var _ window.Window = &stubWindow{}

func (w *stubWindow) SetUpdateCallback(func())                   {}
func (w *stubWindow) SetResizeCallback(func(int, int))           {}
func (w *stubWindow) SetKeyDownCallback(func(uint32))            {}
func (w *stubWindow) SetKeyUpCallback(func(uint32))              {}
func (w *stubWindow) SetMouseDownCallback(func(int32, int32))    {}
func (w *stubWindow) SetMouseUpCallback(func(int32, int32))      {}
func (w *stubWindow) SetMouseMoveCallback(func(int32, int32))    {}
func (w *stubWindow) SetFileDropCallback(func(string))           {}
func (w *stubWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (w *stubWindow) IsRunning() bool                            { return w.running }
func (w *stubWindow) Close() error                               { w.running = false; return nil }
func (w *stubWindow) ProcessMessages()                           {}
func (w *stubWindow) Width() int                                 { return w.width }
func (w *stubWindow) Height() int                                { return w.height }

func TestNewSession_StartsUninitialized(t *testing.T) {
	s := NewSession()
	assert.Equal(t, SessionStateUninitialized, s.State())
}

func TestInit_RequiresWindow(t *testing.T) {
	s := NewSession(WithShaderSources("@vertex fn vs_main() {}", "@fragment fn fs_main() {}"))

	err := s.Init()
	assert.Error(t, err)
	assert.Equal(t, SessionStateUninitialized, s.State())
}

func TestInit_RequiresShaderSources(t *testing.T) {
	s := NewSession(WithWindow(&stubWindow{width: 640, height: 480, running: true}))

	err := s.Init()
	assert.Error(t, err)
	assert.Equal(t, SessionStateUninitialized, s.State())
}

func TestLoadImage_BeforeInitIsNoOp(t *testing.T) {
	s := NewSession()

	assert.NotPanics(t, func() {
		s.LoadImage("photo.png", []byte{1, 2, 3})
	})
}

func TestQuit_ClosesWindow(t *testing.T) {
	win := &stubWindow{running: true}
	s := NewSession(WithWindow(win))

	s.Quit()
	assert.False(t, win.IsRunning())
}
