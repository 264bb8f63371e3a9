// Command texcube opens a window showing a textured cube whose per-face texture
// coordinates are controlled by seven draggable markers. Drop a PNG or JPEG onto
// the window (or pass a path as the first argument) to texture the cube, drag
// markers with the left mouse button, press 1-7 to select a marker by number,
// and press R to restore the default cube-net layout.
package main

import (
	_ "embed"
	"log"
	"os"
	"path/filepath"

	"texcube/engine"
	"texcube/engine/renderer"
	"texcube/engine/window"
)

//go:embed assets/shaders/cube-vert.wgsl
var cubeVertexSource string

//go:embed assets/shaders/cube-frag.wgsl
var cubeFragmentSource string

func main() {
	win := window.NewWindow(
		window.WithTitle("texcube - drag markers 1-7, drop an image, R resets"),
		window.WithWidth(1280),
		window.WithHeight(720),
	)

	sess := engine.NewSession(
		engine.WithWindow(win),
		engine.WithShaderSources(cubeVertexSource, cubeFragmentSource),
		engine.WithPresentMode(renderer.PresentModeVSync),
		engine.WithMSAA(renderer.MSAA4x),
	)

	if err := sess.Init(); err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}

	// An image path on the command line skips the drag-and-drop step.
	if len(os.Args) > 1 {
		path := os.Args[1]
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("failed to read %q: %v", path, err)
		} else {
			sess.LoadImage(filepath.Base(path), data)
		}
	}

	sess.Run()
}
