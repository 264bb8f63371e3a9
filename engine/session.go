package engine

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"texcube/common"
	"texcube/engine/geometry"
	"texcube/engine/mapper"
	"texcube/engine/profiler"
	"texcube/engine/renderer"
	"texcube/engine/renderer/bind_group_provider"
	"texcube/engine/renderer/pipeline"
	"texcube/engine/renderer/shader"
	"texcube/engine/texture"
	"texcube/engine/window"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/chewxy/math32"
)

// SessionState identifies where the demo is in its lifecycle.
type SessionState int

const (
	// SessionStateUninitialized is the state before Init has completed. No GPU
	// resources exist and no input is processed.
	SessionStateUninitialized SessionState = iota

	// SessionStatePlaceholder means the pipeline is fully drawable with the 1×1
	// placeholder texture bound. Marker drags are accepted but operate on
	// placeholder-sized bounds.
	SessionStatePlaceholder

	// SessionStateUserImage means a user-selected image has replaced the
	// placeholder and marker drags map against its real pixel dimensions.
	SessionStateUserImage
)

// markerHitRadius is the pointer pick distance for grabbing a marker, in window pixels.
const markerHitRadius = float32(24)

// decodedImage is the result of an asynchronous image decode, delivered from the
// worker pool back to the message loop thread.
type decodedImage struct {
	name    string
	staging common.TextureStagingData
	err     error
}

// transformsUniform mirrors the WGSL Transforms struct layout: the model matrix
// followed by the projection matrix (two mat4x4<f32>, 128 bytes).
type transformsUniform struct {
	Model      [16]float32
	Projection [16]float32
}

// session is the implementation of the Session interface.
// It owns every component of the demo and coordinates them on the window's
// message loop thread. All GPU work happens on that thread; the only other
// goroutines are the decode workers, which communicate via a channel.
type session struct {
	window   window.Window
	renderer renderer.Renderer

	vertexSource   string
	fragmentSource string
	pipelineKey    string

	mesh        geometry.Mesh
	coordMapper mapper.Mapper
	interaction mapper.InteractionState
	textures    texture.Manager
	provider    bind_group_provider.BindGroupProvider

	// transformsGroup and transformsBinding locate the Transforms uniform,
	// resolved by name from the vertex shader at Init.
	transformsGroup   int
	transformsBinding int

	transforms transformsUniform

	// selectedMarker is the keyboard-selected marker slot, or NoActiveMarker.
	// When set, the next pointer-down grabs it regardless of pick distance.
	selectedMarker int

	// dirty requests exactly one redraw on the next message loop iteration.
	// Only touched from the message loop thread.
	dirty bool

	state SessionState

	decodePool    worker.DynamicWorkerPool
	decodeWorkers int
	decodedImages chan decodedImage
	nextTaskID    int

	profiler         *profiler.Profiler
	profilingEnabled bool

	// pending renderer config collected from builder options
	pendingMSAA         *renderer.MSAASampleCount
	pendingPresentMode  *renderer.PresentMode
	forceSoftwareRender bool
}

// Session is the main entry point for the demo. It wires the window, renderer,
// coordinate mapper, and texture manager together and runs the event-driven
// message loop: frames are drawn only in response to state changes (marker
// drags, image loads, resizes, resets), never continuously.
type Session interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// State returns the session's current lifecycle state.
	//
	// Returns:
	//   - SessionState: the current state
	State() SessionState

	// Init creates the renderer, parses and registers the shader pipeline,
	// uploads the cube geometry and default texture coordinates, writes the
	// transform uniforms, binds the placeholder texture, and wires all window
	// input callbacks. After Init returns nil the session is drawable.
	//
	// Returns:
	//   - error: an error if any GPU resource creation fails
	Init() error

	// LoadImage submits encoded image bytes for asynchronous decode. On decode
	// completion the message loop swaps the texture and redraws once. A decode
	// failure is logged and leaves the current texture bound.
	//
	// Parameters:
	//   - name: an identifier for the image, typically the file name
	//   - data: the raw encoded image bytes (PNG or JPEG)
	LoadImage(name string, data []byte)

	// RequestRedraw marks the scene dirty so the next message loop iteration
	// draws one frame.
	RequestRedraw()

	// Run starts the window message loop (blocks until the window closes).
	Run()

	// Quit closes the window, ending the message loop.
	Quit()
}

var _ Session = &session{}

// NewSession creates a new Session with the provided options. A window and both
// shader sources must be supplied via options before Init is called.
//
// Parameters:
//   - options: functional options for session configuration
//
// Returns:
//   - Session: the newly created session
func NewSession(options ...SessionBuilderOption) Session {
	s := &session{
		pipelineKey:    "cube",
		coordMapper:    mapper.NewMapper(),
		interaction:    mapper.NewInteractionState(),
		selectedMarker: mapper.NoActiveMarker,
		decodeWorkers:  2,
		decodedImages:  make(chan decodedImage, 1),
		profiler:       profiler.NewProfiler(),
		state:          SessionStateUninitialized,
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

func (s *session) Window() window.Window {
	return s.window
}

func (s *session) State() SessionState {
	return s.state
}

func (s *session) Init() error {
	if s.window == nil {
		return errors.New("session: a window is required")
	}
	if s.vertexSource == "" || s.fragmentSource == "" {
		return errors.New("session: vertex and fragment shader sources are required")
	}

	var rendererOpts []renderer.RendererBuilderOption
	if s.pendingMSAA != nil {
		rendererOpts = append(rendererOpts, renderer.WithMSAA(*s.pendingMSAA))
	}
	if s.pendingPresentMode != nil {
		rendererOpts = append(rendererOpts, renderer.WithPresentMode(*s.pendingPresentMode))
	}
	if s.forceSoftwareRender {
		rendererOpts = append(rendererOpts, renderer.WithForceSoftwareRenderer(true))
	}
	s.renderer = renderer.NewRenderer(renderer.BackendTypeWGPU, s.window, rendererOpts...)

	vs := shader.NewShader(s.pipelineKey+"_vs", shader.ShaderTypeVertex, s.vertexSource)
	fs := shader.NewShader(s.pipelineKey+"_fs", shader.ShaderTypeFragment, s.fragmentSource)

	p := pipeline.NewPipeline(s.pipelineKey,
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
	)
	if err := s.renderer.RegisterPipelines(p); err != nil {
		return err
	}

	s.provider = bind_group_provider.NewBindGroupProvider(s.pipelineKey)
	s.mesh = geometry.NewCubeMesh(
		geometry.WithProvider(s.provider),
		geometry.WithTexCoords(s.coordMapper.TexCoords()),
	)
	if err := s.renderer.InitGeometryBuffers(
		s.provider,
		s.mesh.PositionBytes(),
		s.mesh.TexCoordBytes(),
		s.mesh.IndexBytes(),
		s.mesh.IndexCount(),
	); err != nil {
		return err
	}

	// Resolve the transform uniform's slot by name so the WGSL source stays the
	// single source of truth for binding indices.
	s.transformsGroup, s.transformsBinding = vs.UniformBinding("transforms")
	if s.transformsGroup == shader.UnresolvedLocation {
		return fmt.Errorf("session: vertex shader %q declares no 'transforms' uniform", vs.Key())
	}
	if err := s.renderer.InitBindGroup(s.provider, s.transformsGroup, vs.BindGroupLayoutDescriptor(s.transformsGroup), nil); err != nil {
		return err
	}
	s.writeTransforms()

	texGroup, texBinding := fs.UniformBinding("cube_texture")
	_, samplerBinding := fs.UniformBinding("cube_sampler")
	if texGroup == shader.UnresolvedLocation || samplerBinding == shader.UnresolvedLocation {
		return fmt.Errorf("session: fragment shader %q must declare 'cube_texture' and 'cube_sampler'", fs.Key())
	}
	s.textures = texture.NewManager(
		texture.WithProvider(s.provider),
		texture.WithTextureBinding(texGroup, texBinding),
		texture.WithSamplerBinding(samplerBinding),
		texture.WithLayoutDescriptor(fs.BindGroupLayoutDescriptor(texGroup)),
	)
	if err := s.textures.InitPlaceholder(s.renderer); err != nil {
		return err
	}

	// Queue size of 8 is generous: the user selects one image at a time.
	s.decodePool = worker.NewDynamicWorkerPool(s.decodeWorkers, 8, 1*time.Second)

	s.wireWindowCallbacks()

	s.state = SessionStatePlaceholder
	s.dirty = true
	return nil
}

func (s *session) LoadImage(name string, data []byte) {
	if s.decodePool == nil {
		return
	}

	s.nextTaskID++
	s.decodePool.SubmitTask(worker.Task{
		ID: s.nextTaskID,
		Do: func() (any, error) {
			src := &common.SourceImage{Name: name, Data: data}
			pixels, width, height, err := src.Decode()

			result := decodedImage{name: name}
			if err != nil {
				result.err = &texture.DecodeError{Name: name, Err: err}
			} else {
				result.staging = common.TextureStagingData{
					Pixels: pixels,
					Width:  width,
					Height: height,
				}
			}

			// A newer decode supersedes any undelivered one: drain the pending
			// result before sending, mirroring a last-writer-wins mailbox.
			select {
			case s.decodedImages <- result:
			default:
				select {
				case <-s.decodedImages:
				default:
				}
				s.decodedImages <- result
			}
			return nil, result.err
		},
	})
}

func (s *session) RequestRedraw() {
	s.dirty = true
}

func (s *session) Run() {
	s.window.ProcessMessages()
}

func (s *session) Quit() {
	if s.window != nil {
		_ = s.window.Close()
	}
}

// wireWindowCallbacks connects the window's input events to the session's
// handlers. All callbacks fire on the message loop thread.
func (s *session) wireWindowCallbacks() {
	s.window.SetUpdateCallback(s.update)
	s.window.SetResizeCallback(s.handleResize)
	s.window.SetKeyDownCallback(s.handleKeyDown)
	s.window.SetMouseDownCallback(s.handleMouseDown)
	s.window.SetMouseMoveCallback(s.handleMouseMove)
	s.window.SetMouseUpCallback(s.handleMouseUp)
	s.window.SetFileDropCallback(s.handleFileDrop)
}

// update runs once per message loop iteration: applies at most one completed
// image decode, then draws a single frame if anything marked the scene dirty.
func (s *session) update() {
	select {
	case result := <-s.decodedImages:
		s.applyDecodedImage(result)
	default:
	}

	if s.dirty {
		s.drawFrame()
	}
}

// applyDecodedImage swaps the decoded image onto the GPU texture binding and
// requests one redraw. Decode failures are logged and ignored; the current
// texture stays bound so the demo remains usable.
func (s *session) applyDecodedImage(result decodedImage) {
	if result.err != nil {
		log.Printf("image load failed: %v", result.err)
		return
	}

	if err := s.textures.ReplaceWithImage(s.renderer, result.staging); err != nil {
		log.Printf("texture swap for %q failed: %v", result.name, err)
		return
	}

	s.state = SessionStateUserImage
	s.dirty = true
}

// drawFrame renders exactly one frame. A BeginFrame failure means the platform
// surface is gone, which is fatal for the demo; it logs and closes the window.
func (s *session) drawFrame() {
	if err := s.renderer.BeginFrame(); err != nil {
		log.Printf("fatal: %v", err)
		_ = s.window.Close()
		return
	}

	if err := s.renderer.DrawCall(s.pipelineKey, s.provider); err != nil {
		log.Printf("draw call failed: %v", err)
	}

	s.renderer.EndFrame()
	s.renderer.Present()
	s.dirty = false

	if s.profilingEnabled && s.profiler != nil {
		s.profiler.RecordRedraw()
	}
}

// writeTransforms rebuilds the model and projection matrices from the current
// window aspect ratio and uploads them to the Transforms uniform buffer.
func (s *session) writeTransforms() {
	// Fixed pose: pull the cube back and tilt it so three faces are visible.
	common.BuildModelMatrix(s.transforms.Model[:], 0, 0, -3.0, -0.45, 0.62, 0)

	aspect := float32(s.window.Width()) / float32(max(s.window.Height(), 1))
	common.Perspective(s.transforms.Projection[:], math32.Pi/4, aspect, 0.1, 100.0)

	s.renderer.WriteBuffers([]bind_group_provider.BufferWrite{{
		Provider: s.provider,
		Group:    s.transformsGroup,
		Binding:  s.transformsBinding,
		Offset:   0,
		Data:     common.StructToBytes(&s.transforms),
	}})
}

// handleResize reconfigures the surface for the new pixel dimensions, rebuilds
// the projection matrix, and redraws once.
func (s *session) handleResize(width, height int) {
	if s.state == SessionStateUninitialized || width == 0 || height == 0 {
		return
	}
	s.renderer.Resize(width, height)
	s.writeTransforms()
	s.dirty = true
}

func (s *session) handleKeyDown(keyCode uint32) {
	if s.state == SessionStateUninitialized {
		return
	}

	switch {
	case keyCode >= common.Key1 && keyCode <= common.Key7:
		s.selectedMarker = int(keyCode - common.Key1)
	case keyCode == common.KeyR:
		s.coordMapper.Reset()
		s.selectedMarker = mapper.NoActiveMarker
		s.interaction.End()
		s.pushTexCoords()
		if s.profilingEnabled && s.profiler != nil {
			s.profiler.RecordReset()
		}
	}
}

// handleMouseDown begins a drag gesture. A keyboard-selected marker is grabbed
// unconditionally; otherwise the nearest marker within the pick radius wins.
func (s *session) handleMouseDown(x, y int32) {
	if s.state == SessionStateUninitialized {
		return
	}

	markerID := s.selectedMarker
	if markerID == mapper.NoActiveMarker {
		markerID = s.hitTestMarker(x, y)
	}
	if markerID == mapper.NoActiveMarker {
		return
	}

	s.interaction.Begin(markerID)
	s.applyDrag(x, y)
}

func (s *session) handleMouseMove(x, y int32) {
	if !s.interaction.Dragging {
		return
	}
	s.applyDrag(x, y)
}

func (s *session) handleMouseUp(x, y int32) {
	if s.interaction.Dragging {
		s.applyDrag(x, y)
	}
	s.interaction.End()
	s.selectedMarker = mapper.NoActiveMarker
}

// handleFileDrop reads the dropped file and submits it for decoding. Read
// failures are logged; the session keeps its current texture.
func (s *session) handleFileDrop(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("failed to read dropped file %q: %v", path, err)
		return
	}
	s.LoadImage(filepath.Base(path), data)
}

// applyDrag converts the pointer's window position into image pixel space,
// feeds it to the mapper, and uploads the re-derived texture coordinate buffer.
// A drag before the image has valid bounds is absorbed as a no-op.
func (s *session) applyDrag(x, y int32) {
	if !s.interaction.Dragging {
		return
	}

	winW, winH := s.window.Width(), s.window.Height()
	if winW == 0 || winH == 0 {
		return
	}
	imgW, imgH := s.textures.ImageSize()

	imageX := float32(x) / float32(winW) * float32(imgW)
	imageY := float32(y) / float32(winH) * float32(imgH)

	texCoords, err := s.coordMapper.OnMarkerDrag(s.interaction.ActiveMarker, imageX, imageY, imgW, imgH)
	if err != nil {
		if errors.Is(err, mapper.ErrInvalidImageBounds) {
			return
		}
		log.Printf("marker drag rejected: %v", err)
		return
	}

	if err := s.mesh.UpdateTexCoords(texCoords); err != nil {
		log.Printf("texture coordinate update rejected: %v", err)
		return
	}
	s.renderer.WriteTexCoordBuffer(s.provider, s.mesh.TexCoordBytes())
	s.dirty = true

	if s.profilingEnabled && s.profiler != nil {
		s.profiler.RecordDrag()
	}
}

// pushTexCoords uploads the mapper's current texture coordinate buffer to the
// GPU and requests a redraw. Used after Reset, where no drag event fired.
func (s *session) pushTexCoords() {
	texCoords := s.coordMapper.TexCoords()
	if err := s.mesh.UpdateTexCoords(texCoords); err != nil {
		log.Printf("texture coordinate update rejected: %v", err)
		return
	}
	s.renderer.WriteTexCoordBuffer(s.provider, s.mesh.TexCoordBytes())
	s.dirty = true
}

// hitTestMarker returns the ID of the marker nearest the pointer within the
// pick radius, or NoActiveMarker when nothing is close enough. Marker fractions
// map onto the window client area for display, so the test runs in window pixels.
func (s *session) hitTestMarker(x, y int32) int {
	winW := float32(s.window.Width())
	winH := float32(s.window.Height())

	best := mapper.NoActiveMarker
	bestDist := markerHitRadius

	for _, m := range s.coordMapper.Markers() {
		dx := m.FractionX*winW - float32(x)
		dy := m.FractionY*winH - float32(y)
		dist := math32.Hypot(dx, dy)
		if dist <= bestDist {
			best = m.ID
			bestDist = dist
		}
	}
	return best
}
