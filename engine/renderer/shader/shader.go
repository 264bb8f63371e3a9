package shader

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderType identifies which render pipeline stage a shader implements.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, used for vertex processing in render pipelines.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used for fragment processing in pair with a vertex shader.
	ShaderTypeFragment
)

// UnresolvedLocation is the sentinel returned when a named attribute or uniform
// does not exist in the shader source. Platforms are free to optimize unused
// names away, so callers must treat this value as "absent", never dereference it.
const UnresolvedLocation = -1

// shader is the implementation of the Shader interface.
// It holds the parsed metadata required for pipeline creation and resource binding.
type shader struct {
	key                        string
	source                     string
	shaderType                 ShaderType
	entryPoint                 string
	bindGroupLayoutDescriptors map[int]wgpu.BindGroupLayoutDescriptor
	bindingVarNames            map[int]map[int]string
	vertexLayouts              []wgpu.VertexBufferLayout
	attributeLocations         map[string]int
	module                     *wgpu.ShaderModuleDescriptor
}

// Shader defines the interface for a loaded and parsed WGSL shader. It exposes the shader's
// unique key, source code, entry point, bind group layout descriptors, vertex buffer layouts,
// and name-based location lookups needed for pipeline creation and resource wiring.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for caching and lookups.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// ShaderType returns the type of the shader (vertex or fragment).
	//
	// Returns:
	//   - ShaderType: ShaderTypeVertex or ShaderTypeFragment
	ShaderType() ShaderType

	// EntryPoint returns the entry point name for this shader.
	//
	// Returns:
	//   - string: the entry point name (e.g. "vs_main")
	EntryPoint() string

	// Module returns the wgpu.ShaderModuleDescriptor for this shader, built during parsing.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the shader module descriptor containing the WGSL code and label
	Module() *wgpu.ShaderModuleDescriptor

	// BindGroupLayoutDescriptor retrieves the bind group layout descriptor for a specific group index.
	//
	// Parameters:
	//   - group: the bind group index
	//
	// Returns:
	//   - wgpu.BindGroupLayoutDescriptor: the layout descriptor for the group, or an empty descriptor if not present
	BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor

	// BindGroupLayoutDescriptors retrieves all parsed bind group layout descriptors.
	// These are the CPU-side descriptors extracted from the shader source which the
	// renderer uses to create the actual wgpu.BindGroupLayout GPU objects.
	//
	// Returns:
	//   - map[int]wgpu.BindGroupLayoutDescriptor: descriptors keyed by group index
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor

	// VertexLayouts retrieves the vertex buffer layouts parsed from the vertex input
	// struct. Each @location field occupies its own buffer slot, so attribute streams
	// (positions, texture coordinates) can be uploaded and rewritten independently.
	// Fragment shaders return nil.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: one layout per vertex attribute, ordered by buffer slot
	VertexLayouts() []wgpu.VertexBufferLayout

	// AttributeLocation resolves a vertex attribute's @location index by its field name.
	// A name the source does not declare yields UnresolvedLocation.
	//
	// Parameters:
	//   - name: the vertex input field name (e.g. "position", "tex_coord")
	//
	// Returns:
	//   - int: the attribute's shader location, or UnresolvedLocation if not declared
	AttributeLocation(name string) int

	// UniformBinding resolves a resource variable's (group, binding) pair by name.
	// A name the source does not declare yields (UnresolvedLocation, UnresolvedLocation).
	//
	// Parameters:
	//   - name: the resource variable name (e.g. "transforms", "cube_texture")
	//
	// Returns:
	//   - int: the bind group index, or UnresolvedLocation if not declared
	//   - int: the binding index within the group, or UnresolvedLocation if not declared
	UniformBinding(name string) (int, int)

	// BindGroupVarNames retrieves all resource variable names keyed by group and binding index.
	//
	// Returns:
	//   - map[int]map[int]string: variable names keyed by group and binding index
	BindGroupVarNames() map[int]map[int]string
}

var _ Shader = &shader{}

// NewShader creates a new Shader by parsing the provided WGSL source.
// The entry point, vertex buffer layouts, bind group layout descriptors, and
// name-to-location tables are all extracted from the source during construction.
//
// Parameters:
//   - key: a unique identifier for the shader, used for caching and labels
//   - shaderType: the type of shader (vertex or fragment), used for validation and pipeline setup
//   - source: the WGSL source code
//
// Returns:
//   - Shader: a new Shader instance with the parsed configuration
func NewShader(key string, shaderType ShaderType, source string) Shader {
	if source == "" {
		panic(fmt.Sprintf("shader: %s must have non-empty WGSL source", key))
	}
	s := &shader{
		key:        key,
		source:     source,
		shaderType: shaderType,
	}
	s.parseSource()
	return s
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}

func (s *shader) BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors[group]
}

func (s *shader) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors
}

func (s *shader) VertexLayouts() []wgpu.VertexBufferLayout {
	return s.vertexLayouts
}

func (s *shader) AttributeLocation(name string) int {
	if loc, ok := s.attributeLocations[name]; ok {
		return loc
	}
	return UnresolvedLocation
}

func (s *shader) UniformBinding(name string) (int, int) {
	for group, bindings := range s.bindingVarNames {
		for binding, varName := range bindings {
			if varName == name {
				return group, binding
			}
		}
	}
	return UnresolvedLocation, UnresolvedLocation
}

func (s *shader) BindGroupVarNames() map[int]map[int]string {
	return s.bindingVarNames
}

// parseSource builds the shader module descriptor, parses the entry point name,
// and extracts layout metadata appropriate for the shader type. Vertex shaders
// get per-attribute vertex buffer layouts parsed. Both shader types get bind
// group layout descriptors and variable name tables parsed.
func (s *shader) parseSource() {
	s.module = &wgpu.ShaderModuleDescriptor{
		Label: s.key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: s.source,
		},
	}
	s.entryPoint = parseEntryPoint(s.source, s.shaderType)
	if s.shaderType == ShaderTypeVertex {
		s.vertexLayouts, s.attributeLocations = parseVertexLayouts(s.source)
	}

	var visibility wgpu.ShaderStage
	switch s.shaderType {
	case ShaderTypeVertex:
		visibility = wgpu.ShaderStageVertex
	case ShaderTypeFragment:
		visibility = wgpu.ShaderStageFragment
	default:
		visibility = wgpu.ShaderStageNone
	}
	s.bindGroupLayoutDescriptors, s.bindingVarNames = parseBindGroupLayouts(s.source, visibility)
}
