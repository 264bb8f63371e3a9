package bind_group_provider

// BufferWrite describes a single GPU buffer write operation targeting a specific
// (group, binding) pair on a BindGroupProvider at a given byte offset.
type BufferWrite struct {
	Provider BindGroupProvider
	Group    int
	Binding  int
	Offset   uint64
	Data     []byte
}
