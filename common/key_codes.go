package common

// Virtual key codes for the keys the demo reacts to. Values match the GLFW
// key tokens delivered by the window's key callbacks.
const (
	Key1 uint32 = 49
	Key2 uint32 = 50
	Key3 uint32 = 51
	Key4 uint32 = 52
	Key5 uint32 = 53
	Key6 uint32 = 54
	Key7 uint32 = 55

	KeyR uint32 = 82
)
