package common

import (
	"github.com/chewxy/math32"
)

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order (OpenGL/WebGPU convention).
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// Perspective creates a perspective projection matrix.
// Uses the WebGPU clip space convention with depth in [0, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / math32.Tan(fovY/2.0)
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
}

// rotationX writes a column-major rotation about the X axis into m.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
//   - angle: rotation angle in radians
func rotationX(m []float32, angle float32) {
	Identity(m)
	c, s := math32.Cos(angle), math32.Sin(angle)
	m[5], m[6] = c, s
	m[9], m[10] = -s, c
}

// rotationY writes a column-major rotation about the Y axis into m.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
//   - angle: rotation angle in radians
func rotationY(m []float32, angle float32) {
	Identity(m)
	c, s := math32.Cos(angle), math32.Sin(angle)
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
}

// rotationZ writes a column-major rotation about the Z axis into m.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
//   - angle: rotation angle in radians
func rotationZ(m []float32, angle float32) {
	Identity(m)
	c, s := math32.Cos(angle), math32.Sin(angle)
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
}

// BuildModelMatrix constructs a 4x4 model matrix from position and Euler rotation.
// The rotation order is Y * X * Z (yaw-pitch-roll). The matrix is column-major.
// There is no scale term — the demo cube is never scaled.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - posX, posY, posZ: translation in world space
//   - rotX, rotY, rotZ: rotation angles in radians around each axis
func BuildModelMatrix(out []float32, posX, posY, posZ, rotX, rotY, rotZ float32) {
	var rx, ry, rz, pitchRoll [16]float32
	rotationX(rx[:], rotX)
	rotationY(ry[:], rotY)
	rotationZ(rz[:], rotZ)

	// R = Ry * Rx * Rz
	Mul4(pitchRoll[:], rx[:], rz[:])
	Mul4(out, ry[:], pitchRoll[:])

	out[12] = posX
	out[13] = posY
	out[14] = posZ
	out[15] = 1
}

// Clamp limits v to the inclusive range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: the lower bound of the range
//   - hi: the upper bound of the range
//
// Returns:
//   - float32: v limited to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	return math32.Min(math32.Max(v, lo), hi)
}
