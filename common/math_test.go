package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}

	Identity(m)

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			expected := float32(0)
			if col == row {
				expected = 1
			}
			assert.Equal(t, expected, m[col*4+row], "element (%d,%d)", row, col)
		}
	}
}

func TestMul4_IdentityIsNeutral(t *testing.T) {
	ident := make([]float32, 16)
	Identity(ident)

	a := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	out := make([]float32, 16)
	Mul4(out, ident, a)
	assert.Equal(t, a, out)

	Mul4(out, a, ident)
	assert.Equal(t, a, out)
}

func TestMul4_TranslationComposition(t *testing.T) {
	// Two translations compose additively.
	ta := make([]float32, 16)
	tb := make([]float32, 16)
	BuildModelMatrix(ta, 1, 2, 3, 0, 0, 0)
	BuildModelMatrix(tb, 10, 20, 30, 0, 0, 0)

	out := make([]float32, 16)
	Mul4(out, ta, tb)

	assert.InDelta(t, 11.0, out[12], 1e-6)
	assert.InDelta(t, 22.0, out[13], 1e-6)
	assert.InDelta(t, 33.0, out[14], 1e-6)
	assert.InDelta(t, 1.0, out[15], 1e-6)
}

func TestMul4_AliasedOutput(t *testing.T) {
	// Mul4 buffers internally, so out may alias an input.
	a := make([]float32, 16)
	BuildModelMatrix(a, 1, 0, 0, 0, 0, 0)
	b := make([]float32, 16)
	BuildModelMatrix(b, 2, 0, 0, 0, 0, 0)

	Mul4(a, a, b)
	assert.InDelta(t, 3.0, a[12], 1e-6)
}

func TestPerspective(t *testing.T) {
	out := make([]float32, 16)
	Perspective(out, math32.Pi/2, 2.0, 0.1, 100.0)

	f := 1.0 / math32.Tan(math32.Pi/4)
	assert.InDelta(t, float64(f/2.0), float64(out[0]), 1e-5)
	assert.InDelta(t, float64(f), float64(out[5]), 1e-5)

	// WebGPU clip space: depth maps to [0, 1] with -1 in the w column.
	assert.InDelta(t, 100.0/(0.1-100.0), float64(out[10]), 1e-5)
	assert.Equal(t, float32(-1.0), out[11])
	assert.InDelta(t, (0.1*100.0)/(0.1-100.0), float64(out[14]), 1e-4)
	assert.Equal(t, float32(0.0), out[15])
}

func TestBuildModelMatrix_TranslationOnly(t *testing.T) {
	out := make([]float32, 16)
	BuildModelMatrix(out, 1, 2, 3, 0, 0, 0)

	ident := make([]float32, 16)
	Identity(ident)

	// Rotation block equals identity when all angles are zero.
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			assert.InDelta(t, float64(ident[col*4+row]), float64(out[col*4+row]), 1e-6)
		}
	}
	assert.Equal(t, float32(1), out[12])
	assert.Equal(t, float32(2), out[13])
	assert.Equal(t, float32(3), out[14])
	assert.Equal(t, float32(1), out[15])
}

func TestBuildModelMatrix_YawQuarterTurn(t *testing.T) {
	out := make([]float32, 16)
	BuildModelMatrix(out, 0, 0, 0, 0, math32.Pi/2, 0)

	// A 90° yaw maps +X to -Z and +Z to +X (column-major columns are basis vectors).
	assert.InDelta(t, 0.0, float64(out[0]), 1e-6)
	assert.InDelta(t, -1.0, float64(out[2]), 1e-6)
	assert.InDelta(t, 1.0, float64(out[8]), 1e-6)
	assert.InDelta(t, 0.0, float64(out[10]), 1e-6)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0), Clamp(-5, 0, 1))
	assert.Equal(t, float32(1), Clamp(5, 0, 1))
	assert.Equal(t, float32(0.5), Clamp(0.5, 0, 1))
	assert.Equal(t, float32(0), Clamp(0, 0, 1))
	assert.Equal(t, float32(1), Clamp(1, 0, 1))
}
