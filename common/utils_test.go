package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceToBytes(t *testing.T) {
	data := []float32{1, 2, 3}
	b := SliceToBytes(data)

	assert.Len(t, b, 12)

	// The byte slice is a view, not a copy.
	data[0] = 4
	assert.Equal(t, SliceToBytes([]float32{4, 2, 3}), b)
}

func TestSliceToBytes_EmptyIsNil(t *testing.T) {
	assert.Nil(t, SliceToBytes([]float32{}))
	assert.Nil(t, SliceToBytes[uint16](nil))
}

func TestStructToBytes(t *testing.T) {
	type transforms struct {
		Model      [16]float32
		Projection [16]float32
	}
	v := transforms{}
	v.Model[0] = 1

	b := StructToBytes(&v)
	assert.Len(t, b, 128)

	// The byte slice is a view over the struct's memory, so later writes to the
	// struct are visible through it.
	v.Projection[15] = 2
	expected := make([]float32, 32)
	expected[0] = 1
	expected[31] = 2
	assert.Equal(t, SliceToBytes(expected), b)
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 5, Coalesce(0, 5, 7))
	assert.Equal(t, "a", Coalesce("", "a"))
	assert.Equal(t, 0, Coalesce(0, 0))
}
