package mapper

import "texcube/common"

// MapperBuilderOption is a functional option for configuring a Mapper via NewMapper.
type MapperBuilderOption func(*mapper)

// WithMarkerFractions is an option builder that positions a single marker at the
// given image-space fractions, clamped to [0, 1]. Out-of-range marker IDs are ignored.
//
// Parameters:
//   - id: the marker slot index
//   - fractionX: the horizontal position relative to the image width
//   - fractionY: the vertical position relative to the image height
//
// Returns:
//   - MapperBuilderOption: a function that applies the marker position to a mapper
func WithMarkerFractions(id int, fractionX, fractionY float32) MapperBuilderOption {
	return func(m *mapper) {
		if id < 0 || id >= MarkerCount {
			return
		}
		m.markers[id].FractionX = common.Clamp(fractionX, 0, 1)
		m.markers[id].FractionY = common.Clamp(fractionY, 0, 1)
	}
}
