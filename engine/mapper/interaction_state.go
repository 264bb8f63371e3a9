package mapper

// NoActiveMarker is the ActiveMarker value when no drag gesture is in progress.
const NoActiveMarker = -1

// InteractionState tracks the current drag gesture. It is a plain value owned by
// whoever drives the mapper, passed in explicitly rather than held as ambient
// global state.
type InteractionState struct {
	// ActiveMarker is the marker slot currently being dragged, or NoActiveMarker.
	ActiveMarker int
	// Dragging reports whether a pointer-down has occurred without a matching pointer-up.
	Dragging bool
}

// NewInteractionState returns an idle InteractionState with no active marker.
func NewInteractionState() InteractionState {
	return InteractionState{ActiveMarker: NoActiveMarker}
}

// Begin marks the given marker as actively dragged. Out-of-range IDs leave the
// state idle.
//
// Parameters:
//   - markerID: the marker slot the pointer went down on
func (s *InteractionState) Begin(markerID int) {
	if markerID < 0 || markerID >= MarkerCount {
		s.End()
		return
	}
	s.ActiveMarker = markerID
	s.Dragging = true
}

// End clears the drag gesture. Further pointer moves are ignored until the next Begin.
func (s *InteractionState) End() {
	s.ActiveMarker = NoActiveMarker
	s.Dragging = false
}
