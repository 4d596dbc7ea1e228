package input

// State is the bounded input record shared between event listeners and the
// per-frame update. Listeners overwrite it as events arrive and the frame
// reads it back synchronously, so the latest event before a frame wins; there
// is no queueing. It is also passed down the layout tree during intersection
// so widgets can read the press state.
type State struct {
	// Pressed reports whether the primary button or trigger is down.
	Pressed bool
	// CoordsX, CoordsY hold the latest pointer position in normalized device
	// coordinates. Only meaningful while HasCoords is true.
	CoordsX, CoordsY float64
	// HasCoords reports whether a pointer position has been received since the
	// pointer source was enabled.
	HasCoords bool
}

// SetCoords records a pointer position.
func (s *State) SetCoords(ndcX, ndcY float64) {
	s.CoordsX = ndcX
	s.CoordsY = ndcY
	s.HasCoords = true
}

// Reset clears the record, forgetting both coordinates and press state.
func (s *State) Reset() {
	*s = State{}
}
