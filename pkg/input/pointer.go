package input

import "fmt"

// PointerKind identifies a pointer event type.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerDown
	PointerUp
)

// String returns a human-readable representation of the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	default:
		return fmt.Sprintf("PointerKind(%d)", int(k))
	}
}

// PointerEvent is a raw pointer event in surface pixel coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// Listener receives pointer events from a Surface.
type Listener func(PointerEvent)

// Registration is the handle returned when a listener is added to a Surface.
// Removing it deterministically stops the listener; Remove is idempotent.
type Registration interface {
	Remove()
}

// Surface is the capability the controller needs from a render surface:
// a pixel rectangle for coordinate normalization and pointer listener
// registration. Windowing layers implement this over their native event
// plumbing.
type Surface interface {
	// Bounds returns the surface rectangle in pixels as (x, y, width, height).
	Bounds() (x, y, w, h float64)
	// AddPointerListener registers fn for all pointer events until the
	// returned Registration is removed.
	AddPointerListener(fn Listener) Registration
}

// NormalizedCoords converts surface pixel coordinates into normalized device
// coordinates: x and y in [-1, 1] with +Y up and (0, 0) at the surface center.
func NormalizedCoords(s Surface, px, py float64) (ndcX, ndcY float64) {
	x, y, w, h := s.Bounds()
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	ndcX = (px-x)/w*2 - 1
	ndcY = -((py-y)/h*2 - 1)
	return ndcX, ndcY
}

// ListenerSet is a small registry Surface implementations can embed to get
// listener bookkeeping with deterministic removal. Multiple surfaces (and so
// multiple controllers) stay independent: each set owns only its own
// listeners.
type ListenerSet struct {
	nextID    int
	listeners map[int]Listener
}

type listenerRegistration struct {
	set *ListenerSet
	id  int
}

func (r *listenerRegistration) Remove() {
	delete(r.set.listeners, r.id)
}

// Add registers fn and returns its registration handle.
func (s *ListenerSet) Add(fn Listener) Registration {
	if s.listeners == nil {
		s.listeners = make(map[int]Listener)
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return &listenerRegistration{set: s, id: id}
}

// Len returns the number of registered listeners.
func (s *ListenerSet) Len() int {
	return len(s.listeners)
}

// Dispatch delivers ev to every registered listener.
func (s *ListenerSet) Dispatch(ev PointerEvent) {
	for _, fn := range s.listeners {
		fn(ev)
	}
}
