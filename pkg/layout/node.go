package layout

import (
	"fmt"

	"github.com/go-spatialui/spatialui/pkg/geometry"
	"github.com/go-spatialui/spatialui/pkg/input"
	"github.com/go-spatialui/spatialui/pkg/scene"
)

// Align controls placement along a container's layout axis.
type Align int

const (
	// AlignTop stacks the child downward from the container's top edge.
	AlignTop Align = iota
	// AlignBottom stacks the child upward from the container's bottom edge.
	AlignBottom
	// AlignCenter is accepted but not implemented by the vertical strategy;
	// it surfaces a warning and falls back to top stacking.
	AlignCenter
)

// String returns a human-readable representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	case AlignCenter:
		return "center"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// Position controls placement across a container's layout axis.
type Position int

const (
	// PositionLeft leaves the child at the container's left edge.
	PositionLeft Position = iota
	// PositionRight pushes the child against the container's right edge.
	PositionRight
	// PositionCenter centers the child horizontally.
	PositionCenter
)

// String returns a human-readable representation of the position.
func (p Position) String() string {
	switch p {
	case PositionLeft:
		return "left"
	case PositionRight:
		return "right"
	case PositionCenter:
		return "center"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// Style holds a node's declarative layout hints. Width and Height are
// fractions of the parent's available space; zero means "fill" (treated as 1).
// Margin and Padding are in world units. Margin is private to the node;
// Padding shrinks the space handed to all of the node's children.
type Style struct {
	Width    float64
	Height   float64
	Align    Align
	Position Position
	Margin   float64
	Padding  float64
}

// WidthFraction returns the declared width fraction, defaulting to 1.
func (s *Style) WidthFraction() float64 {
	if s.Width <= 0 {
		return 1
	}
	return s.Width
}

// HeightFraction returns the declared height fraction, defaulting to 1.
func (s *Style) HeightFraction() float64 {
	if s.Height <= 0 {
		return 1
	}
	return s.Height
}

// ComputedDimensions holds a node's resolved geometry in world units, written
// by Refresh.
type ComputedDimensions struct {
	Width     float64
	Height    float64
	HalfWidth float64
	Margin    float64
	Padding   float64
}

// Node is the capability every member of a layout tree exposes. Containers
// satisfy it, and so does any externally built leaf widget that wants to
// participate in layout and hit testing.
type Node interface {
	// GroupNode returns the node's transform handle. The layout core only
	// translates it; it never rotates or scales.
	GroupNode() *scene.Group
	// NodeStyle returns the node's declarative layout hints.
	NodeStyle() *Style
	// Computed returns the node's resolved dimensions, writable by the core.
	Computed() *ComputedDimensions
	// SetVisible toggles the node's visibility.
	SetVisible(visible bool)
	// Refresh recomputes the node's dimensions (and, for containers, its
	// children's placement) from the given available space.
	Refresh(maxWidth, maxHeight float64)
	// Intersect hit-tests the node against a world-space ray, firing hover
	// and press callbacks as state changes. It reports whether the node
	// consumed the ray.
	Intersect(ray geometry.Ray, state *input.State) bool
	// ForceExit clears hover and press state on the node and all of its
	// descendants.
	ForceExit()
}
