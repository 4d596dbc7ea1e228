package layout

import (
	"github.com/go-spatialui/spatialui/pkg/errors"
	"github.com/go-spatialui/spatialui/pkg/geometry"
	"github.com/go-spatialui/spatialui/pkg/input"
	"github.com/go-spatialui/spatialui/pkg/scene"
)

// Container is a Node that owns an ordered sequence of child nodes and
// computes their placement through a PlacementStrategy. Insertion order is
// layout order.
type Container struct {
	group    *scene.Group
	style    Style
	computed ComputedDimensions
	strategy PlacementStrategy
	layoutID string
	children []Node
	hovered  bool

	// OnHoverEnter fires when the ray first hits the container background.
	OnHoverEnter func()
	// OnHoverExit fires when the ray leaves the container background.
	OnHoverExit func()
}

// NewContainer returns an empty container using the given placement strategy.
// A nil strategy defaults to vertical placement.
func NewContainer(strategy PlacementStrategy) *Container {
	if strategy == nil {
		strategy = VerticalStrategy{}
	}
	return &Container{
		group:    scene.NewGroup(),
		strategy: strategy,
	}
}

// GroupNode returns the container's transform handle.
func (c *Container) GroupNode() *scene.Group {
	return c.group
}

// NodeStyle returns the container's layout hints for reading or mutation.
// Mutations take effect on the next Refresh.
func (c *Container) NodeStyle() *Style {
	return &c.style
}

// Computed returns the container's resolved dimensions.
func (c *Container) Computed() *ComputedDimensions {
	return &c.computed
}

// SetVisible toggles the container subtree's visibility.
func (c *Container) SetVisible(visible bool) {
	c.group.SetVisible(visible)
}

// LayoutID returns the container's free-form lookup id.
func (c *Container) LayoutID() string {
	return c.layoutID
}

// SetLayoutID assigns the container's lookup id used by FindByID.
func (c *Container) SetLayoutID(id string) {
	c.layoutID = id
}

// Strategy returns the container's placement strategy.
func (c *Container) Strategy() PlacementStrategy {
	return c.strategy
}

// Children returns the container's children in layout order. The returned
// slice is the live backing store; Intersect iterates it without a defensive
// copy, so callers mutating the tree from hover or press callbacks do so at
// their own risk.
func (c *Container) Children() []Node {
	return c.children
}

// Add appends nodes to the container in call order and reparents each node's
// transform under the container's transform. A nil node fails the whole call
// with an invalid-element error before any mutation.
func (c *Container) Add(nodes ...Node) error {
	for _, n := range nodes {
		if n == nil {
			return errors.Newf("layout.Add", errors.KindInvalidElement,
				"element does not satisfy the node capability")
		}
	}
	for _, n := range nodes {
		c.children = append(c.children, n)
		c.group.Add(n.GroupNode())
	}
	return nil
}

// Refresh recomputes the container's own dimensions from the available space,
// then delegates child placement to the strategy. Safe on a container with no
// children, and idempotent: the same tree and available space always resolve
// to the same dimensions and offsets.
func (c *Container) Refresh(maxWidth, maxHeight float64) {
	c.computed.Width = c.style.WidthFraction() * maxWidth
	c.computed.Height = c.style.HeightFraction() * maxHeight
	c.computed.HalfWidth = c.computed.Width / 2
	c.computed.Margin = c.style.Margin
	c.computed.Padding = c.style.Padding
	c.strategy.Place(c, maxWidth, maxHeight)
}

// Full reports whether the container has run out of capacity along its layout
// axis. Strategy-specific and recomputed on every call: children may be
// removed externally at any time, so no cached counter can be trusted.
func (c *Container) Full() bool {
	return c.strategy.Full(c)
}

// Intersect hit-tests the container background and, on a hit, its children in
// layout order. A miss force-clears hover and press state on the whole
// subtree. A background hit always consumes the ray, even when no child is
// hit: opaque panel backgrounds block pass-through to whatever is behind.
func (c *Container) Intersect(ray geometry.Ray, state *input.State) bool {
	if !c.group.EffectiveVisible() {
		return false
	}
	if !ray.HitRect(c.group.WorldMatrix(), c.computed.Width, c.computed.Height) {
		c.ForceExit()
		return false
	}
	if !c.hovered {
		c.hovered = true
		if c.OnHoverEnter != nil {
			c.OnHoverEnter()
		}
	}
	for _, child := range c.children {
		if child.Intersect(ray, state) {
			break
		}
	}
	return true
}

// ForceExit clears hover state on the container and recursively on every
// descendant. Invoked whenever the ray leaves the container's bounds, so no
// stale hover survives a fast ray movement that skips the exit boundary.
func (c *Container) ForceExit() {
	if c.hovered {
		c.hovered = false
		if c.OnHoverExit != nil {
			c.OnHoverExit()
		}
	}
	for _, child := range c.children {
		child.ForceExit()
	}
}

// Hovered reports whether the ray was over the container background on the
// most recent Intersect.
func (c *Container) Hovered() bool {
	return c.hovered
}

// FindByID searches the container subtree breadth-first for a container whose
// layout id matches. Breadth-first order makes the nearest match win when ids
// repeat at different depths. Returns nil when no container matches.
func (c *Container) FindByID(id string) *Container {
	queue := []*Container{c}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur.layoutID == id {
			return cur
		}
		for _, child := range cur.children {
			if sub, ok := child.(*Container); ok {
				queue = append(queue, sub)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the container subtree: style, layout id, and
// strategy are copied, child containers are cloned recursively, and every
// clone gets a fresh transform. Leaf (non-container) children are not cloned;
// a template describes page shape, and leaf widgets are externally owned.
func (c *Container) Clone() *Container {
	clone := NewContainer(c.strategy)
	clone.style = c.style
	clone.layoutID = c.layoutID
	for _, child := range c.children {
		if sub, ok := child.(*Container); ok {
			// Add cannot fail here: a freshly cloned container is non-nil.
			_ = clone.Add(sub.Clone())
		}
	}
	return clone
}
