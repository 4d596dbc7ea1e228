package layout

// PlacementStrategy computes child placement and capacity for a container.
// Implementations must be stateless so a single strategy value can be shared
// by every container (and clone) using it.
type PlacementStrategy interface {
	// Place recomputes each child's dimensions and transform offset from the
	// container's resolved dimensions. Called by Container.Refresh after the
	// container's own dimensions are resolved.
	Place(c *Container, maxWidth, maxHeight float64)
	// Full reports whether the container has no capacity left along the
	// strategy's layout axis.
	Full(c *Container) bool
}

// VerticalStrategy places children along the vertical axis. Children declare
// Align (top or bottom) for stacking and Position (left, right, center) for
// the independent horizontal pass.
type VerticalStrategy struct{}

// Place stacks children top-down and bottom-up using two running offsets
// seeded from the container's padding. Each child is refreshed with the
// padding-reduced available space, so padding affects all descendants
// uniformly while each sibling's margin stays private to itself.
func (VerticalStrategy) Place(c *Container, maxWidth, maxHeight float64) {
	dims := c.Computed()
	innerWidth := dims.Width - 2*dims.Padding
	innerHeight := dims.Height - 2*dims.Padding

	top := dims.Padding
	bottom := dims.Padding
	for _, child := range c.Children() {
		child.Refresh(innerWidth, innerHeight)
		style := child.NodeStyle()
		cd := child.Computed()

		var y float64
		switch style.Align {
		case AlignBottom:
			bottom += cd.Margin
			y = -(dims.Height - bottom - cd.Height)
			bottom += cd.Height + cd.Margin
		case AlignCenter:
			logger.Warn("align center is not supported on the vertical axis, stacking from top")
			fallthrough
		default: // AlignTop
			top += cd.Margin
			y = -top
			top += cd.Height + cd.Margin
		}

		var x float64
		switch style.Position {
		case PositionRight:
			x = dims.Width - cd.Width
		case PositionCenter:
			x = (dims.Width - cd.Width) / 2
		}

		child.GroupNode().SetPosition(x, y, 0)
	}
}

// Full reports whether the cumulative declared height of the direct children
// has consumed the container's full capacity. The comparison is against the
// normalized style heights summing to 1.0 and deliberately ignores padding
// already consumed; callers relying on fullness for pagination get the
// historical threshold, not a padding-aware one.
func (VerticalStrategy) Full(c *Container) bool {
	total := 0.0
	for _, child := range c.Children() {
		total += child.NodeStyle().HeightFraction()
	}
	return total >= 1
}
