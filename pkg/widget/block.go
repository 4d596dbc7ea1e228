// Package widget provides a minimal leaf widget for spatial panels. Block is
// an invisible interactive region: it participates in layout and hit testing
// and fires hover and press callbacks, but draws nothing. Rendering engines
// build their own drawable leaves on the same layout.Node capability.
package widget

import (
	"github.com/go-spatialui/spatialui/pkg/geometry"
	"github.com/go-spatialui/spatialui/pkg/input"
	"github.com/go-spatialui/spatialui/pkg/layout"
	"github.com/go-spatialui/spatialui/pkg/scene"
)

// Block is a rectangular leaf node with hover and press callbacks.
type Block struct {
	group    *scene.Group
	style    layout.Style
	computed layout.ComputedDimensions
	hovered  bool
	pressed  bool

	// OnHoverEnter fires when the ray first enters the block.
	OnHoverEnter func()
	// OnHoverExit fires when the ray leaves the block, including forced exits.
	OnHoverExit func()
	// OnPress fires once per press: on the unpressed-to-pressed transition
	// while the block is hovered. Release or ray exit rearms it.
	OnPress func()
}

// NewBlock returns a block with the given layout style.
func NewBlock(style layout.Style) *Block {
	return &Block{
		group: scene.NewGroup(),
		style: style,
	}
}

// GroupNode returns the block's transform handle.
func (b *Block) GroupNode() *scene.Group {
	return b.group
}

// NodeStyle returns the block's layout hints.
func (b *Block) NodeStyle() *layout.Style {
	return &b.style
}

// Computed returns the block's resolved dimensions.
func (b *Block) Computed() *layout.ComputedDimensions {
	return &b.computed
}

// SetVisible toggles the block's visibility.
func (b *Block) SetVisible(visible bool) {
	b.group.SetVisible(visible)
}

// Refresh resolves the block's dimensions from the available space.
func (b *Block) Refresh(maxWidth, maxHeight float64) {
	b.computed.Width = b.style.WidthFraction() * maxWidth
	b.computed.Height = b.style.HeightFraction() * maxHeight
	b.computed.HalfWidth = b.computed.Width / 2
	b.computed.Margin = b.style.Margin
	b.computed.Padding = b.style.Padding
}

// Intersect hit-tests the block against the ray and advances its hover/press
// state machine.
func (b *Block) Intersect(ray geometry.Ray, state *input.State) bool {
	if !b.group.EffectiveVisible() {
		return false
	}
	if !ray.HitRect(b.group.WorldMatrix(), b.computed.Width, b.computed.Height) {
		b.ForceExit()
		return false
	}
	if !b.hovered {
		b.hovered = true
		if b.OnHoverEnter != nil {
			b.OnHoverEnter()
		}
	}
	if state.Pressed {
		if !b.pressed {
			b.pressed = true
			if b.OnPress != nil {
				b.OnPress()
			}
		}
	} else {
		b.pressed = false
	}
	return true
}

// ForceExit clears the block's hover and press state, firing the hover-exit
// callback if the block was hovered.
func (b *Block) ForceExit() {
	if b.hovered {
		b.hovered = false
		if b.OnHoverExit != nil {
			b.OnHoverExit()
		}
	}
	b.pressed = false
}

// Hovered reports whether the ray was over the block on the most recent
// Intersect.
func (b *Block) Hovered() bool {
	return b.hovered
}

// Pressed reports whether the block is currently in the pressed state.
func (b *Block) Pressed() bool {
	return b.pressed
}
