// Package layout provides the container and box-layout abstraction for panel
// UIs positioned in a 3D scene.
//
// A tree of containers and leaf widgets is described declaratively through
// each node's Style (fractional width/height, alignment, position, margin,
// padding). Refresh resolves the tree top-down into concrete dimensions and
// transform offsets in panel space; the parent must always refresh before its
// children because a child's available space depends on the parent's resolved
// dimensions.
//
// # Coordinate Convention
//
// A container's local origin is its top-left corner: +X grows rightward and
// children stack downward along -Y. Panels face +Z.
//
// # Placement Strategies
//
// Container delegates child placement and capacity to a PlacementStrategy.
// VerticalStrategy stacks children along the vertical axis; additional
// strategies (horizontal, grid) plug in without changing Container.
//
// # Hit Testing
//
// Intersect walks the tree with a world-space ray. A container whose
// background is hit always consumes the ray, even when no child is hit, so
// opaque panels occlude whatever is behind them. When the ray leaves a
// container, ForceExit clears hover and press state on the whole subtree so
// no stale state survives a fast ray movement.
package layout
