// Package scene provides the minimal transform tree the layout core positions
// widgets in. A Group is an opaque positionable handle: the layout packages
// only ever translate groups and toggle their visibility, they never rotate or
// scale them. Rotation exists on Group so embedders can orient whole panels in
// the 3D scene.
package scene

import "github.com/go-gl/mathgl/mgl64"

// Group is a node in the transform tree. Child transforms compose with
// ancestor transforms, so placing a widget's group under its container's group
// makes 3D placement follow the container automatically.
type Group struct {
	position mgl64.Vec3
	rotation mgl64.Quat
	visible  bool
	parent   *Group
	children []*Group
}

// NewGroup returns a visible group with an identity transform.
func NewGroup() *Group {
	return &Group{
		rotation: mgl64.QuatIdent(),
		visible:  true,
	}
}

// Add parents child under g, detaching it from any previous parent first.
// Adding nil or self is a no-op.
func (g *Group) Add(child *Group) {
	if child == nil || child == g {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = g
	g.children = append(g.children, child)
}

// Remove detaches child from g. Unrelated groups are left untouched.
func (g *Group) Remove(child *Group) {
	for i, c := range g.children {
		if c == child {
			g.children = append(g.children[:i], g.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Attach makes Group satisfy ContainerNode, so panels can be parented under
// any group in a scene, not only the root.
func (g *Group) Attach(child *Group) {
	g.Add(child)
}

// Parent returns the current parent group, or nil for a root.
func (g *Group) Parent() *Group {
	return g.parent
}

// Children returns the group's direct children in attach order. The returned
// slice is the live backing store and must not be mutated by callers.
func (g *Group) Children() []*Group {
	return g.children
}

// Position returns the group's local translation.
func (g *Group) Position() mgl64.Vec3 {
	return g.position
}

// SetPosition sets the group's local translation.
func (g *Group) SetPosition(x, y, z float64) {
	g.position = mgl64.Vec3{x, y, z}
}

// Rotation returns the group's local orientation.
func (g *Group) Rotation() mgl64.Quat {
	return g.rotation
}

// SetRotation sets the group's local orientation.
func (g *Group) SetRotation(q mgl64.Quat) {
	g.rotation = q
}

// Visible returns the group's own visibility flag, ignoring ancestors.
func (g *Group) Visible() bool {
	return g.visible
}

// SetVisible toggles the group's own visibility flag.
func (g *Group) SetVisible(v bool) {
	g.visible = v
}

// EffectiveVisible reports whether the group and all of its ancestors are
// visible. Hidden subtrees are skipped by hit testing.
func (g *Group) EffectiveVisible() bool {
	for n := g; n != nil; n = n.parent {
		if !n.visible {
			return false
		}
	}
	return true
}

// LocalMatrix returns the group's transform relative to its parent.
func (g *Group) LocalMatrix() mgl64.Mat4 {
	t := mgl64.Translate3D(g.position.X(), g.position.Y(), g.position.Z())
	return t.Mul4(g.rotation.Mat4())
}

// WorldMatrix returns the composed transform from the tree root down to this
// group. Computed fresh on every call; nothing is cached across frames.
func (g *Group) WorldMatrix() mgl64.Mat4 {
	m := g.LocalMatrix()
	for n := g.parent; n != nil; n = n.parent {
		m = n.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the group's origin in world space.
func (g *Group) WorldPosition() mgl64.Vec3 {
	return g.WorldMatrix().Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
}
