package scene

// ContainerNode is the capability a value needs to host a UI panel: anything
// that can take ownership of a transform group. Scene and Group both satisfy
// it, and embedders wrapping a rendering engine's scene graph implement it to
// bridge panels into their own hierarchy.
type ContainerNode interface {
	Attach(child *Group)
}

// Scene is a root-level container for transform trees. It is the default
// ContainerNode for applications that do not bring their own scene graph.
type Scene struct {
	root *Group
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{root: NewGroup()}
}

// Attach parents child under the scene root.
func (s *Scene) Attach(child *Group) {
	s.root.Add(child)
}

// Root returns the scene's root group.
func (s *Scene) Root() *Group {
	return s.root
}
