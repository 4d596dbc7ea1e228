package ui

import (
	"github.com/google/uuid"

	"github.com/go-spatialui/spatialui/pkg/layout"
)

// Page is a root-level container representing one full panel's worth of UI.
// It carries the world-unit dimensions assigned at insertion and a generated
// identity distinct from layout lookup ids.
type Page struct {
	id     uuid.UUID
	root   *layout.Container
	width  float64
	height float64
}

func newPage(root *layout.Container, width, height float64) *Page {
	p := &Page{
		id:     uuid.New(),
		root:   root,
		width:  width,
		height: height,
	}
	// Top-left convention: the page transform shifts the root so the panel's
	// top-left corner sits at the panel-space origin.
	root.GroupNode().SetPosition(-width/2, height/2, 0)
	return p
}

// ID returns the page's generated identity.
func (p *Page) ID() uuid.UUID {
	return p.id
}

// Root returns the page's root container.
func (p *Page) Root() *layout.Container {
	return p.root
}

// Dimensions returns the page's width and height in world units.
func (p *Page) Dimensions() (width, height float64) {
	return p.width, p.height
}

// Visible reports whether the page is currently shown.
func (p *Page) Visible() bool {
	return p.root.GroupNode().Visible()
}

// Refresh re-resolves the page's layout from its assigned dimensions.
func (p *Page) Refresh() {
	p.root.Refresh(p.width, p.height)
}

func (p *Page) setVisible(v bool) {
	p.root.SetVisible(v)
}
