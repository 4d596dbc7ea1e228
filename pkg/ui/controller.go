package ui

import (
	"fmt"

	"github.com/go-spatialui/spatialui/pkg/errors"
	"github.com/go-spatialui/spatialui/pkg/geometry"
	"github.com/go-spatialui/spatialui/pkg/input"
	"github.com/go-spatialui/spatialui/pkg/layout"
	"github.com/go-spatialui/spatialui/pkg/scene"
)

// ModeType selects how Add dispatches elements into the page tree.
type ModeType int

const (
	// ModeAutomaticAdding appends elements to the newest page, cloning a new
	// page from the template whenever the target container is full.
	ModeAutomaticAdding ModeType = iota
)

// String returns a human-readable representation of the mode type.
func (m ModeType) String() string {
	switch m {
	case ModeAutomaticAdding:
		return "automatic_adding"
	default:
		return fmt.Sprintf("ModeType(%d)", int(m))
	}
}

// Mode configures element dispatch. Template is the container cloned for
// every automatically created page; NewPageLayout is accepted as a fallback
// name for the same thing and is used when Template is nil.
type Mode struct {
	Type          ModeType
	Template      *layout.Container
	NewPageLayout *layout.Container
}

// Config holds the controller's construction options. Width and Height are
// the default page dimensions in world units and must be strictly positive.
type Config struct {
	Width  float64
	Height float64
	Mode   Mode
}

// Controller owns a spatial UI surface: its pages, the active input source,
// and the per-frame ray dispatch. Create one per logical UI surface and drive
// it from a single frame loop.
type Controller struct {
	width  float64
	height float64
	mode   Mode

	root    *scene.Group
	pages   []*Page
	current int

	enabled       bool
	source        input.Source
	state         input.State
	pressOverride bool
	hit           bool

	camera        geometry.Camera
	surface       input.Surface
	registrations []input.Registration
	device        input.TrackedDevice
}

// NewController builds a controller from cfg. A non-nil root becomes page 0,
// current and visible. Missing or non-positive dimensions are a construction
// error.
func NewController(cfg Config, root *layout.Container) (*Controller, error) {
	const op = "ui.NewController"
	if cfg.Width <= 0 {
		return nil, errors.Newf(op, errors.KindConstruction,
			"width must be strictly positive, got %g", cfg.Width)
	}
	if cfg.Height <= 0 {
		return nil, errors.Newf(op, errors.KindConstruction,
			"height must be strictly positive, got %g", cfg.Height)
	}

	c := &Controller{
		width:   cfg.Width,
		height:  cfg.Height,
		mode:    cfg.Mode,
		root:    scene.NewGroup(),
		enabled: true,
		source:  input.SourceTrackedDevice,
	}
	if root != nil {
		if err := c.AddPage(root); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Dimensions returns the controller's default page width and height.
func (c *Controller) Dimensions() (width, height float64) {
	return c.width, c.height
}

// SetEnabled toggles the controller. While disabled, Update is a no-op.
func (c *Controller) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// Source returns the active input source.
func (c *Controller) Source() input.Source {
	return c.source
}

// Hit reports whether the most recent Update's ray hit the current page.
func (c *Controller) Hit() bool {
	return c.hit
}

// Pages returns the controller's pages in insertion order. The returned slice
// is the live backing store and must not be mutated by callers.
func (c *Controller) Pages() []*Page {
	return c.pages
}

// CurrentPage returns the visible page, or nil when no page exists.
func (c *Controller) CurrentPage() *Page {
	if len(c.pages) == 0 {
		return nil
	}
	return c.pages[c.current]
}

// AddToScene attaches the controller's transform root under a scene
// container.
func (c *Controller) AddToScene(parent scene.ContainerNode) error {
	if parent == nil {
		return errors.Newf("ui.AddToScene", errors.KindInvalidElement,
			"argument does not satisfy the scene container capability")
	}
	parent.Attach(c.root)
	return nil
}

// GroupNode returns the controller's transform root, under which every page
// is parented.
func (c *Controller) GroupNode() *scene.Group {
	return c.root
}

// AddPage appends a page built from the given root container. Dimensions may
// be supplied as an optional (width, height) pair and default to the
// controller's own. The first page added becomes current and visible; every
// subsequent page starts hidden. The page is refreshed once so its geometry
// is valid immediately.
func (c *Controller) AddPage(container *layout.Container, dims ...float64) error {
	const op = "ui.AddPage"
	if container == nil {
		return errors.Newf(op, errors.KindInvalidElement,
			"argument does not satisfy the container capability")
	}
	width, height := c.width, c.height
	switch len(dims) {
	case 0:
	case 2:
		width, height = dims[0], dims[1]
	default:
		return errors.Newf(op, errors.KindConstruction,
			"dimensions must be a (width, height) pair, got %d values", len(dims))
	}
	if width <= 0 || height <= 0 {
		return errors.Newf(op, errors.KindConstruction,
			"page dimensions must be strictly positive, got %gx%g", width, height)
	}

	page := newPage(container, width, height)
	c.root.Add(container.GroupNode())
	page.Refresh()

	if len(c.pages) == 0 {
		page.setVisible(true)
		c.current = 0
	} else {
		page.setVisible(false)
	}
	c.pages = append(c.pages, page)
	return nil
}

// Add dispatches an element into the page tree according to the configured
// mode. Under automatic adding the element lands in the newest page, spilling
// into a freshly cloned page when the target container is full. An optional
// layout id narrows the insertion target to a specific container within the
// page. An unrecognized mode logs a warning and mutates nothing.
func (c *Controller) Add(element layout.Node, layoutID ...string) error {
	const op = "ui.Add"
	if element == nil {
		return errors.Newf(op, errors.KindInvalidElement,
			"element does not satisfy the node capability")
	}
	id := ""
	if len(layoutID) > 0 {
		id = layoutID[0]
	}

	switch c.mode.Type {
	case ModeAutomaticAdding:
		return c.addWithExpansion(element, id)
	default:
		logger.Warn("unrecognized controller mode, element skipped",
			"mode", c.mode.Type)
		return nil
	}
}

// template returns the page template, preferring Template over the
// NewPageLayout fallback.
func (c *Controller) template() *layout.Container {
	if c.mode.Template != nil {
		return c.mode.Template
	}
	return c.mode.NewPageLayout
}

// addWithExpansion implements the automatic-adding policy. The insertion
// target is resolved against the newest page; with a single page that is the
// current page, and once a spill page exists subsequent adds keep
// accumulating into it instead of minting a page per element.
func (c *Controller) addWithExpansion(element layout.Node, id string) error {
	const op = "ui.Add"
	tmpl := c.template()
	if tmpl == nil {
		return errors.Newf(op, errors.KindConstruction,
			"automatic adding requires a template container")
	}

	if len(c.pages) == 0 {
		if err := c.AddPage(tmpl.Clone()); err != nil {
			return err
		}
	}

	page := c.pages[len(c.pages)-1]
	target := page.Root()
	if id != "" {
		target = target.FindByID(id)
		if target == nil {
			logger.Warn("layout id not found in page, element skipped",
				"layout_id", id, "page", page.ID())
			return nil
		}
	}

	if target.Full() {
		fresh := tmpl.Clone()
		if err := c.AddPage(fresh); err != nil {
			return err
		}
		if id != "" {
			target = fresh.FindByID(id)
			if target == nil {
				logger.Warn("layout id not found in expanded page, element skipped",
					"layout_id", id)
				return nil
			}
		} else {
			target = fresh
		}
	}

	return target.Add(element)
}

// NextPage makes the next page current, wrapping past the last page. The
// outgoing page is hidden and the incoming page shown as a pair.
func (c *Controller) NextPage() {
	c.switchPage(1)
}

// PrevPage makes the previous page current, wrapping past the first page.
func (c *Controller) PrevPage() {
	c.switchPage(-1)
}

func (c *Controller) switchPage(delta int) {
	n := len(c.pages)
	if n == 0 {
		return
	}
	c.pages[c.current].setVisible(false)
	c.current = (c.current + delta + n) % n
	c.pages[c.current].setVisible(true)
}

// Refresh re-resolves every page's layout from its assigned dimensions. Call
// after tree mutation; Add does not re-lay out on its own.
func (c *Controller) Refresh() {
	for _, page := range c.pages {
		page.Refresh()
	}
}

// EnableMouse switches to the pointer-projection source: pointer listeners
// are registered on the surface and Update projects a ray through the camera
// from the latest pointer coordinates.
func (c *Controller) EnableMouse(camera geometry.Camera, surface input.Surface) error {
	const op = "ui.EnableMouse"
	if camera == nil {
		return errors.Newf(op, errors.KindConstruction, "camera is required")
	}
	if surface == nil {
		return errors.Newf(op, errors.KindConstruction, "render surface is required")
	}

	c.DisableMouse()
	c.camera = camera
	c.surface = surface
	c.registrations = append(c.registrations, surface.AddPointerListener(c.handlePointer))
	c.source = input.SourcePointer
	return nil
}

// DisableMouse deterministically releases every pointer listener and reverts
// to the tracked-device source. No listener fires afterwards.
func (c *Controller) DisableMouse() {
	for _, reg := range c.registrations {
		reg.Remove()
	}
	c.registrations = nil
	c.camera = nil
	c.surface = nil
	c.state.Reset()
	c.source = input.SourceTrackedDevice
}

// AddInput binds the tracked pointing device used by the tracked-device
// source.
func (c *Controller) AddInput(device input.TrackedDevice) error {
	if device == nil {
		return errors.Newf("ui.AddInput", errors.KindInvalidElement,
			"argument does not satisfy the tracked device capability")
	}
	c.device = device
	return nil
}

// SetPressed sets the explicit press override, OR-ed with the tracked
// device's own press state.
func (c *Controller) SetPressed(pressed bool) {
	c.pressOverride = pressed
}

// Update runs one frame of input dispatch: build a ray from the active
// source, then hit-test it against the current page. No-op while the
// controller is disabled, and before a source has anything to project from.
func (c *Controller) Update() {
	if !c.enabled {
		return
	}
	switch c.source {
	case input.SourcePointer:
		if c.camera == nil || !c.state.HasCoords {
			return
		}
		ray := c.camera.RayThrough(c.state.CoordsX, c.state.CoordsY)
		c.dispatch(ray)
	case input.SourceTrackedDevice:
		if c.device == nil {
			return
		}
		// Position and rotation are read fresh every frame; the device moves
		// continuously.
		c.state.Pressed = c.device.Pressed() || c.pressOverride
		ray := geometry.FromTransform(c.device.WorldPosition(), c.device.WorldRotation())
		c.dispatch(ray)
	}
}

// handlePointer is the listener registered on the render surface. It only
// writes the bounded input record; the next Update reads it back, so the
// latest event before a frame wins.
func (c *Controller) handlePointer(ev input.PointerEvent) {
	switch ev.Kind {
	case input.PointerMove:
		if c.surface != nil {
			c.state.SetCoords(input.NormalizedCoords(c.surface, ev.X, ev.Y))
		}
	case input.PointerDown:
		c.state.Pressed = true
	case input.PointerUp:
		c.state.Pressed = false
	}
}

func (c *Controller) dispatch(ray geometry.Ray) {
	page := c.CurrentPage()
	if page == nil {
		c.hit = false
		return
	}
	frame := c.state
	frame.Pressed = frame.Pressed || c.pressOverride
	c.hit = page.Root().Intersect(ray, &frame)
}
