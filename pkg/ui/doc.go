// Package ui provides the controller that owns a spatial UI surface: its
// pages, the active input source, and the per-frame hit-test dispatch.
//
// A Controller manages one or more pages, each a root layout container sized
// in world units. Exactly one page is visible at a time; NextPage and PrevPage
// switch with wraparound, always pairing a hide of the outgoing page with a
// show of the incoming one. Under the automatic-adding mode, Add spills
// elements into freshly cloned pages once the target container is full, so
// pagination falls out of the template shape.
//
// Input comes from one of two mutually exclusive sources. The default tracked
// device source builds the pointer ray from a 3D object's position and forward
// axis each frame. EnableMouse switches to pointer projection: listeners
// registered on a render surface write the latest pointer state into a bounded
// record, and Update projects a ray through the camera from those coordinates.
// DisableMouse deterministically releases the listeners and reverts to the
// tracked device.
//
// All layout and hit testing is synchronous and frame-driven; a Controller and
// its pages are owned by a single frame-loop caller.
package ui
