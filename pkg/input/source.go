// Package input defines the input sources the UI controller can drive hit
// testing from: a 2D pointer projected through a camera, or a tracked 3D
// pointing device. It also holds the per-frame input state record shared with
// the layout tree during intersection.
package input

import "fmt"

// Source identifies the active input source. The zero value is
// SourceTrackedDevice, which is the default.
type Source int

const (
	// SourceTrackedDevice derives the pointer ray from a tracked 3D object's
	// position and forward axis.
	SourceTrackedDevice Source = iota
	// SourcePointer derives the pointer ray from 2D pointer coordinates
	// projected through a camera.
	SourcePointer
)

// String returns a human-readable representation of the source.
func (s Source) String() string {
	switch s {
	case SourceTrackedDevice:
		return "tracked_device"
	case SourcePointer:
		return "pointer"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}
