package input

import "github.com/go-gl/mathgl/mgl64"

// TrackedDevice is the capability a tracked 3D pointing device (controller,
// hand, wand) must expose. Position and rotation are read fresh every frame;
// implementations must not assume either is cached between calls since the
// device moves continuously.
type TrackedDevice interface {
	// WorldPosition returns the device origin in world space.
	WorldPosition() mgl64.Vec3
	// WorldRotation returns the device orientation in world space. The
	// pointer ray runs along the rotated local -Z axis.
	WorldRotation() mgl64.Quat
	// Pressed reports the device's own trigger/button state.
	Pressed() bool
}
