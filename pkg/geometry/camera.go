package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is the capability the UI controller needs from a rendering camera:
// projecting a normalized device coordinate pair into a world-space ray.
// NDC follows the usual convention: x and y in [-1, 1], +Y up, (0, 0) at the
// center of the render surface.
type Camera interface {
	RayThrough(ndcX, ndcY float64) Ray
}

// PerspectiveCamera is a minimal pinhole camera satisfying Camera. It exists
// so the core is usable without a rendering engine; engines with their own
// camera types implement Camera directly.
type PerspectiveCamera struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	// FOV is the vertical field of view in radians.
	FOV    float64
	Aspect float64
}

// NewPerspectiveCamera returns a camera at the origin with identity
// orientation.
func NewPerspectiveCamera(fov, aspect float64) *PerspectiveCamera {
	return &PerspectiveCamera{
		Rotation: mgl64.QuatIdent(),
		FOV:      fov,
		Aspect:   aspect,
	}
}

// RayThrough projects a ray from the camera position through the given
// normalized device coordinates.
func (c *PerspectiveCamera) RayThrough(ndcX, ndcY float64) Ray {
	tanHalf := math.Tan(c.FOV / 2)
	dir := mgl64.Vec3{
		ndcX * tanHalf * c.Aspect,
		ndcY * tanHalf,
		-1,
	}
	return Ray{
		Origin:    c.Position,
		Direction: c.Rotation.Rotate(dir).Normalize(),
	}
}
