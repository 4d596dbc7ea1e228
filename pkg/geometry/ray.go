// Package geometry provides the ray and transform math used by the spatial UI
// core: ray construction from cameras or tracked devices, and ray-vs-panel
// intersection in a panel's local space.
//
// The coordinate conventions match the layout packages: a panel's local origin
// is its top-left corner, +X grows rightward, -Y grows downward, and panels
// face +Z (a viewer in front of a panel looks along -Z at it).
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Forward is the local forward axis used when deriving a ray from an oriented
// transform, matching the usual -Z camera convention.
var Forward = mgl64.Vec3{0, 0, -1}

// Ray is a directed half-line in world space. Direction is kept normalized by
// the constructors; callers building a Ray literal should normalize themselves
// if they need parametric distances to be metric.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay returns a ray with a normalized direction.
func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// FromTransform builds a ray at a world position, pointing along the local
// forward axis rotated by the given orientation. Used for tracked pointing
// devices: both position and rotation are expected to be read fresh each
// frame by the caller.
func FromTransform(position mgl64.Vec3, rotation mgl64.Quat) Ray {
	return Ray{Origin: position, Direction: rotation.Rotate(Forward).Normalize()}
}

// At returns the point at parametric distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform maps the ray through m, transforming the origin as a point and the
// direction as a vector. The direction is not re-normalized, so t values keep
// their meaning across a rigid transform.
func (r Ray) Transform(m mgl64.Mat4) Ray {
	o := m.Mul4x1(r.Origin.Vec4(1))
	d := m.Mul4x1(r.Direction.Vec4(0))
	return Ray{Origin: o.Vec3(), Direction: d.Vec3()}
}

const planeEpsilon = 1e-9

// HitRect reports whether the ray hits the rectangle spanning (0,0)..(w,-h) on
// the z=0 plane of the space described by world. This is the panel background
// test: world is a node's world matrix, and the rectangle grows rightward and
// downward from the node's top-left origin. Rays pointing away from the plane
// or parallel to it miss.
func (r Ray) HitRect(world mgl64.Mat4, w, h float64) bool {
	local := r.Transform(world.Inv())
	dz := local.Direction.Z()
	if math.Abs(dz) < planeEpsilon {
		return false
	}
	t := -local.Origin.Z() / dz
	if t < 0 {
		return false
	}
	p := local.At(t)
	return p.X() >= 0 && p.X() <= w && p.Y() <= 0 && p.Y() >= -h
}
