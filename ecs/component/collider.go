package component

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

type ColliderShape uint8

const (
	ColliderShapeCuboid ColliderShape = iota + 1
	ColliderShapeTriangle
)

func (s ColliderShape) String() string {
	switch s {
	case ColliderShapeCuboid:
		return "cuboid"
	case ColliderShapeTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("ColliderShape(%d)", uint8(s))
	}
}

// Collider describes a convex collision shape in body-local units, centered
// on the owning Transform. Only the fields of the active Shape are set, so two
// colliders built from the same arguments compare equal.
type Collider struct {
	Shape      ColliderShape
	HalfWidth  float64
	HalfHeight float64
	Points     [3]cp.Vector
}

// Cuboid returns an axis-aligned box collider with the given half extents.
func Cuboid(halfWidth, halfHeight float64) Collider {
	return Collider{Shape: ColliderShapeCuboid, HalfWidth: halfWidth, HalfHeight: halfHeight}
}

// Triangle returns a triangle collider. Points are expected in
// counter-clockwise order in a y-up space.
func Triangle(a, b, c cp.Vector) Collider {
	return Collider{Shape: ColliderShapeTriangle, Points: [3]cp.Vector{a, b, c}}
}

// Vertices returns the polygon outline in counter-clockwise order.
func (c Collider) Vertices() []cp.Vector {
	switch c.Shape {
	case ColliderShapeCuboid:
		return []cp.Vector{
			{X: -c.HalfWidth, Y: -c.HalfHeight},
			{X: c.HalfWidth, Y: -c.HalfHeight},
			{X: c.HalfWidth, Y: c.HalfHeight},
			{X: -c.HalfWidth, Y: c.HalfHeight},
		}
	case ColliderShapeTriangle:
		return []cp.Vector{c.Points[0], c.Points[1], c.Points[2]}
	default:
		return nil
	}
}

// BB returns the local bounding box of the collider.
func (c Collider) BB() cp.BB {
	verts := c.Vertices()
	if len(verts) == 0 {
		return cp.BB{}
	}
	bb := cp.BB{L: verts[0].X, B: verts[0].Y, R: verts[0].X, T: verts[0].Y}
	for _, v := range verts[1:] {
		bb = bb.Expand(v)
	}
	return bb
}

// Moment returns the moment of inertia for a body of the given mass.
func (c Collider) Moment(mass float64) float64 {
	switch c.Shape {
	case ColliderShapeCuboid:
		return cp.MomentForBox(mass, c.HalfWidth*2, c.HalfHeight*2)
	case ColliderShapeTriangle:
		verts := c.Vertices()
		return cp.MomentForPoly(mass, len(verts), verts, cp.Vector{}, 0)
	default:
		return 0
	}
}

// NewShape builds the Chipmunk shape for this collider on body. It returns
// nil for a zero Collider.
func (c Collider) NewShape(body *cp.Body) *cp.Shape {
	switch c.Shape {
	case ColliderShapeCuboid:
		return cp.NewBox(body, c.HalfWidth*2, c.HalfHeight*2, 0)
	case ColliderShapeTriangle:
		verts := c.Vertices()
		return cp.NewPolyShapeRaw(body, len(verts), verts, 0)
	default:
		return nil
	}
}

var ColliderComponent = NewComponent[Collider]()
