package component

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// RigidBody is the mobility class of a physics body.
type RigidBody uint8

const (
	// RigidBodyFixed never moves under simulation forces.
	RigidBodyFixed RigidBody = iota + 1
	RigidBodyDynamic
	// RigidBodyKinematic is moved by game code and pushes dynamic bodies.
	RigidBodyKinematic
)

func (r RigidBody) String() string {
	switch r {
	case RigidBodyFixed:
		return "fixed"
	case RigidBodyDynamic:
		return "dynamic"
	case RigidBodyKinematic:
		return "kinematic"
	default:
		return fmt.Sprintf("RigidBody(%d)", uint8(r))
	}
}

// BodyType maps the mobility class to the Chipmunk body type constant.
func (r RigidBody) BodyType() int {
	switch r {
	case RigidBodyDynamic:
		return cp.BODY_DYNAMIC
	case RigidBodyKinematic:
		return cp.BODY_KINEMATIC
	default:
		return cp.BODY_STATIC
	}
}

// NewBody creates a Chipmunk body for the mobility class. mass and moment are
// only used for dynamic bodies.
func (r RigidBody) NewBody(mass, moment float64) *cp.Body {
	switch r {
	case RigidBodyDynamic:
		return cp.NewBody(mass, moment)
	case RigidBodyKinematic:
		return cp.NewKinematicBody()
	default:
		return cp.NewStaticBody()
	}
}

var RigidBodyComponent = NewComponent[RigidBody]()
