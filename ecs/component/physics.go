package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores the Chipmunk runtime objects created for an entity's
// collider. It is owned by the physics system.
type PhysicsBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Sensor *cp.Shape
	Mass   float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// Sensor adds a second, non-solid shape to an entity's body. It reports
// contacts without producing a collision response.
type Sensor struct {
	Collider Collider
	Groups   CollisionGroups
}

var SensorComponent = NewComponent[Sensor]()
