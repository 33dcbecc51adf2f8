package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/prismfall/ecs"
	"github.com/milk9111/prismfall/ecs/component"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeHazard
	collisionTypeSensor
)

const (
	DefaultStep    = 1.0 / 60.0
	defaultGravity = -300
	defaultMass    = 1.0
)

// PhysicsSystem mirrors ECS colliders into a Chipmunk space. Entities are
// picked up the first update after they gain a Collider, RigidBody,
// CollisionGroups and Transform, and are removed once they die.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool
	step          float64

	// events is the queue of the world currently being updated. Collision
	// callbacks only run inside Update.
	events *ecs.EventQueue

	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	sensor *cp.Shape
	kind   component.RigidBody
	hazard bool
}

func NewPhysicsSystem(step float64) *PhysicsSystem {
	if step <= 0 {
		step = DefaultStep
	}
	return &PhysicsSystem{
		space:    newSpace(),
		step:     step,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: defaultGravity})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Reset drops every body. The next Update rebuilds the space from the world.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	ps.space = newSpace()
	ps.handlersReady = false
	ps.entities = make(map[ecs.Entity]*bodyInfo)
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.Reset()
	}

	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.syncKinematic(w)

	ps.events = w.Events()
	ps.space.Step(ps.step)
	ps.events = nil

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	hazardHandler := ps.space.NewCollisionHandler(collisionTypeHazard, collisionTypeSensor)
	hazardHandler.UserData = ps
	hazardHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil || sys.events == nil {
			return true
		}
		hazardShape, otherShape := arb.Shapes()
		hazard, ok := hazardShape.UserData.(ecs.Entity)
		if !ok {
			return true
		}
		other, ok := otherShape.UserData.(ecs.Entity)
		if !ok {
			return true
		}
		sys.events.Push(ecs.Event{
			Type: ecs.EventHazardContact,
			Data: ecs.HazardContactEvent{Hazard: hazard, Other: other},
		})
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach4(w,
		component.ColliderComponent.Kind(),
		component.RigidBodyComponent.Kind(),
		component.CollisionGroupsComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, collider *component.Collider, kind *component.RigidBody, groups *component.CollisionGroups, transform *component.Transform) {
			if _, ok := ps.entities[e]; ok {
				return
			}
			info := ps.createBodyInfo(w, e, *collider, *kind, *groups, *transform)
			if info == nil {
				return
			}
			ps.entities[e] = info

			pb := &component.PhysicsBody{Body: info.body, Shape: info.shape, Sensor: info.sensor}
			if info.body.GetType() == cp.BODY_DYNAMIC {
				pb.Mass = info.body.Mass()
			}
			_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), pb)
		})
}

func (ps *PhysicsSystem) createBodyInfo(w *ecs.World, e ecs.Entity, collider component.Collider, kind component.RigidBody, groups component.CollisionGroups, transform component.Transform) *bodyInfo {
	mass := defaultMass
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Mass > 0 {
		mass = pb.Mass
	}

	body := kind.NewBody(mass, collider.Moment(mass))
	body.SetPosition(transform.Vector())
	body.UserData = e

	shape := collider.NewShape(body)
	if shape == nil {
		return nil
	}
	shape.SetFilter(groups.ShapeFilter())
	shape.SetFriction(0.7)
	shape.UserData = e
	hazard := ecs.Has(w, e, component.HurtMarkerComponent.Kind())
	if hazard {
		shape.SetCollisionType(collisionTypeHazard)
	} else {
		shape.SetCollisionType(collisionTypeSolid)
	}

	var sensor *cp.Shape
	if sc, ok := ecs.Get(w, e, component.SensorComponent.Kind()); ok {
		sensor = sc.Collider.NewShape(body)
		if sensor != nil {
			sensor.SetSensor(true)
			sensor.SetFilter(sc.Groups.ShapeFilter())
			sensor.SetCollisionType(collisionTypeSensor)
			sensor.UserData = e
		}
	}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	if sensor != nil {
		ps.space.AddShape(sensor)
	}

	return &bodyInfo{body: body, shape: shape, sensor: sensor, kind: kind, hazard: hazard}
}

// syncKinematic moves kinematic bodies to their transforms. Game code owns
// their position.
func (ps *PhysicsSystem) syncKinematic(w *ecs.World) {
	for e, info := range ps.entities {
		if info.kind != component.RigidBodyKinematic {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		if info.body.Position() != transform.Vector() {
			info.body.SetPosition(transform.Vector())
		}
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.kind != component.RigidBodyDynamic {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.ColliderComponent.Kind()) {
			continue
		}
		ps.removeBody(info)
		delete(ps.entities, e)
		if w.IsAlive(e) {
			ecs.Remove(w, e, component.PhysicsBodyComponent.Kind())
		}
	}
}

func (ps *PhysicsSystem) removeBody(info *bodyInfo) {
	for _, shape := range []*cp.Shape{info.shape, info.sensor} {
		if shape != nil && ps.space.ContainsShape(shape) {
			ps.space.RemoveShape(shape)
		}
	}
	if info.body != nil && ps.space.ContainsBody(info.body) {
		ps.space.RemoveBody(info.body)
	}
}

// RayHit is the first shape a ray stopped on.
type RayHit struct {
	Entity ecs.Entity
	Point  cp.Vector
	Normal cp.Vector
	Alpha  float64
}

// CastRay traces a segment for a ray belonging to label. Only solid shapes
// whose collision groups interact with the label stop it; sensors never do.
func (ps *PhysicsSystem) CastRay(from, to cp.Vector, label component.GroupLabel) (RayHit, bool) {
	if ps == nil || ps.space == nil {
		return RayHit{}, false
	}
	filter := component.NewCollisionGroups(label, component.GroupAll).ShapeFilter()
	info := ps.space.SegmentQueryFirst(from, to, 0, filter)
	if info.Shape == nil {
		return RayHit{}, false
	}
	e, _ := info.Shape.UserData.(ecs.Entity)
	return RayHit{Entity: e, Point: info.Point, Normal: info.Normal, Alpha: info.Alpha}, true
}

// Overlapping returns the entities whose shapes currently overlap the main
// shape of e and interact with it.
func (ps *PhysicsSystem) Overlapping(e ecs.Entity) []ecs.Entity {
	if ps == nil || ps.space == nil {
		return nil
	}
	info := ps.entities[e]
	if info == nil || info.shape == nil {
		return nil
	}
	var out []ecs.Entity
	seen := make(map[ecs.Entity]bool)
	ps.space.ShapeQuery(info.shape, func(shape *cp.Shape, _ *cp.ContactPointSet) {
		other, ok := shape.UserData.(ecs.Entity)
		if !ok || other == e || seen[other] {
			return
		}
		seen[other] = true
		out = append(out, other)
	})
	return out
}
