package entity

import (
	"strconv"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/prismfall/ecs"
	"github.com/milk9111/prismfall/ecs/component"
	"github.com/milk9111/prismfall/ldtk"
)

// IntGridValue is an IntGrid value this package knows how to spawn. Values
// only come from ParseIntGridValue.
type IntGridValue int

const IntGridSpike IntGridValue = 2

func (v IntGridValue) String() string {
	switch v {
	case IntGridSpike:
		return "spike"
	}
	return "IntGridValue(" + strconv.Itoa(int(v)) + ")"
}

// ParseIntGridValue validates a raw IntGrid value.
func ParseIntGridValue(v int) (IntGridValue, error) {
	switch IntGridValue(v) {
	case IntGridSpike:
		return IntGridSpike, nil
	}
	return 0, &UnsupportedIdentifierError{Source: SourceIntGrid, Value: strconv.Itoa(v)}
}

// EntityKind is a named entity placement this package knows how to spawn.
type EntityKind int

const (
	EntityRedCrystal EntityKind = iota + 1
	EntityGreenCrystal
)

var entityKinds = [...]struct {
	kind EntityKind
	name string
}{
	{EntityRedCrystal, "RedCrystal"},
	{EntityGreenCrystal, "GreenCrystal"},
}

func (k EntityKind) String() string {
	for _, ek := range entityKinds {
		if ek.kind == k {
			return ek.name
		}
	}
	return "EntityKind(" + strconv.Itoa(int(k)) + ")"
}

// ParseEntityKind validates an LDtk entity identifier. Matching is exact.
func ParseEntityKind(identifier string) (EntityKind, error) {
	for _, ek := range entityKinds {
		if ek.name == identifier {
			return ek.kind, nil
		}
	}
	return 0, &UnsupportedIdentifierError{Source: SourceEntity, Value: identifier}
}

// FixedBody groups the components that give a level object static physics.
type FixedBody struct {
	Collider        component.Collider
	RigidBody       component.RigidBody
	CollisionGroups component.CollisionGroups
}

// FixedBodyForIntGrid returns the physics of an IntGrid tile. Tile hazards
// are picked up by the player's sensor rather than blocking its body.
func FixedBodyForIntGrid(v IntGridValue) FixedBody {
	switch v {
	case IntGridSpike:
		return FixedBody{
			Collider: component.Triangle(
				cp.Vector{X: -4, Y: -4},
				cp.Vector{X: 4, Y: -4},
				cp.Vector{X: 0, Y: 4},
			),
			RigidBody: component.RigidBodyFixed,
			CollisionGroups: component.NewCollisionGroups(
				component.GroupTerrain,
				component.GroupLightRay|component.GroupPlayerSensor|component.GroupWhiteRay,
			),
		}
	}
	panic("entity: no fixed body for " + v.String())
}

// FixedBodyForEntity returns the physics of a named placement. Collider sizes
// match the entity's footprint in the editor. Crystals block the player body.
func FixedBodyForEntity(k EntityKind) FixedBody {
	switch k {
	case EntityRedCrystal, EntityGreenCrystal:
		return FixedBody{
			Collider:  component.Cuboid(4, 4),
			RigidBody: component.RigidBodyFixed,
			CollisionGroups: component.NewCollisionGroups(
				component.GroupTerrain,
				component.GroupLightRay|component.GroupPlayerCollider|component.GroupWhiteRay,
			),
		}
	}
	panic("entity: no fixed body for " + k.String())
}

func FixedBodyFromIntGridCell(cell ldtk.IntGridCell) (FixedBody, error) {
	v, err := ParseIntGridValue(cell.Value)
	if err != nil {
		return FixedBody{}, err
	}
	return FixedBodyForIntGrid(v), nil
}

func FixedBodyFromEntityInstance(inst *ldtk.EntityInstance) (FixedBody, error) {
	if inst == nil {
		return FixedBody{}, &UnsupportedIdentifierError{Source: SourceEntity}
	}
	k, err := ParseEntityKind(inst.Identifier)
	if err != nil {
		return FixedBody{}, err
	}
	return FixedBodyForEntity(k), nil
}

// MustFixedBodyFromIntGridCell is FixedBodyFromIntGridCell for callers that
// treat unsupported content as fatal.
func MustFixedBodyFromIntGridCell(cell ldtk.IntGridCell) FixedBody {
	b, err := FixedBodyFromIntGridCell(cell)
	if err != nil {
		panic(err)
	}
	return b
}

func MustFixedBodyFromEntityInstance(inst *ldtk.EntityInstance) FixedBody {
	b, err := FixedBodyFromEntityInstance(inst)
	if err != nil {
		panic(err)
	}
	return b
}

// attach adds the body's three components to e.
func (b FixedBody) attach(w *ecs.World, e ecs.Entity) error {
	collider := b.Collider
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &collider); err != nil {
		return err
	}
	rb := b.RigidBody
	if err := ecs.Add(w, e, component.RigidBodyComponent.Kind(), &rb); err != nil {
		return err
	}
	groups := b.CollisionGroups
	return ecs.Add(w, e, component.CollisionGroupsComponent.Kind(), &groups)
}
