package entity

import (
	"fmt"

	"github.com/milk9111/prismfall/ecs"
	"github.com/milk9111/prismfall/ecs/component"
	"github.com/milk9111/prismfall/ldtk"
)

// SpikeBundle holds everything a spike tile is spawned with. Spikes always
// carry all three parts.
type SpikeBundle struct {
	FixedBody  FixedBody
	HurtMarker component.HurtMarker
	Spike      component.Spike
}

func SpikeBundleFromIntGridCell(cell ldtk.IntGridCell) (SpikeBundle, error) {
	v, err := ParseIntGridValue(cell.Value)
	if err != nil {
		return SpikeBundle{}, err
	}
	return SpikeBundle{
		FixedBody: FixedBodyForIntGrid(v),
		Spike:     SpikeForIntGrid(v),
	}, nil
}

// Spawn creates an entity at `at` with the bundle's components. On error no
// entity is left behind.
func (b SpikeBundle) Spawn(w *ecs.World, at component.Transform) (ecs.Entity, error) {
	return spawn(w, at, func(e ecs.Entity) error {
		if err := b.FixedBody.attach(w, e); err != nil {
			return fmt.Errorf("spike: add fixed body: %w", err)
		}
		marker := b.HurtMarker
		if err := ecs.Add(w, e, component.HurtMarkerComponent.Kind(), &marker); err != nil {
			return fmt.Errorf("spike: add hurt marker: %w", err)
		}
		spike := b.Spike
		if err := ecs.Add(w, e, component.SpikeComponent.Kind(), &spike); err != nil {
			return fmt.Errorf("spike: add spike: %w", err)
		}
		return nil
	})
}

// FixedEntityBundle is the bundle of a named placement. Named placements are
// never hazards.
type FixedEntityBundle struct {
	FixedBody FixedBody
}

func FixedEntityBundleFromEntityInstance(inst *ldtk.EntityInstance) (FixedEntityBundle, error) {
	b, err := FixedBodyFromEntityInstance(inst)
	if err != nil {
		return FixedEntityBundle{}, err
	}
	return FixedEntityBundle{FixedBody: b}, nil
}

func (b FixedEntityBundle) Spawn(w *ecs.World, at component.Transform) (ecs.Entity, error) {
	return spawn(w, at, func(e ecs.Entity) error {
		if err := b.FixedBody.attach(w, e); err != nil {
			return fmt.Errorf("fixed entity: add fixed body: %w", err)
		}
		return nil
	})
}

func spawn(w *ecs.World, at component.Transform, attach func(ecs.Entity) error) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("entity: spawn: nil world")
	}
	e := w.CreateEntity()
	tr := at
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &tr); err != nil {
		w.DestroyEntity(e)
		return 0, fmt.Errorf("entity: add transform: %w", err)
	}
	if err := attach(e); err != nil {
		w.DestroyEntity(e)
		return 0, err
	}
	return e, nil
}

// SpawnSpike classifies an IntGrid cell and spawns it as a spike.
func SpawnSpike(w *ecs.World, cell ldtk.IntGridCell, at component.Transform) (ecs.Entity, error) {
	b, err := SpikeBundleFromIntGridCell(cell)
	if err != nil {
		return 0, err
	}
	return b.Spawn(w, at)
}

// SpawnFixedEntity classifies an entity instance and spawns its fixed body.
func SpawnFixedEntity(w *ecs.World, inst *ldtk.EntityInstance, at component.Transform) (ecs.Entity, error) {
	b, err := FixedEntityBundleFromEntityInstance(inst)
	if err != nil {
		return 0, err
	}
	return b.Spawn(w, at)
}
