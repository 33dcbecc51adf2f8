package entity

import (
	"fmt"

	"github.com/milk9111/prismfall/ecs"
	"github.com/milk9111/prismfall/ecs/component"
	"github.com/milk9111/prismfall/prefabs"
)

// NewProbeAt spawns the probe described by probe.yaml.
func NewProbeAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadProbeSpec()
	if err != nil {
		return 0, err
	}
	return SpawnProbe(w, spec, component.Transform{X: x, Y: y})
}

// SpawnProbe creates a kinematic player stand-in. Its main shape collides as
// the player body; the optional sensor touches what the player would feel.
func SpawnProbe(w *ecs.World, spec prefabs.ProbeSpec, at component.Transform) (ecs.Entity, error) {
	collider, err := spec.Collider.Collider()
	if err != nil {
		return 0, fmt.Errorf("probe: %w", err)
	}
	groups, err := spec.CollisionGroups.CollisionGroups()
	if err != nil {
		return 0, fmt.Errorf("probe: %w", err)
	}
	var sensor *component.Sensor
	if spec.Sensor != nil {
		s, err := spec.Sensor.Sensor()
		if err != nil {
			return 0, fmt.Errorf("probe: sensor: %w", err)
		}
		sensor = &s
	}

	body := FixedBody{Collider: collider, RigidBody: component.RigidBodyKinematic, CollisionGroups: groups}
	return spawn(w, at, func(e ecs.Entity) error {
		if err := body.attach(w, e); err != nil {
			return fmt.Errorf("probe: add body: %w", err)
		}
		if sensor != nil {
			if err := ecs.Add(w, e, component.SensorComponent.Kind(), sensor); err != nil {
				return fmt.Errorf("probe: add sensor: %w", err)
			}
		}
		if err := ecs.Add(w, e, component.ProbeComponent.Kind(), &component.Probe{Speed: spec.Speed}); err != nil {
			return fmt.Errorf("probe: add probe: %w", err)
		}
		if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
			return fmt.Errorf("probe: add player tag: %w", err)
		}
		return nil
	})
}
