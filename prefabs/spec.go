package prefabs

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/prismfall/ecs/component"
	"gopkg.in/yaml.v3"
)

var ErrBadCollider = errors.New("prefabs: bad collider")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ColliderSpec struct {
	Shape      string       `yaml:"shape"`
	HalfWidth  float64      `yaml:"half_width"`
	HalfHeight float64      `yaml:"half_height"`
	Points     [][2]float64 `yaml:"points"`
}

func (s ColliderSpec) Collider() (component.Collider, error) {
	switch s.Shape {
	case "cuboid", "box":
		if s.HalfWidth <= 0 || s.HalfHeight <= 0 {
			return component.Collider{}, fmt.Errorf("%w: cuboid needs positive half extents", ErrBadCollider)
		}
		return component.Cuboid(s.HalfWidth, s.HalfHeight), nil
	case "triangle":
		if len(s.Points) != 3 {
			return component.Collider{}, fmt.Errorf("%w: triangle needs 3 points, got %d", ErrBadCollider, len(s.Points))
		}
		var v [3]cp.Vector
		for i, p := range s.Points {
			v[i] = cp.Vector{X: p[0], Y: p[1]}
		}
		return component.Triangle(v[0], v[1], v[2]), nil
	default:
		return component.Collider{}, fmt.Errorf("%w: unknown shape %q", ErrBadCollider, s.Shape)
	}
}

type CollisionGroupsSpec struct {
	Memberships string `yaml:"memberships"`
	Filters     string `yaml:"filters"`
}

func (s CollisionGroupsSpec) CollisionGroups() (component.CollisionGroups, error) {
	m, err := component.ParseGroupLabel(s.Memberships)
	if err != nil {
		return component.CollisionGroups{}, fmt.Errorf("prefabs: memberships: %w", err)
	}
	f, err := component.ParseGroupLabel(s.Filters)
	if err != nil {
		return component.CollisionGroups{}, fmt.Errorf("prefabs: filters: %w", err)
	}
	return component.NewCollisionGroups(m, f), nil
}

type SensorSpec struct {
	Collider        ColliderSpec        `yaml:"collider"`
	CollisionGroups CollisionGroupsSpec `yaml:"collision_groups"`
}

func (s SensorSpec) Sensor() (component.Sensor, error) {
	c, err := s.Collider.Collider()
	if err != nil {
		return component.Sensor{}, err
	}
	g, err := s.CollisionGroups.CollisionGroups()
	if err != nil {
		return component.Sensor{}, err
	}
	return component.Sensor{Collider: c, Groups: g}, nil
}

// ProbeSpec describes the keyboard probe that stands in for the player.
type ProbeSpec struct {
	Name            string              `yaml:"name"`
	Speed           float64             `yaml:"speed"`
	Collider        ColliderSpec        `yaml:"collider"`
	CollisionGroups CollisionGroupsSpec `yaml:"collision_groups"`
	Sensor          *SensorSpec         `yaml:"sensor"`
}

func LoadProbeSpec() (ProbeSpec, error) {
	return LoadSpec[ProbeSpec]("probe.yaml")
}
