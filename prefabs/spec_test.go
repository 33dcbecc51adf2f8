package prefabs

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/prismfall/ecs/component"
	"gopkg.in/yaml.v3"
)

func TestLoadProbeSpec(t *testing.T) {
	spec, err := LoadProbeSpec()
	if err != nil {
		t.Fatalf("LoadProbeSpec: %v", err)
	}
	if spec.Speed <= 0 {
		t.Fatalf("speed = %v, want > 0", spec.Speed)
	}
	groups, err := spec.CollisionGroups.CollisionGroups()
	if err != nil {
		t.Fatal(err)
	}
	if groups.Memberships != component.GroupPlayerCollider || groups.Filters != component.GroupTerrain {
		t.Fatalf("groups = %+v", groups)
	}
	if spec.Sensor == nil {
		t.Fatal("expected a sensor")
	}
	sensor, err := spec.Sensor.Sensor()
	if err != nil {
		t.Fatal(err)
	}
	if sensor.Groups.Memberships != component.GroupPlayerSensor {
		t.Fatalf("sensor memberships = %v", sensor.Groups.Memberships)
	}
}

func TestColliderSpec(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    component.Collider
		wantErr bool
	}{
		{
			name: "cuboid",
			doc:  "shape: cuboid\nhalf_width: 4\nhalf_height: 2\n",
			want: component.Cuboid(4, 2),
		},
		{
			name: "triangle",
			doc:  "shape: triangle\npoints: [[-4, -4], [4, -4], [0, 4]]\n",
			want: component.Triangle(cp.Vector{X: -4, Y: -4}, cp.Vector{X: 4, Y: -4}, cp.Vector{X: 0, Y: 4}),
		},
		{name: "flat_cuboid", doc: "shape: cuboid\nhalf_width: 4\n", wantErr: true},
		{name: "short_triangle", doc: "shape: triangle\npoints: [[0, 0], [1, 0]]\n", wantErr: true},
		{name: "circle", doc: "shape: circle\n", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var spec ColliderSpec
			if err := yaml.Unmarshal([]byte(tc.doc), &spec); err != nil {
				t.Fatal(err)
			}
			got, err := spec.Collider()
			if tc.wantErr {
				if !errors.Is(err, ErrBadCollider) {
					t.Fatalf("err = %v, want ErrBadCollider", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("collider = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestCollisionGroupsSpecUnknownName(t *testing.T) {
	_, err := CollisionGroupsSpec{Memberships: "TERRAIN", Filters: "LASER"}.CollisionGroups()
	if !errors.Is(err, component.ErrUnknownGroup) {
		t.Fatalf("err = %v, want ErrUnknownGroup", err)
	}
}
