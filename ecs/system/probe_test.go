package system

import (
	"testing"

	"github.com/milk9111/prismfall/ecs"
	"github.com/milk9111/prismfall/ecs/component"
)

func TestProbeSystemMovesAndClamps(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		start  component.Transform
		want   component.Transform
	}{
		{"right", 1, 0, component.Transform{X: 10, Y: 10}, component.Transform{X: 12, Y: 10}},
		{"up", 0, 1, component.Transform{X: 10, Y: 10}, component.Transform{X: 10, Y: 12}},
		{"clamp_left", -1, 0, component.Transform{X: 1, Y: 10}, component.Transform{X: 0, Y: 10}},
		{"clamp_top", 0, 1, component.Transform{X: 10, Y: 31}, component.Transform{X: 10, Y: 32}},
		{"idle", 0, 0, component.Transform{X: 5, Y: 5}, component.Transform{X: 5, Y: 5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			b := w.CreateEntity()
			_ = ecs.Add(w, b, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: 64, Height: 32})

			e := w.CreateEntity()
			start := tc.start
			_ = ecs.Add(w, e, component.TransformComponent.Kind(), &start)
			_ = ecs.Add(w, e, component.ProbeComponent.Kind(), &component.Probe{Speed: 2})

			dx, dy := tc.dx, tc.dy
			NewProbeSystem(func() (float64, float64) { return dx, dy }).Update(w)

			got, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			if *got != tc.want {
				t.Fatalf("transform = %+v, want %+v", *got, tc.want)
			}
		})
	}
}

func TestProbeSystemNormalizesDiagonal(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{})
	_ = ecs.Add(w, e, component.ProbeComponent.Kind(), &component.Probe{Speed: 1})

	NewProbeSystem(func() (float64, float64) { return 1, 1 }).Update(w)

	got, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if d := got.X*got.X + got.Y*got.Y; d > 1+1e-9 {
		t.Fatalf("moved %v, want at most 1", d)
	}
}
