package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/prismfall/ecs"
	"github.com/milk9111/prismfall/ecs/component"
)

// ProbeInput returns the movement direction for this frame. Each axis is in
// [-1, 1]; positive y is up.
type ProbeInput func() (dx, dy float64)

// KeyboardProbeInput reads WASD, the arrow keys and the first gamepad's left
// stick.
func KeyboardProbeInput() (float64, float64) {
	const stickDeadzone = 0.2

	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy -= 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(x, y) > stickDeadzone {
			// Stick y grows downwards.
			dx, dy = x, -y
		}
	}
	return dx, dy
}

// ProbeSystem moves every Probe entity by its speed along the input
// direction. Speed is in pixels per update.
type ProbeSystem struct {
	input ProbeInput
}

func NewProbeSystem(input ProbeInput) *ProbeSystem {
	if input == nil {
		input = KeyboardProbeInput
	}
	return &ProbeSystem{input: input}
}

func (p *ProbeSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	dx, dy := p.input()
	if dx == 0 && dy == 0 {
		return
	}
	if l := math.Hypot(dx, dy); l > 1 {
		dx, dy = dx/l, dy/l
	}

	var bounds *component.LevelBounds
	if e, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		bounds, _ = ecs.Get(w, e, component.LevelBoundsComponent.Kind())
	}

	ecs.ForEach2(w, component.ProbeComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, probe *component.Probe, t *component.Transform) {
		t.X += dx * probe.Speed
		t.Y += dy * probe.Speed
		if bounds != nil {
			t.X = clamp(t.X, 0, bounds.Width)
			t.Y = clamp(t.Y, 0, bounds.Height)
		}
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
