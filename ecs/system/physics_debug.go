package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/prismfall/ecs"
	"github.com/milk9111/prismfall/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

// DebugView maps the y-up level space onto the y-down screen.
type DebugView struct {
	Scale float64
	// Height is the level height in world units.
	Height float64
}

// NewDebugView reads the level height from the world's LevelBounds.
func NewDebugView(w *ecs.World, scale float64) DebugView {
	if scale <= 0 {
		scale = 1
	}
	view := DebugView{Scale: scale}
	if e, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		if b, ok := ecs.Get(w, e, component.LevelBoundsComponent.Kind()); ok {
			view.Height = b.Height
		}
	}
	return view
}

func (v DebugView) ToScreen(p cp.Vector) (float64, float64) {
	return p.X * v.Scale, (v.Height - p.Y) * v.Scale
}

// DrawPhysicsDebug outlines every shape of the physics space. Hazards are
// red and sensors yellow.
func DrawPhysicsDebug(ps *PhysicsSystem, view DebugView, screen *ebiten.Image) {
	if ps == nil || ps.space == nil || screen == nil {
		return
	}
	hazards := make(map[*cp.Shape]bool)
	for _, info := range ps.entities {
		if info.hazard {
			hazards[info.shape] = true
		}
	}
	cp.DrawSpace(ps.space, &physicsDebugDrawer{screen: screen, view: view, hazards: hazards})
}

// DrawSpikeCounters prints each spike's trigger count above it.
func DrawSpikeCounters(w *ecs.World, view DebugView, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	ecs.ForEach2(w, component.SpikeComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, spike *component.Spike, t *component.Transform) {
		x, y := view.ToScreen(cp.Vector{X: t.X, Y: t.Y})
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", spike.Deaths()), int(x)-3, int(y)-28)
	})
}

// DrawRay draws a traced ray up to its hit point.
func DrawRay(screen *ebiten.Image, view DebugView, from, to cp.Vector, hit bool) {
	if screen == nil {
		return
	}
	var clr color.Color = colornames.Gold
	if !hit {
		clr = colornames.Slateblue
	}
	x1, y1 := view.ToScreen(from)
	x2, y2 := view.ToScreen(to)
	vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, clr, false)
}

type physicsDebugDrawer struct {
	screen  *ebiten.Image
	view    DebugView
	hazards map[*cp.Shape]bool
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	// Chipmunk passes the shape color as fill; the outline is shared.
	d.drawPolygon(verts[:count], fill)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2 / d.view.Scale
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	switch {
	case shape.Sensor():
		return cp.FColor{R: 1, G: 0.9, B: 0.2, A: 0.8}
	case d.hazards[shape]:
		return cp.FColor{R: 1, G: 0.25, B: 0.25, A: 0.9}
	default:
		return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
	}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.view.ToScreen(a)
	x2, y2 := d.view.ToScreen(b)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, toNRGBA(c), false)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
