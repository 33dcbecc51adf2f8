package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/prismfall/ecs"
	"github.com/milk9111/prismfall/ecs/component"
	"github.com/milk9111/prismfall/ecs/entity"
	"github.com/milk9111/prismfall/ecs/system"
	"github.com/milk9111/prismfall/ldtk"
	"github.com/milk9111/prismfall/levels"
	"github.com/milk9111/prismfall/settings"
	"github.com/sirupsen/logrus"
)

const (
	rayLength = 512
	// prefabDir is watched when present; prefabs.Load prefers it over the
	// embedded copies.
	prefabDir = "prefabs"
)

var background = color.RGBA{R: 0x12, G: 0x10, B: 0x1c, A: 0xff}

type Game struct {
	log          *logrus.Logger
	cfg          settings.Settings
	settingsPath string

	world     *ecs.World
	physics   *system.PhysicsSystem
	scheduler *ecs.Scheduler
	report    entity.LoadReport
	bounds    component.LevelBounds

	watcher *settings.Watcher

	frames  int
	ray     rayTrace
	lastErr error
}

type rayTrace struct {
	from, to cp.Vector
	hit      bool
}

func NewGame(cfg settings.Settings, settingsPath string, log *logrus.Logger) (*Game, error) {
	g := &Game{log: log, cfg: cfg, settingsPath: settingsPath}
	if err := g.reload(); err != nil {
		return nil, err
	}
	if cfg.Watch {
		if err := g.startWatcher(); err != nil {
			log.WithError(err).Warn("hot reload disabled")
		}
	}
	return g, nil
}

func (g *Game) loadProject() (*ldtk.Project, error) {
	if g.cfg.Project == "" {
		return levels.LoadProject("")
	}
	return ldtk.LoadProject(g.cfg.Project)
}

// reload rebuilds the world from the project. The current world is kept when
// loading fails.
func (g *Game) reload() error {
	project, err := g.loadProject()
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	report, err := entity.LoadLevelToWorld(w, project, g.cfg.Level, entity.LoadOptions{
		Lenient: g.cfg.Lenient,
		Logger:  g.log,
	})
	if err != nil {
		return err
	}

	var bounds component.LevelBounds
	if e, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		if b, ok := ecs.Get(w, e, component.LevelBoundsComponent.Kind()); ok {
			bounds = *b
		}
	}
	if _, err := entity.NewProbeAt(w, bounds.Width/2, bounds.Height-8); err != nil {
		return fmt.Errorf("spawn probe: %w", err)
	}

	physics := system.NewPhysicsSystem(g.cfg.Step)
	g.world = w
	g.physics = physics
	g.scheduler = ecs.NewScheduler(
		system.NewProbeSystem(nil),
		physics,
		system.NewHazardSystem(g.log),
	)
	g.report = report
	g.bounds = bounds
	g.lastErr = nil
	return nil
}

func (g *Game) startWatcher() error {
	dirs := map[string]bool{}
	if g.cfg.Project != "" {
		dirs[filepath.Dir(g.cfg.Project)] = true
	}
	if g.settingsPath != "" {
		dirs[filepath.Dir(g.settingsPath)] = true
	}
	if info, err := os.Stat(prefabDir); err == nil && info.IsDir() {
		dirs[prefabDir] = true
	}
	if len(dirs) == 0 {
		return errors.New("nothing on disk to watch")
	}
	list := make([]string, 0, len(dirs))
	for d := range dirs {
		list = append(list, d)
	}
	w, err := settings.NewWatcher(list...)
	if err != nil {
		return err
	}
	g.watcher = w
	g.log.WithField("dirs", list).Info("watching for changes")
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.onFileChanged(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.WithError(err).Warn("watcher")
		default:
			return
		}
	}
}

func (g *Game) onFileChanged(name string) {
	log := g.log.WithField("file", name)
	if g.settingsPath != "" && filepath.Clean(name) == filepath.Clean(g.settingsPath) {
		cfg, err := settings.Load(g.settingsPath)
		if err != nil {
			log.WithError(err).Error("reload settings")
			g.lastErr = err
			return
		}
		cfg.Watch = g.cfg.Watch
		g.cfg = cfg
		if lvl, err := cfg.Logrus(); err == nil {
			g.log.SetLevel(lvl)
		}
	} else if !g.isProjectFile(name) && filepath.Base(filepath.Dir(name)) != prefabDir {
		return
	}
	if err := g.reload(); err != nil {
		log.WithError(err).Error("reload level")
		g.lastErr = err
		return
	}
	log.Info("reloaded")
}

func (g *Game) isProjectFile(name string) bool {
	return g.cfg.Project != "" && filepath.Clean(name) == filepath.Clean(g.cfg.Project)
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.cfg.Debug = !g.cfg.Debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reload(); err != nil {
			g.log.WithError(err).Error("reload level")
			g.lastErr = err
		}
	}

	g.scheduler.Update(g.world)
	g.traceRay()
	return nil
}

// traceRay casts a light ray to the right of the probe.
func (g *Game) traceRay() {
	e, ok := ecs.First(g.world, component.ProbeComponent.Kind())
	if !ok {
		g.ray = rayTrace{}
		return
	}
	t, ok := ecs.Get(g.world, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	from := t.Vector()
	to := from.Add(cp.Vector{X: rayLength})
	hit, ok := g.physics.CastRay(from, to, component.GroupLightRay)
	if ok {
		to = hit.Point
	}
	g.ray = rayTrace{from: from, to: to, hit: ok}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	view := system.NewDebugView(g.world, g.cfg.Scale)

	if g.cfg.Debug {
		system.DrawPhysicsDebug(g.physics, view, screen)
	}
	system.DrawRay(screen, view, g.ray.from, g.ray.to, g.ray.hit)
	system.DrawSpikeCounters(g.world, view, screen)

	status := fmt.Sprintf("%s  spawned %d  skipped %d  FPS %.1f", g.report.Level, g.report.Spawned, g.report.Skipped, ebiten.ActualFPS())
	if g.lastErr != nil {
		status += "\n" + g.lastErr.Error()
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *Game) WindowSize() (int, int) {
	w, h := g.Layout(0, 0)
	return w, h
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := int(g.bounds.Width * g.cfg.Scale)
	h := int(g.bounds.Height * g.cfg.Scale)
	if w <= 0 || h <= 0 {
		return 640, 360
	}
	return w, h
}
