package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/prismfall/ecs"
	"github.com/milk9111/prismfall/ecs/component"
	"github.com/milk9111/prismfall/ldtk"
	"github.com/sirupsen/logrus"
)

type LoadOptions struct {
	// Registry resolves identifiers; nil uses DefaultRegistry.
	Registry *Registry
	// Lenient skips unsupported identifiers with a warning instead of
	// aborting the load.
	Lenient bool
	Logger  logrus.FieldLogger
}

type LoadReport struct {
	Level   string
	Spawned int
	Skipped int
}

// LoadLevelToWorld spawns the physics objects of one level. A strict load is
// all or nothing: on error every entity it created is destroyed again.
func LoadLevelToWorld(w *ecs.World, project *ldtk.Project, levelID string, opts LoadOptions) (LoadReport, error) {
	lvl, err := project.Level(levelID)
	if err != nil {
		return LoadReport{}, err
	}
	reg := opts.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("ldtk_level", lvl.Identifier)

	report := LoadReport{Level: lvl.Identifier}
	var created []ecs.Entity
	rollback := func() {
		for _, e := range created {
			w.DestroyEntity(e)
		}
	}

	// handle decides whether a spawn error aborts the load.
	handle := func(err error, fields logrus.Fields) error {
		if opts.Lenient && errors.Is(err, ErrUnsupportedIdentifier) {
			log.WithFields(fields).WithError(err).Warn("skipping unsupported level content")
			report.Skipped++
			return nil
		}
		return err
	}

	bounds := w.CreateEntity()
	created = append(created, bounds)
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Level:  lvl.Identifier,
		Width:  float64(lvl.PxWid),
		Height: float64(lvl.PxHei),
	}); err != nil {
		rollback()
		return LoadReport{}, fmt.Errorf("entity: add level bounds: %w", err)
	}

	for i := range lvl.LayerInstances {
		layer := &lvl.LayerInstances[i]
		switch layer.Type {
		case ldtk.LayerIntGrid:
			var layerErr error
			layer.EachIntGridCell(func(c ldtk.GridCoords, cell ldtk.IntGridCell) {
				if layerErr != nil {
					return
				}
				x, y := lvl.CellCenter(layer, c)
				e, err := reg.SpawnIntCell(w, cell, component.Transform{X: x, Y: y})
				if err != nil {
					layerErr = handle(err, logrus.Fields{"layer": layer.Identifier, "x": c.X, "y": c.Y, "value": cell.Value})
					return
				}
				created = append(created, e)
				report.Spawned++
				layerErr = ecs.Add(w, e, component.LevelSourceComponent.Kind(), &component.LevelSource{
					Level: lvl.Identifier,
					Layer: layer.Identifier,
					GridX: c.X,
					GridY: c.Y,
					Value: cell.Value,
				})
			})
			if layerErr != nil {
				rollback()
				return LoadReport{}, fmt.Errorf("entity: load %s/%s: %w", lvl.Identifier, layer.Identifier, layerErr)
			}
		case ldtk.LayerEntities:
			for j := range layer.EntityInstances {
				inst := &layer.EntityInstances[j]
				x, y := lvl.EntityCenter(layer, inst)
				e, err := reg.SpawnEntity(w, inst, component.Transform{X: x, Y: y})
				if err != nil {
					if err = handle(err, logrus.Fields{"layer": layer.Identifier, "identifier": inst.Identifier, "iid": inst.Iid}); err != nil {
						rollback()
						return LoadReport{}, fmt.Errorf("entity: load %s/%s: %w", lvl.Identifier, layer.Identifier, err)
					}
					continue
				}
				created = append(created, e)
				report.Spawned++
				if err := ecs.Add(w, e, component.LevelSourceComponent.Kind(), &component.LevelSource{
					Level:      lvl.Identifier,
					Layer:      layer.Identifier,
					GridX:      inst.Grid[0],
					GridY:      inst.Grid[1],
					Identifier: inst.Identifier,
					Iid:        inst.Iid,
				}); err != nil {
					rollback()
					return LoadReport{}, fmt.Errorf("entity: load %s/%s: %w", lvl.Identifier, layer.Identifier, err)
				}
			}
		}
	}

	log.WithFields(logrus.Fields{"spawned": report.Spawned, "skipped": report.Skipped}).Info("level loaded")
	return report, nil
}
