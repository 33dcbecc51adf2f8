package system

import (
	"github.com/milk9111/prismfall/ecs"
	"github.com/milk9111/prismfall/ecs/component"
	"github.com/sirupsen/logrus"
)

// HazardSystem turns hazard contacts reported by the physics system into
// spike trigger counts. It must run after PhysicsSystem in the same frame.
type HazardSystem struct {
	log logrus.FieldLogger
}

func NewHazardSystem(log logrus.FieldLogger) *HazardSystem {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &HazardSystem{log: log}
}

func (hs *HazardSystem) Update(w *ecs.World) {
	if hs == nil || w == nil {
		return
	}
	for _, evt := range w.Events().DrainType(ecs.EventHazardContact) {
		contact, ok := evt.Data.(ecs.HazardContactEvent)
		if !ok {
			continue
		}
		spike, ok := ecs.Get(w, contact.Hazard, component.SpikeComponent.Kind())
		if !ok {
			continue
		}
		spike.AddDeath()
		hs.log.WithFields(logrus.Fields{
			"hazard": contact.Hazard.String(),
			"other":  contact.Other.String(),
			"deaths": spike.Deaths(),
		}).Debug("spike triggered")
	}
}
