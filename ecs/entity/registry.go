package entity

import (
	"sort"
	"strconv"

	"github.com/milk9111/prismfall/ecs"
	"github.com/milk9111/prismfall/ecs/component"
	"github.com/milk9111/prismfall/ldtk"
)

type IntGridSpawnFunc func(w *ecs.World, cell ldtk.IntGridCell, at component.Transform) (ecs.Entity, error)

type EntitySpawnFunc func(w *ecs.World, inst *ldtk.EntityInstance, at component.Transform) (ecs.Entity, error)

// Registry maps level identifiers to the functions that spawn them.
type Registry struct {
	intCells map[int]IntGridSpawnFunc
	entities map[string]EntitySpawnFunc
}

func NewRegistry() *Registry {
	return &Registry{
		intCells: make(map[int]IntGridSpawnFunc),
		entities: make(map[string]EntitySpawnFunc),
	}
}

// DefaultRegistry registers every identifier the classifier supports.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.RegisterIntCell(int(IntGridSpike), SpawnSpike)
	for _, ek := range entityKinds {
		r.RegisterEntity(ek.name, SpawnFixedEntity)
	}
	return r
}

func (r *Registry) RegisterIntCell(value int, fn IntGridSpawnFunc) {
	if fn == nil {
		delete(r.intCells, value)
		return
	}
	r.intCells[value] = fn
}

func (r *Registry) RegisterEntity(identifier string, fn EntitySpawnFunc) {
	if fn == nil {
		delete(r.entities, identifier)
		return
	}
	r.entities[identifier] = fn
}

func (r *Registry) SupportsIntCell(value int) bool {
	_, ok := r.intCells[value]
	return ok
}

func (r *Registry) SupportsEntity(identifier string) bool {
	_, ok := r.entities[identifier]
	return ok
}

// IntCellValues returns the registered IntGrid values in ascending order.
func (r *Registry) IntCellValues() []int {
	out := make([]int, 0, len(r.intCells))
	for v := range r.intCells {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// EntityIdentifiers returns the registered entity identifiers sorted.
func (r *Registry) EntityIdentifiers() []string {
	out := make([]string, 0, len(r.entities))
	for id := range r.entities {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) SpawnIntCell(w *ecs.World, cell ldtk.IntGridCell, at component.Transform) (ecs.Entity, error) {
	fn, ok := r.intCells[cell.Value]
	if !ok {
		return 0, &UnsupportedIdentifierError{Source: SourceIntGrid, Value: strconv.Itoa(cell.Value)}
	}
	return fn(w, cell, at)
}

func (r *Registry) SpawnEntity(w *ecs.World, inst *ldtk.EntityInstance, at component.Transform) (ecs.Entity, error) {
	if inst == nil {
		return 0, &UnsupportedIdentifierError{Source: SourceEntity}
	}
	fn, ok := r.entities[inst.Identifier]
	if !ok {
		return 0, &UnsupportedIdentifierError{Source: SourceEntity, Value: inst.Identifier}
	}
	return fn(w, inst, at)
}
