package ecs

import "github.com/milk9111/prismfall/ecs/component"

// intersect returns the ids present in every store, iterating the smallest.
// Missing stores yield nil.
func intersect(stores ...componentStore) []entityID {
	var smallest componentStore
	for _, s := range stores {
		if s == nil {
			return nil
		}
		if smallest == nil || s.len() < smallest.len() {
			smallest = s
		}
	}
	if smallest == nil {
		return nil
	}
	out := make([]entityID, 0, smallest.len())
outer:
	for _, id := range smallest.ids() {
		for _, s := range stores {
			if !s.has(id) {
				continue outer
			}
		}
		out = append(out, id)
	}
	return out
}

// ForEach visits every live entity holding a component of kind. The entity
// list is snapshotted first so fn may add or remove components.
func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	sa := typedStore(w, ka, false)
	if sa == nil {
		return
	}
	for _, id := range append([]entityID(nil), sa.ids()...) {
		e, ok := w.entities.entity(id)
		if !ok {
			continue
		}
		a, ok := sa.get(id)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := typedStore(w, ka, false)
	sb := typedStore(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	for _, id := range intersect(sa, sb) {
		e, ok := w.entities.entity(id)
		if !ok {
			continue
		}
		a, okA := sa.get(id)
		b, okB := sb.get(id)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := typedStore(w, ka, false)
	sb := typedStore(w, kb, false)
	sc := typedStore(w, kc, false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for _, id := range intersect(sa, sb, sc) {
		e, ok := w.entities.entity(id)
		if !ok {
			continue
		}
		a, okA := sa.get(id)
		b, okB := sb.get(id)
		c, okC := sc.get(id)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sa := typedStore(w, ka, false)
	sb := typedStore(w, kb, false)
	sc := typedStore(w, kc, false)
	sd := typedStore(w, kd, false)
	if sa == nil || sb == nil || sc == nil || sd == nil {
		return
	}
	for _, id := range intersect(sa, sb, sc, sd) {
		e, ok := w.entities.entity(id)
		if !ok {
			continue
		}
		a, okA := sa.get(id)
		b, okB := sb.get(id)
		c, okC := sc.get(id)
		d, okD := sd.get(id)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, a, b, c, d)
	}
}

// First returns the first live entity holding a component of kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := typedStore(w, kind, false)
	if s == nil {
		return 0, false
	}
	for _, id := range s.ids() {
		if e, ok := w.entities.entity(id); ok {
			return e, true
		}
	}
	return 0, false
}

// Count returns how many entities hold a component of kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	s := typedStore(w, kind, false)
	if s == nil {
		return 0
	}
	return s.len()
}
