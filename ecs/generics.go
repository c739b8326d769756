package ecs

import (
	"sort"

	"github.com/milk9111/voicejumper/ecs/component"
)

// Add stores value as e's component of the given kind, replacing any
// previous value.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	s := w.store(kind.ID(), false)
	if s == nil {
		return false
	}
	return s.remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	s := w.store(kind.ID(), false)
	return s != nil && s.has(e)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	s := w.store(kind.ID(), false)
	if s == nil {
		return nil, false
	}
	v, ok := s.get(e)
	if !ok {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok && cast != nil
}

// ForEach visits every entity holding kind. Components may be added or
// removed, and entities destroyed, from inside fn.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := w.store(kind.ID(), false)
	for _, e := range s.snapshot() {
		v, ok := Get(w, e, kind)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

// ForEach2 visits entities holding both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	if sa == nil || sb == nil {
		return
	}
	small := sa
	if sb.len() < sa.len() {
		small = sb
	}
	for _, e := range small.snapshot() {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

// First returns any entity holding kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := w.store(kind.ID(), false)
	if s.len() == 0 {
		return 0, false
	}
	return s.dense[0], true
}

// Query returns entities holding every kind, sorted by slot so callers get a
// stable order.
func Query(w *World, kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*sparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s.len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].len() < sets[j].len() })

	out := make([]Entity, 0, sets[0].len())
	for _, e := range sets[0].dense {
		all := true
		for _, s := range sets[1:] {
			if !s.has(e) {
				all = false
				break
			}
		}
		if all {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}
