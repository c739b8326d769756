package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/voicejumper/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, k, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got ids %d and %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatal("expected a different generation for the recycled slot")
	}
	if IsAlive(w, old) {
		t.Fatal("stale handle should not be alive")
	}
	if Has(w, fresh, k) {
		t.Fatal("recycled entity should not inherit components")
	}
	if err := Add(w, old, k, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestComponentsTable(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, h1.Kind()) {
					t.Fatalf("e2 should not have the int component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}

	if err := Add[int](w, e1, h1.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := Add(w, e1, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, k, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e3, k, intPtr(3)); err != nil {
		t.Fatal(err)
	}

	seen := map[Entity]int{}
	ForEach(w, k, func(e Entity, v *int) { seen[e] = *v })
	if len(seen) != 2 || seen[e1] != 1 || seen[e3] != 3 {
		t.Fatalf("unexpected ForEach result %v", seen)
	}
	if _, ok := seen[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}

	// Destroying during iteration is allowed.
	ForEach(w, k, func(e Entity, _ *int) { DestroyEntity(w, e) })
	if _, ok := First(w, k); ok {
		t.Fatal("expected every holder destroyed")
	}
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	_ = Add(w, e1, ka, intPtr(1))
	_ = Add(w, e2, ka, intPtr(2))
	_ = Add(w, e2, kb, stringPtr("two"))
	_ = Add(w, e3, kb, stringPtr("three"))

	var res []Entity
	ForEach2(w, ka, kb, func(e Entity, a *int, b *string) {
		if *a != 2 || *b != "two" {
			t.Fatalf("unexpected values %d %q", *a, *b)
		}
		res = append(res, e)
	})
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("expected only e2, got %v", res)
	}

	kc := component.NewComponentKind[float64]()
	called := false
	ForEach2(w, ka, kc, func(Entity, *int, *float64) { called = true })
	if called {
		t.Fatal("expected no calls when a store is missing")
	}
}

func TestQuery(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()

	var both []Entity
	for i := 0; i < 6; i++ {
		e := CreateEntity(w)
		_ = Add(w, e, ka, intPtr(i))
		if i%2 == 0 {
			_ = Add(w, e, kb, intPtr(i))
			both = append(both, e)
		}
	}

	got := Query(w, ka, kb)
	if len(got) != len(both) {
		t.Fatalf("expected %d entities, got %d", len(both), len(got))
	}
	for i := range got {
		if got[i] != both[i] {
			t.Fatalf("expected slot order %v, got %v", both, got)
		}
	}

	if res := Query(w, ka, component.NewComponentKind[string]()); len(res) != 0 {
		t.Fatalf("expected empty result for missing store, got %v", res)
	}
}

type countingSystem struct {
	n *int
}

func (s countingSystem) Update(*World) { *s.n++ }

func TestSchedulerRunsInOrder(t *testing.T) {
	var order []string
	a := systemFunc(func(*World) { order = append(order, "a") })
	b := systemFunc(func(*World) { order = append(order, "b") })

	n := 0
	s := NewScheduler(a, nil, b)
	s.Add(countingSystem{n: &n})
	s.Update(NewWorld())

	if len(order) != 2 || order[0] != "a" || order[1] != "b" || n != 1 {
		t.Fatalf("unexpected run order %v n=%d", order, n)
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(s.Systems()))
	}
}

type systemFunc func(*World)

func (f systemFunc) Update(w *World) { f(w) }

type textScreen struct {
	lines []string
}

type labelRenderer struct {
	systemFunc
	label string
}

func (r labelRenderer) Draw(_ *World, screen *textScreen) {
	screen.lines = append(screen.lines, r.label)
}

func TestDrawCallsRenderersInOrder(t *testing.T) {
	noop := systemFunc(func(*World) {})
	s := NewScheduler(
		labelRenderer{systemFunc: noop, label: "first"},
		noop,
		labelRenderer{systemFunc: noop, label: "second"},
	)

	screen := &textScreen{}
	Draw(s, NewWorld(), screen)

	if len(screen.lines) != 2 || screen.lines[0] != "first" || screen.lines[1] != "second" {
		t.Fatalf("unexpected draw order %v", screen.lines)
	}

	// Renderers for another screen type are skipped.
	Draw(s, NewWorld(), "ignored")
	if len(screen.lines) != 2 {
		t.Fatalf("expected no extra draws, got %v", screen.lines)
	}
}
