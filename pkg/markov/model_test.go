package markov

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"reflect"
	"sync"
	"testing"
)

func TestNewChain(t *testing.T) {
	for _, order := range []int{0, -1} {
		if _, err := NewChain(order); !errors.Is(err, ErrInvalidOrder) {
			t.Errorf("NewChain(%d): expected ErrInvalidOrder, got %v", order, err)
		}
	}

	c, err := NewChain(3)
	if err != nil {
		t.Fatalf("NewChain(3) failed: %v", err)
	}
	if c.Order() != 3 || c.Len() != 0 {
		t.Errorf("got order %d and %d contexts, want 3 and 0", c.Order(), c.Len())
	}
}

func TestObserveAndTransitions(t *testing.T) {
	c := newTestChain(t, 2)

	ctx := Context{"a", "b"}
	for _, next := range []string{"c", "d", "c"} {
		if err := c.Observe(ctx, next); err != nil {
			t.Fatalf("Observe failed: %v", err)
		}
	}

	got, err := c.Transitions(ctx)
	if err != nil {
		t.Fatalf("Transitions failed: %v", err)
	}
	if want := []string{"c", "d", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Transitions() = %v, want %v", got, want)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 context, got %d", c.Len())
	}

	// The returned slice is a copy.
	got[0] = "mutated"
	again, _ := c.Transitions(ctx)
	if again[0] != "c" {
		t.Error("modifying the result of Transitions changed the chain")
	}

	// Mutating the caller's context after Observe must not affect the stored key.
	ctx[0] = "z"
	if _, err := c.Transitions(Context{"a", "b"}); err != nil {
		t.Errorf("stored context was aliased to the caller's slice: %v", err)
	}
}

func TestTransitionsUnknownContext(t *testing.T) {
	c := newTestChain(t, 2, "one fish two fish")

	testCases := []struct {
		name string
		ctx  Context
	}{
		{name: "Never observed", ctx: Context{"red", "fish"}},
		{name: "Too short", ctx: Context{"one"}},
		{name: "Too long", ctx: Context{"one", "fish", "two"}},
		{name: "Nil", ctx: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := c.Transitions(tc.ctx); !errors.Is(err, ErrUnknownContext) {
				t.Errorf("expected ErrUnknownContext, got %v", err)
			}
		})
	}

	if err := c.Observe(Context{"only"}, "x"); !errors.Is(err, ErrUnknownContext) {
		t.Errorf("Observe with a short context: expected ErrUnknownContext, got %v", err)
	}
}

func TestContextKeysAreUnambiguous(t *testing.T) {
	c := newTestChain(t, 2)
	_ = c.Observe(Context{"ab", "c"}, "x")
	_ = c.Observe(Context{"a", "bc"}, "y")

	if c.Len() != 2 {
		t.Fatalf("expected 2 distinct contexts, got %d", c.Len())
	}
	got, _ := c.Transitions(Context{"a", "bc"})
	if !reflect.DeepEqual(got, []string{"y"}) {
		t.Errorf("got %v, want [y]", got)
	}
}

func TestForEachContext(t *testing.T) {
	c := newTestChain(t, 1, "a b a c")

	var order []string
	seen := make(map[string]int)
	c.ForEachContext(func(ctx Context, next []string) bool {
		order = append(order, ctx.String())
		seen[ctx.String()]++
		return true
	})

	// Insertion order: ####, a, b, c
	want := []string{NonWord, "a", "b", "c"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("visit order = %v, want %v", order, want)
	}
	for ctx, n := range seen {
		if n != 1 {
			t.Errorf("context %q visited %d times", ctx, n)
		}
	}

	// Early stop.
	visited := 0
	c.ForEachContext(func(Context, []string) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Errorf("expected ForEachContext to stop after 2 visits, got %d", visited)
	}
}

func TestStats(t *testing.T) {
	c := newTestChain(t, 2, "one fish two fish", "red fish blue fish")

	stats := c.Stats()
	if stats.Order != 2 {
		t.Errorf("Order = %d, want 2", stats.Order)
	}
	// 5 observations per sentence.
	if stats.Transitions != 10 {
		t.Errorf("Transitions = %d, want 10", stats.Transitions)
	}
	if stats.VocabSize != 5 {
		t.Errorf("VocabSize = %d, want 5", stats.VocabSize)
	}
	if stats.StartingTokens != 2 {
		t.Errorf("StartingTokens = %d, want 2", stats.StartingTokens)
	}
	if stats.Contexts != c.Len() {
		t.Errorf("Contexts = %d, want %d", stats.Contexts, c.Len())
	}

	empty := newTestChain(t, 2)
	if got := empty.Stats(); got.Contexts != 0 || got.StartingTokens != 0 || got.Transitions != 0 {
		t.Errorf("unexpected stats for an empty chain: %+v", got)
	}
}

func TestConcurrentReads(t *testing.T) {
	c := newTestChain(t, 2, "one two FOO one two BAR one two BAZ one two BOO")

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g := NewGenerator(c, rand.New(rand.NewPCG(uint64(w), 1)))
			for range 500 {
				e, err := c.ContextEntropy(Context{"one", "two"})
				if err != nil || e != 2 {
					errs <- fmt.Errorf("ContextEntropy = %v, %v; want 2", e, err)
					return
				}
				if _, err = c.Transitions(Context{"two", "BAR"}); err != nil {
					errs <- err
					return
				}
				if _, err = g.Generate(); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
