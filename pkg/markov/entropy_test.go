package markov

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestDistributionEntropy(t *testing.T) {
	testCases := []struct {
		name     string
		values   []string
		expected float64
	}{
		{name: "Empty", values: nil, expected: 0},
		{name: "Single value", values: []string{"a"}, expected: 0},
		{name: "All equal", values: []string{"a", "a", "a", "a"}, expected: 0},
		{name: "Two equally likely", values: []string{"a", "b"}, expected: 1},
		{name: "Four equally likely", values: []string{"FOO", "BAR", "BAZ", "BOO"}, expected: 2},
		{name: "Four equally likely, repeated", values: []string{"a", "b", "c", "d", "d", "c", "b", "a"}, expected: 2},
		{name: "Eight equally likely", values: strings.Fields("a b c d e f g h"), expected: 3},
		{name: "Skewed", values: []string{"a", "a", "a", "b"}, expected: 0.8112781244591328},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DistributionEntropy(tc.values); got != tc.expected && math.Abs(got-tc.expected) > 1e-12 {
				t.Errorf("DistributionEntropy(%v) = %v, want %v", tc.values, got, tc.expected)
			}
		})
	}
}

func TestDistributionEntropyUniform(t *testing.T) {
	for u := 1; u <= 12; u++ {
		values := make([]string, 0, u*3)
		for rep := 0; rep < 3; rep++ {
			for i := 0; i < u; i++ {
				values = append(values, fmt.Sprintf("t%d", i))
			}
		}
		got := DistributionEntropy(values)
		if want := math.Log2(float64(u)); math.Abs(got-want) > 1e-12 {
			t.Errorf("U=%d: got %v, want %v", u, got, want)
		}
	}
}

func TestAverageEntropyPerTerm(t *testing.T) {
	t.Run("Distinct words", func(t *testing.T) {
		// Scenario A.
		words := "one two three four five six seven eight nine ten eleven twelve " +
			"thirteen fourteen fifteen sixteen seventeen eighteen nineteen twenty"
		c := newTestChain(t, 2, words)

		avg, err := c.AverageEntropyPerTerm()
		if err != nil {
			t.Fatalf("AverageEntropyPerTerm failed: %v", err)
		}
		if avg != 0.0 {
			t.Errorf("expected 0.0, got %v", avg)
		}
	})

	t.Run("Repeated prefix", func(t *testing.T) {
		// Scenario B.
		c := newTestChain(t, 2, "one two FOO one two BAR one two BAZ one two BOO")

		e, err := c.ContextEntropy(Context{"one", "two"})
		if err != nil {
			t.Fatalf("ContextEntropy failed: %v", err)
		}
		if e != 2.0 {
			t.Errorf("ContextEntropy(one two) = %v, want 2.0", e)
		}

		zeros := 0
		for ctx, next := range c.All() {
			if ctx.String() == "one::two" {
				continue
			}
			if DistributionEntropy(next) == 0 {
				zeros++
			}
		}
		if zeros != 9 {
			t.Errorf("expected 9 zero-entropy contexts, got %d", zeros)
		}

		avg, err := c.AverageEntropyPerTerm()
		if err != nil {
			t.Fatalf("AverageEntropyPerTerm failed: %v", err)
		}
		if avg != 0.2 {
			t.Errorf("expected 0.2, got %v", avg)
		}
	})

	t.Run("Empty chain", func(t *testing.T) {
		c := newTestChain(t, 2)
		if _, err := c.AverageEntropyPerTerm(); !errors.Is(err, ErrEmptyModel) {
			t.Errorf("expected ErrEmptyModel, got %v", err)
		}
	})
}

func TestSequenceEntropies(t *testing.T) {
	c := newTestChain(t, 2, "one two FOO one two BAR one two BAZ one two BOO")

	tokens := []string{"one", "two", "BAR", "one", "two", "BOO"}
	got, err := c.SequenceEntropies(tokens)
	if err != nil {
		t.Fatalf("SequenceEntropies failed: %v", err)
	}
	want := []float64{0, 0, 2, 0, 0, 2}
	if len(got) != len(want) {
		t.Fatalf("got %d entropies, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entropy[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if total := SumEntropy(got); total != 4 {
		t.Errorf("SumEntropy = %v, want 4", total)
	}

	empty, err := c.SequenceEntropies(nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("expected no entropies and no error for an empty sequence, got %v, %v", empty, err)
	}

	if _, err = c.SequenceEntropies([]string{"two", "one"}); !errors.Is(err, ErrUnknownContext) {
		t.Errorf("expected ErrUnknownContext for an untrained path, got %v", err)
	}
}

func TestSequenceEntropiesOfGeneratedText(t *testing.T) {
	c := newTestChain(t, 2, "foo bar baz boo foo baz bar boo", "foo bar boo baz")
	g := newTestGenerator(c, WithMaxLength(200))

	for i := 0; i < 20; i++ {
		output, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		entropies, err := c.SequenceEntropies(output)
		if err != nil {
			t.Fatalf("SequenceEntropies(%v) failed: %v", output, err)
		}
		if len(entropies) != len(output) {
			t.Errorf("got %d entropies for %d tokens", len(entropies), len(output))
		}
		for _, e := range entropies {
			if e < 0 {
				t.Errorf("negative entropy %v", e)
			}
		}
	}
}
