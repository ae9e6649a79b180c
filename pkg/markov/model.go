package markov

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"
)

// entry holds one context and every next token observed after it, duplicates included.
type entry struct {
	context Context
	next    []string
}

// Chain is the context -> transitions store of an order-N Markov chain. It is
// created empty with a fixed order and only ever grows: Learn and Observe
// append, nothing removes or decrements.
type Chain struct {
	order   int
	entries map[contextKey]*entry
	keys    []contextKey // insertion order
	keyBuf  []byte // scratch for Observe only
	logger  *slog.Logger
}

// NewChain creates an empty chain of the given order. The order is the number
// of preceding tokens used to predict the next one and must be at least 1.
func NewChain(order int) (*Chain, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	return &Chain{
		order:   order,
		entries: make(map[contextKey]*entry),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// SetLogger sets the logger for the Chain. By default, all logs are discarded.
func (c *Chain) SetLogger(logger *slog.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// Order returns the order the chain was created with.
func (c *Chain) Order() int {
	return c.order
}

// Len returns the number of distinct contexts in the chain.
func (c *Chain) Len() int {
	return len(c.keys)
}

// Observe appends next to the transition list of ctx, creating the entry if it
// does not exist yet. No deduplication is done: every call adds one occurrence.
func (c *Chain) Observe(ctx Context, next string) error {
	if len(ctx) != c.order {
		return fmt.Errorf("%w: context %q has length %d, want %d", ErrUnknownContext, ctx.String(), len(ctx), c.order)
	}
	var key contextKey
	c.keyBuf, key = makeKey(c.keyBuf, ctx)
	e, ok := c.entries[key]
	if !ok {
		e = &entry{context: slices.Clone(ctx)}
		c.entries[key] = e
		c.keys = append(c.keys, key)
	}
	e.next = append(e.next, next)
	return nil
}

// Transitions returns a copy of every next token observed after ctx.
func (c *Chain) Transitions(ctx Context) ([]string, error) {
	next, err := c.transitions(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(next), nil
}

// transitions is Transitions without the defensive copy, for read-only internal use.
func (c *Chain) transitions(ctx Context) ([]string, error) {
	if len(ctx) != c.order {
		return nil, fmt.Errorf("%w: context %q has length %d, want %d", ErrUnknownContext, ctx.String(), len(ctx), c.order)
	}
	// Lookups use a local buffer; keyBuf belongs to Observe.
	var buf [64]byte
	_, key := makeKey(buf[:0], ctx)
	e, ok := c.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContext, ctx.String())
	}
	return e.next, nil
}

// ForEachContext calls fn once for every stored context, in the order the
// contexts were first observed, until fn returns false. The slices passed to fn
// are owned by the chain and must not be modified.
func (c *Chain) ForEachContext(fn func(ctx Context, next []string) bool) {
	for _, key := range c.keys {
		e := c.entries[key]
		if !fn(e.context, e.next) {
			return
		}
	}
}

// All returns an iterator over every context and its transitions, in the same
// order as ForEachContext.
func (c *Chain) All() iter.Seq2[Context, []string] {
	return func(yield func(Context, []string) bool) {
		c.ForEachContext(yield)
	}
}
