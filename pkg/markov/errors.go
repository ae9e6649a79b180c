package markov

import "errors"

var (
	// ErrUnknownContext is returned when a context has the wrong length or was
	// never observed during training.
	ErrUnknownContext = errors.New("markov: unknown context")
	// ErrMalformedRecord is returned when a serialized chain contains a line that
	// cannot be parsed, or when a token cannot be represented in the flat format.
	ErrMalformedRecord = errors.New("markov: malformed record")
	// ErrEmptyModel is returned when an aggregate is requested on a chain with no contexts.
	ErrEmptyModel = errors.New("markov: empty model")
	// ErrInvalidTarget is returned by WriteGraph when a transition leads to a
	// context that is not itself part of the chain.
	ErrInvalidTarget = errors.New("markov: invalid graph target")
	// ErrGenerationLimitExceeded is returned when a walk exceeds the length set
	// with WithMaxLength.
	ErrGenerationLimitExceeded = errors.New("markov: generation limit exceeded")
	// ErrInvalidOrder is returned for a chain order below 1.
	ErrInvalidOrder = errors.New("markov: invalid order")
)
