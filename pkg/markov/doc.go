/*
Package markov provides an in-memory, order-N Markov chain over token sequences.

A Chain is trained with Learn, sampled with a Generator, measured with the
entropy helpers (DistributionEntropy, ContextEntropy, SequenceEntropies and
AverageEntropyPerTerm), persisted with WriteTo/SaveFile and restored with
ReadChain/LoadFile. WriteGraph renders the chain as a Graphviz digraph for
inspection.

Sequences are framed by the reserved NonWord token: every trained sequence is
padded with Order copies of NonWord in front and terminated by a single NonWord,
so generation always starts from the all-NonWord context and ends when NonWord
is drawn.

Learn and Observe must not run concurrently with any other call on the same
Chain. Once training is done, the read-only methods (Transitions,
ForEachContext, the entropy helpers, WriteTo and WriteGraph) may be called from
several goroutines at once, and several Generators may walk the same Chain. A
single Generator is not safe for concurrent use because it owns its random
source.
*/
package markov
