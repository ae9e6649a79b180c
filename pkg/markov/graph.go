package markov

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// terminalNodeID is the node every NonWord transition points to.
const terminalNodeID = 1

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// WriteGraph describes the chain as a directed graph in the Graphviz DOT
// language. Each context becomes a node labelled with its tokens joined by
// "::", plus one terminal node for NonWord. Every transition occurrence becomes
// an edge to the context it shifts into, or to the terminal node when the
// transition is NonWord.
//
// A transition into a context that was never observed fails with
// ErrInvalidTarget, and nothing is written to w. A chain built only through
// Learn never triggers this.
func (c *Chain) WriteGraph(w io.Writer) error {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "digraph markov {")
	fmt.Fprintln(&buf, "\tordering = out;")
	fmt.Fprintf(&buf, "\tnode_%d [label=\"%s\"];\n", terminalNodeID, dotEscaper.Replace(NonWord))

	nodeIDs := make(map[contextKey]int, len(c.keys))
	for i, key := range c.keys {
		id := terminalNodeID + 1 + i
		nodeIDs[key] = id
		fmt.Fprintf(&buf, "\tnode_%d [label=\"%s\"];\n", id, dotEscaper.Replace(c.entries[key].context.String()))
	}

	var keyBuf []byte
	target := make(Context, c.order)
	for _, key := range c.keys {
		e := c.entries[key]
		from := nodeIDs[key]
		copy(target, e.context[1:])

		for _, next := range e.next {
			to := terminalNodeID
			if next != NonWord {
				target[c.order-1] = next
				var targetKey contextKey
				keyBuf, targetKey = makeKey(keyBuf, target)
				id, ok := nodeIDs[targetKey]
				if !ok {
					return fmt.Errorf("%w: %q -> %q", ErrInvalidTarget, e.context.String(), target.String())
				}
				to = id
			}
			fmt.Fprintf(&buf, "\tnode_%d -> node_%d;\n", from, to)
		}
	}

	fmt.Fprintln(&buf, "}")
	_, err := buf.WriteTo(w)
	return err
}
