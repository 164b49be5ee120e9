package ringline

import "fmt"

// Chain is the fixed, ordered row of nodes and the sequencer walking it.
//
// Exactly one node (current) animates at a time. When it settles the chain
// moves to the neighbour in direction; at either end there is no neighbour,
// so direction flips and the end node stays current to sweep back.
type Chain struct {
	nodes     []Node
	current   int
	direction int
}

// NewChain builds a chain of count nodes, all settled at scale 0.
func NewChain(count int) *Chain {
	if count < 1 {
		panic(fmt.Sprintf("ringline: chain needs at least one node, got %d", count))
	}
	nodes := make([]Node, count)
	for i := range nodes {
		nodes[i].Index = i
	}
	return &Chain{nodes: nodes, direction: 1}
}

func (c *Chain) Len() int       { return len(c.nodes) }
func (c *Chain) Current() int   { return c.current }
func (c *Chain) Direction() int { return c.direction }

// Node returns a pointer to the i-th node.
func (c *Chain) Node(i int) *Node { return &c.nodes[i] }

// Advance steps the current node once. A settle moves current before the
// event is handed back.
func (c *Chain) Advance() Event {
	ev := c.nodes[c.current].Advance()
	if ev.Kind != EventSettled {
		return ev
	}
	next, ok := c.neighbor(c.current, c.direction)
	if !ok {
		c.direction = -c.direction
	}
	c.current = next
	return ev
}

// Start begins a sweep on the current node.
func (c *Chain) Start() Event {
	return c.nodes[c.current].Start()
}

func (c *Chain) Draw(s Surface) {
	for i := range c.nodes {
		c.nodes[i].Draw(s, len(c.nodes))
	}
}

// neighbor returns the index next to i in dir, or i itself and false at
// the ends of the chain.
func (c *Chain) neighbor(i, dir int) (int, bool) {
	j := i + dir
	if j < 0 || j >= len(c.nodes) {
		return i, false
	}
	return j, true
}
