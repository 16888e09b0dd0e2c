package searcher

import (
	"fmt"
	"isolation/game"
	"math"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

type traceNode struct {
	id     int
	parent int
	move   game.Move
	player game.Player // Player to move at this node
	value  float64
	done   bool // The layer returned a value
	cut    bool // Remaining siblings below this node were pruned
}

// Trace records the tree explored by a depth-limited pass, for debugging.
// Each pass started by an engine replaces the previous tree.
type Trace struct {
	nodes []traceNode
	path  []int // Nodes from the root to the layer being expanded
}

func NewTrace() *Trace {
	return &Trace{}
}

// Len returns the number of nodes recorded, the root included.
func (t *Trace) Len() int {
	return len(t.nodes)
}

func (t *Trace) reset(toMove game.Player) {
	t.nodes = t.nodes[:0]
	t.path = t.path[:0]
	t.nodes = append(t.nodes, traceNode{id: 0, parent: -1, move: game.NoMove, player: toMove})
	t.path = append(t.path, 0)
}

func (t *Trace) descend(move game.Move) {
	parent := t.nodes[t.path[len(t.path)-1]]
	id := len(t.nodes)
	t.nodes = append(t.nodes, traceNode{
		id:     id,
		parent: parent.id,
		move:   move,
		player: opponentOf(parent.player),
	})
	t.path = append(t.path, id)
}

func (t *Trace) ascend(value float64) {
	id := t.path[len(t.path)-1]
	t.nodes[id].value = value
	t.nodes[id].done = true
	t.path = t.path[:len(t.path)-1]
}

func (t *Trace) cut() {
	t.nodes[t.path[len(t.path)-1]].cut = true
}

func opponentOf(p game.Player) game.Player {
	if p == game.Player1 {
		return game.Player2
	}
	return game.Player1
}

func formatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(v, 'g', 4, 64)
	}
}

// ToDot renders the recorded tree in graphviz dot format.
func (t *Trace) ToDot() string {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		panic(err)
	}
	if err := g.SetDir(true); err != nil {
		panic(err)
	}

	for _, n := range t.nodes {
		label := fmt.Sprintf("%v to move", n.player)
		if n.id > 0 {
			label = fmt.Sprintf("%v\n%s", n.move, label)
		}
		if n.done {
			label = fmt.Sprintf("%s\nvalue %s", label, formatValue(n.value))
		}
		attrs := map[string]string{
			"shape": "box",
			"label": strconv.Quote(label),
		}
		if n.cut {
			attrs["style"] = "dashed"
		}
		if !n.done && n.id > 0 {
			attrs["color"] = "red" // Abandoned by a timeout
		}
		if err := g.AddNode("G", nodeName(n.id), attrs); err != nil {
			panic(err)
		}
		if n.parent >= 0 {
			if err := g.AddEdge(nodeName(n.parent), nodeName(n.id), true, nil); err != nil {
				panic(err)
			}
		}
	}
	return g.String()
}

func nodeName(id int) string {
	return "n" + strconv.Itoa(id)
}
