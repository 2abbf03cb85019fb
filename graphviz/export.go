// Package graphviz renders a core.Graph, and optionally one path through it,
// as an undirected DOT document.
package graphviz

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/bidipath/core"
)

// ErrNilGraph is returned by Export for a nil graph.
var ErrNilGraph = errors.New("graphviz: graph is nil")

type config struct {
	name  string
	color string
}

// Option configures Export.
type Option func(*config)

// WithName sets the DOT graph name. Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic("graphviz: WithName(\"\")")
	}
	return func(c *config) { c.name = name }
}

// WithColor sets the color of highlighted path nodes and edges.
// Panics on an empty color.
func WithColor(color string) Option {
	if color == "" {
		panic("graphviz: WithColor(\"\")")
	}
	return func(c *config) { c.color = color }
}

// Export returns g in DOT syntax with every edge labeled by its weight.
// When path is non-empty its nodes are highlighted, and so is the cheapest
// edge of every hop. A path that does not follow edges of g is an error
// wrapping core.ErrEdgeNotFound or core.ErrNodeNotFound.
func Export[N comparable](g *core.Graph[N], path []N, opts ...Option) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	cfg := config{name: "G", color: "red"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(path) > 0 {
		if _, err := g.PathWeight(path); err != nil {
			return "", fmt.Errorf("graphviz: path: %w", err)
		}
	}

	out := gographviz.NewGraph()
	if err := out.SetName(cfg.name); err != nil {
		return "", err
	}
	if err := out.SetDir(false); err != nil {
		return "", err
	}

	onPath := make(map[N]bool, len(path))
	for _, n := range path {
		onPath[n] = true
	}

	nodes := g.Nodes()
	names := make(map[N]string, len(nodes))
	for _, n := range nodes {
		names[n] = strconv.Quote(fmt.Sprint(n))
	}
	sort.Slice(nodes, func(i, j int) bool { return names[nodes[i]] < names[nodes[j]] })

	for _, n := range nodes {
		attrs := map[string]string{}
		if onPath[n] {
			attrs["color"] = cfg.color
			attrs["penwidth"] = "2"
		}
		if err := out.AddNode(cfg.name, names[n], attrs); err != nil {
			return "", fmt.Errorf("graphviz: node %v: %w", n, err)
		}
	}

	hops := hopEdges(g.Edges(), path)
	for i, e := range g.Edges() {
		attrs := map[string]string{
			"label": strconv.Quote(strconv.FormatFloat(e.Weight, 'g', -1, 64)),
		}
		if hops[i] {
			attrs["color"] = cfg.color
			attrs["penwidth"] = "2"
		}
		if err := out.AddEdge(names[e.U], names[e.V], false, attrs); err != nil {
			return "", fmt.Errorf("graphviz: edge %v—%v: %w", e.U, e.V, err)
		}
	}

	return out.String(), nil
}

// hopEdges marks, for every hop of path, the index of the first cheapest
// edge joining its endpoints.
func hopEdges[N comparable](edges []core.Edge[N], path []N) map[int]bool {
	marked := make(map[int]bool, len(path))
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		best := -1
		for j, e := range edges {
			if !(e.U == u && e.V == v) && !(e.U == v && e.V == u) {
				continue
			}
			if best < 0 || e.Weight < edges[best].Weight {
				best = j
			}
		}
		if best >= 0 {
			marked[best] = true
		}
	}

	return marked
}
