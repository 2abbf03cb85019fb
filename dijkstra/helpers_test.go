package dijkstra

import "github.com/katalvlaran/bidipath/core"

func newTestGraph() *core.Graph[int] {
	g := core.NewGraph[int]()
	g.AddEdge(0, 1, 2)
	return g
}
