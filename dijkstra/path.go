package dijkstra

import "golang.org/x/exp/slices"

// walk follows predecessor links from node back to anchor and returns the
// path in anchor→node order. It returns nil if the chain breaks before
// reaching anchor, which means node was never reached.
//
// Predecessor chains only pass through nodes finalized before their
// successor, so the walk always terminates.
func walk[N comparable](prev map[N]N, anchor, node N) []N {
	path := []N{node}
	for node != anchor {
		p, ok := prev[node]
		if !ok {
			return nil
		}
		node = p
		path = append(path, node)
	}
	slices.Reverse(path)

	return path
}

// join concatenates the forward path source→meet with the reverse of the
// backward path target→meet, dropping the duplicated meeting node.
func join[N comparable](fwd, bwd []N) []N {
	n := len(fwd) + len(bwd) - 1
	if n < 0 {
		n = 0
	}
	out := make([]N, 0, n)
	out = append(out, fwd...)
	for i := len(bwd) - 2; i >= 0; i-- {
		out = append(out, bwd[i])
	}

	return out
}
