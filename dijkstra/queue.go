package dijkstra

import "container/heap"

// item is one frontier entry: a node with the tentative distance it had
// when pushed. seq breaks ties between equal distances in insertion order.
type item[N comparable] struct {
	node N
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of items ordered by (dist, seq).
// We use the lazy-decrease-key approach: an improved distance pushes a new
// item and the outdated one is skipped when popped.
type nodePQ[N comparable] []item[N]

func (pq nodePQ[N]) Len() int { return len(pq) }

func (pq nodePQ[N]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[N]) Push(x any) { *pq = append(*pq, x.(item[N])) }

func (pq *nodePQ[N]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

// frontier wraps nodePQ with typed push/pop and a shared sequence counter.
// Both directions of a bidirectional search draw from the same counter.
type frontier[N comparable] struct {
	pq  nodePQ[N]
	seq *uint64
}

func newFrontier[N comparable](seq *uint64) *frontier[N] {
	return &frontier[N]{seq: seq}
}

func (f *frontier[N]) push(node N, dist float64) {
	heap.Push(&f.pq, item[N]{node: node, dist: dist, seq: *f.seq})
	*f.seq++
}

func (f *frontier[N]) pop() item[N] {
	return heap.Pop(&f.pq).(item[N])
}

// peek returns the smallest key without removing it. It may belong to a
// stale entry, which only makes it a lower bound.
func (f *frontier[N]) peek() float64 {
	return f.pq[0].dist
}

func (f *frontier[N]) len() int { return f.pq.Len() }
