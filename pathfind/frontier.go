package pathfind

import "github.com/bradleyschulz88/Epochs-of-Empires-sub001/model"

// frontierNode is one open-set entry. seq records insertion order so equal
// fScores break deterministically — searches are reproducible regardless
// of map iteration order.
type frontierNode struct {
	coord model.Coord
	g     float64
	f     float64
	seq   int
}

// frontier is a binary min-heap ordered by fScore, then insertion
// sequence. It implements container/heap.Interface; every push stamps the
// next sequence number.
type frontier struct {
	nodes []*frontierNode
	seq   int
}

func (h *frontier) Len() int { return len(h.nodes) }

func (h *frontier) Less(i, j int) bool {
	a, b := h.nodes[i], h.nodes[j]
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

func (h *frontier) Swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
}

func (h *frontier) Push(x any) {
	n := x.(*frontierNode)
	n.seq = h.seq
	h.seq++
	h.nodes = append(h.nodes, n)
}

func (h *frontier) Pop() any {
	old := h.nodes
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.nodes = old[:n-1]
	return item
}
