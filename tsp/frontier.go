// Package tsp - branch-and-bound frontier.
//
// A binary min-heap keyed by (score, seq). seq is the push order, so equal
// scores pop first-in first-out and search traces are reproducible.

package tsp

import "container/heap"

type frontierItem struct {
	score float64
	seq   uint64
	state *State
}

type frontierHeap []frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}

	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x any) { *h = append(*h, x.(frontierItem)) }

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = frontierItem{} // release the state for GC
	*h = old[:n-1]

	return it
}

// frontier wraps frontierHeap with a monotone sequence counter.
type frontier struct {
	h   frontierHeap
	seq uint64
}

func (f *frontier) Len() int { return f.h.Len() }

func (f *frontier) push(s *State, score float64) {
	heap.Push(&f.h, frontierItem{score: score, seq: f.seq, state: s})
	f.seq++
}

func (f *frontier) pop() *State {
	return heap.Pop(&f.h).(frontierItem).state
}

// score ranks a state for expansion; lower pops first. Deeper states get a
// bonus proportional to the incumbent cost and (depth/n)², biasing the
// search towards completing tours over pure best-first.
func score(s *State, n int, incumbent float64) float64 {
	d := float64(s.Depth)
	nn := float64(n)

	return s.Bound - incumbent*(d*d)/(nn*nn)
}
