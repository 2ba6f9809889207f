package query

import "container/heap"

// timeHeap is a min-heap of timestamps
type timeHeap []int64

func (h timeHeap) Len() int           { return len(h) }
func (h timeHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h timeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h timeHeap) Peek() int64        { return h[0] }

func (h *timeHeap) Push(x interface{}) {
	*h = append(*h, x.(int64))
}

func (h *timeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// pendingTimes holds each candidate timestamp once. refs counts how many
// columns are waiting on a timestamp; the heap never holds duplicates.
type pendingTimes struct {
	heap timeHeap
	refs map[int64]int
}

func newPendingTimes(size int) pendingTimes {
	return pendingTimes{
		heap: make(timeHeap, 0, size),
		refs: make(map[int64]int, size),
	}
}

func (p *pendingTimes) push(t int64) {
	if n, ok := p.refs[t]; ok {
		p.refs[t] = n + 1
		return
	}
	heap.Push(&p.heap, t)
	p.refs[t] = 1
}

// pop removes the smallest timestamp together with all its references
func (p *pendingTimes) pop() (int64, bool) {
	if p.heap.Len() == 0 {
		return 0, false
	}
	t := heap.Pop(&p.heap).(int64)
	delete(p.refs, t)
	return t, true
}

func (p *pendingTimes) len() int {
	return p.heap.Len()
}

func (p *pendingTimes) reset() {
	p.heap = p.heap[:0]
	clear(p.refs)
}
