package algorithms

import (
	"container/heap"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

// partialPath is an immutable linked prefix: the last node plus a pointer to the
// prefix it extends. Extending a path allocates one element instead of copying the
// whole sequence.
type partialPath struct {
	parent *partialPath
	node   int
	length int
	delay  int
}

func (p *partialPath) extend(node, delay int) *partialPath {
	return &partialPath{
		parent: p,
		node:   node,
		length: p.length + 1,
		delay:  p.delay + delay,
	}
}

func (p *partialPath) contains(node int) bool {
	for q := p; q != nil; q = q.parent {
		if q.node == node {
			return true
		}
	}
	return false
}

// nodes rebuilds the full sequence, origin first
func (p *partialPath) nodes() framework.Path {
	out := make(framework.Path, p.length)
	for q := p; q != nil; q = q.parent {
		out[q.length-1] = q.node
	}
	return out
}

type queueItem struct {
	path *partialPath
	seq  int // push order, keeps pops deterministic among equal delays
}

// pathQueue is a min-heap of partial paths keyed by cumulative delay
type pathQueue struct {
	items []queueItem
	next  int
}

var _ heap.Interface = &pathQueue{}

func (q *pathQueue) Len() int { return len(q.items) }

func (q *pathQueue) Less(i, j int) bool {
	if q.items[i].path.delay != q.items[j].path.delay {
		return q.items[i].path.delay < q.items[j].path.delay
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *pathQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *pathQueue) Push(x any) {
	q.items = append(q.items, x.(queueItem))
}

func (q *pathQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = queueItem{}
	q.items = old[:n-1]
	return item
}

func (q *pathQueue) push(p *partialPath) {
	heap.Push(q, queueItem{path: p, seq: q.next})
	q.next++
}

func (q *pathQueue) pop() *partialPath {
	return heap.Pop(q).(queueItem).path
}
