package search

import "container/heap"

// frontier is the open list of the uninformed skeleton.
type frontier[S comparable] interface {
	push(n *node[S], priority float64)
	pop() *node[S]
	len() int
}

// stack is a LIFO frontier; priorities are ignored.
type stack[S comparable] struct{ items []*node[S] }

func (s *stack[S]) push(n *node[S], _ float64) { s.items = append(s.items, n) }

func (s *stack[S]) pop() *node[S] {
	last := len(s.items) - 1
	n := s.items[last]
	s.items[last] = nil
	s.items = s.items[:last]
	return n
}

func (s *stack[S]) len() int { return len(s.items) }

// queue is a FIFO frontier; priorities are ignored.
type queue[S comparable] struct {
	items []*node[S]
	head  int
}

func (q *queue[S]) push(n *node[S], _ float64) { q.items = append(q.items, n) }

func (q *queue[S]) pop() *node[S] {
	n := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}
	return n
}

func (q *queue[S]) len() int { return len(q.items) - q.head }

// pqItem is a node with its priority and insertion sequence.
type pqItem[S comparable] struct {
	node     *node[S]
	priority float64
	seq      uint64
}

// nodePQ is a min-heap of *pqItem ordered by priority, then insertion order.
// Stale duplicates are left in place and skipped by callers when popped
// ("lazy decrease-key").
type nodePQ[S comparable] []*pqItem[S]

func (pq nodePQ[S]) Len() int { return len(pq) }

func (pq nodePQ[S]) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[S]) Push(x interface{}) { *pq = append(*pq, x.(*pqItem[S])) }

func (pq *nodePQ[S]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// priorityQueue adapts nodePQ to the frontier interface.
type priorityQueue[S comparable] struct {
	heap nodePQ[S]
	seq  uint64
}

func (q *priorityQueue[S]) push(n *node[S], priority float64) {
	q.pushItem(n, priority)
}

func (q *priorityQueue[S]) pushItem(n *node[S], priority float64) *pqItem[S] {
	item := &pqItem[S]{node: n, priority: priority, seq: q.seq}
	q.seq++
	heap.Push(&q.heap, item)
	return item
}

func (q *priorityQueue[S]) pop() *node[S] { return q.popItem().node }

func (q *priorityQueue[S]) popItem() *pqItem[S] { return heap.Pop(&q.heap).(*pqItem[S]) }

func (q *priorityQueue[S]) len() int { return q.heap.Len() }

// minPriority returns the smallest priority; the queue must be non-empty.
func (q *priorityQueue[S]) minPriority() float64 { return q.heap[0].priority }

// openList is a priority frontier that also indexes its open nodes by state,
// so the opposite direction of a bidirectional search can look them up.
type openList[S comparable] struct {
	priorityQueue[S]
	byState map[S][]*node[S]
}

func newOpenList[S comparable]() *openList[S] {
	return &openList[S]{byState: make(map[S][]*node[S])}
}

func (o *openList[S]) push(n *node[S], priority float64) {
	o.pushItem(n, priority)
	o.byState[n.state] = append(o.byState[n.state], n)
}

func (o *openList[S]) pop() *node[S] {
	n := o.popItem().node
	open := o.byState[n.state]
	for i, m := range open {
		if m == n {
			open = append(open[:i], open[i+1:]...)
			break
		}
	}
	if len(open) == 0 {
		delete(o.byState, n.state)
	} else {
		o.byState[n.state] = open
	}

	return n
}

// cheapest returns the lowest-cost open node for s, or nil.
func (o *openList[S]) cheapest(s S) *node[S] {
	var best *node[S]
	for _, n := range o.byState[s] {
		if best == nil || n.cost < best.cost {
			best = n
		}
	}
	return best
}
