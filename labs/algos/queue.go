package algos

import (
	"container/heap"
	"context"
	"errors"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// Queue is a slice-backed FIFO. The zero value is ready to use.
type Queue[T any] struct {
	items []T
}

// Enqueue adds v to the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.items = append(q.items, v)
}

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	v := q.items[0]
	q.items = q.items[1:]
	return v, true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// ErrRingFull is returned by Ring.Enqueue at capacity.
var ErrRingFull = errors.New("ring full")

// Ring is a fixed-capacity circular queue. Unlike Queue it never grows and
// reuses one buffer forever.
type Ring[T any] struct {
	buf   []T
	head  int
	count int
}

// NewRing creates a Ring holding at most capacity elements.
func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{buf: make([]T, capacity)}
}

// Enqueue adds v, or returns ErrRingFull at capacity.
func (r *Ring[T]) Enqueue(v T) error {
	if r.count == len(r.buf) {
		return ErrRingFull
	}
	r.buf[(r.head+r.count)%len(r.buf)] = v
	r.count++
	return nil
}

// Dequeue removes and returns the oldest element.
func (r *Ring[T]) Dequeue() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.count--
	return v, true
}

// Len returns the number of queued elements.
func (r *Ring[T]) Len() int {
	return r.count
}

// task is a prioritized entry for the heap demonstration.
type task struct {
	name     string
	priority int
}

// taskHeap implements heap.Interface; the lowest priority number pops first.
type taskHeap []task

func (h taskHeap) Len() int           { return len(h) }
func (h taskHeap) Less(i, j int) bool { return h[i].priority < h[j].priority }
func (h taskHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) {
	*h = append(*h, x.(task))
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// bfs returns the vertices reachable from start in breadth-first order.
// Neighbor lists are visited in the order given, so the result is
// deterministic for a fixed graph.
func bfs(graph map[string][]string, start string) []string {
	visited := map[string]bool{start: true}
	var q Queue[string]
	q.Enqueue(start)

	var order []string
	for q.Len() > 0 {
		v, _ := q.Dequeue()
		order = append(order, v)
		for _, n := range graph[v] {
			if !visited[n] {
				visited[n] = true
				q.Enqueue(n)
			}
		}
	}
	return order
}

func runQueue(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("First in, first out")
	var q Queue[string]
	for _, v := range []string{"alpha", "beta", "gamma"} {
		q.Enqueue(v)
		p.Printf("  enqueue %q (len %d)\n", v, q.Len())
	}
	for q.Len() > 0 {
		v, _ := q.Dequeue()
		p.Printf("  dequeue %q (len %d)\n", v, q.Len())
	}

	p.Section("A ring buffer wraps around")
	r := NewRing[int](3)
	for i := 1; i <= 3; i++ {
		if err := r.Enqueue(i); err != nil {
			return err
		}
	}
	if err := r.Enqueue(4); err != nil {
		p.KV("enqueue into full ring", "error: %v", err)
	}
	v, _ := r.Dequeue()
	p.KV("dequeue", "%d frees a slot", v)
	if err := r.Enqueue(4); err != nil {
		return err
	}
	p.KV("enqueue 4 after wrap", "ok (len %d)", r.Len())

	p.Section("Priority queue via container/heap")
	h := &taskHeap{
		{name: "write report", priority: 3},
		{name: "fix outage", priority: 1},
		{name: "reply to email", priority: 2},
	}
	heap.Init(h)
	heap.Push(h, task{name: "deploy hotfix", priority: 1})
	for h.Len() > 0 {
		t := heap.Pop(h).(task)
		p.Printf("  p%d  %s\n", t.priority, t.name)
	}

	p.Section("Breadth-first search rides a queue")
	metro := map[string][]string{
		"central": {"north", "east", "museum"},
		"north":   {"central", "park"},
		"east":    {"central", "harbor"},
		"museum":  {"central"},
		"park":    {"north"},
		"harbor":  {"east", "airport"},
		"airport": {"harbor"},
		"depot":   {}, // unreachable from central
	}
	order := bfs(metro, "central")
	p.KV("visit order from central", "%v", order)
	p.KV("stations reached", "%d of %d", len(order), len(metro))

	return nil
}
