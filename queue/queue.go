// Package queue implements a mutable FIFO queue built from two
// collections.
package queue // import "jsouthworth.net/go/mutable/queue"

import (
	"errors"

	"jsouthworth.net/go/mutable/collection"
	"jsouthworth.net/go/seq"
)

// ErrEmptyQueue is returned when popping or peeking an empty queue.
var ErrEmptyQueue = errors.New("empty queue")

// Queue is a FIFO queue. front holds the oldest elements in reverse
// so the head is its last element; rest holds newer elements in
// arrival order. Push and Pop are amortized O(1).
type Queue[T any] struct {
	front *collection.Collection[T]
	rest  *collection.Collection[T]
}

// Empty returns a new empty queue.
func Empty[T any]() *Queue[T] {
	return &Queue[T]{
		front: collection.Empty[T](),
		rest:  collection.Empty[T](),
	}
}

// New returns a queue populated with elems; elems[0] is the head.
func New[T any](elems ...T) *Queue[T] {
	return &Queue[T]{
		front: collection.Empty[T](),
		rest:  collection.New(elems...),
	}
}

// From returns a queue created from any value collection.From
// accepts, for example a []T or a seq.Sequence.
func From[T any](value interface{}) *Queue[T] {
	return &Queue[T]{
		front: collection.Empty[T](),
		rest:  collection.From[T](value),
	}
}

// Push adds elem to the end of the queue.
func (q *Queue[T]) Push(elem T) {
	q.rest.Add(elem)
}

// Pop removes and returns the head of the queue.
func (q *Queue[T]) Pop() (T, error) {
	head, err := q.First()
	if err != nil {
		return head, err
	}
	return head, q.front.RemoveAt(q.front.Count() - 1)
}

// First returns the head of the queue without removing it.
func (q *Queue[T]) First() (T, error) {
	if q.front.Count() == 0 {
		if q.rest.Count() == 0 {
			var zero T
			return zero, ErrEmptyQueue
		}
		q.refill()
	}
	return q.front.Get(q.front.Count() - 1)
}

// refill moves rest into front, reversing it.
func (q *Queue[T]) refill() {
	q.front.EnsureCapacity(q.rest.Count())
	for i := q.rest.Count() - 1; i >= 0; i-- {
		q.front.Add(q.rest.At(i))
	}
	q.rest.Clear()
}

// Length returns the number of elements currently in the queue.
func (q *Queue[T]) Length() int {
	return q.front.Count() + q.rest.Count()
}

func (q *Queue[T]) at(i int) T {
	if i < q.front.Count() {
		return q.front.At(q.front.Count() - 1 - i)
	}
	return q.rest.At(i - q.front.Count())
}

// Seq returns the queue as a sequence from head to tail. It is nil
// for an empty queue.
func (q *Queue[T]) Seq() seq.Sequence {
	if q.Length() == 0 {
		return nil
	}
	return &queueSeq[T]{queue: q}
}

// String returns the elements from head to tail, for example
// [1, 2, 3].
func (q *Queue[T]) String() string {
	ordered := collection.Empty[T]()
	ordered.EnsureCapacity(q.Length())
	for i := 0; i < q.Length(); i++ {
		ordered.Add(q.at(i))
	}
	return ordered.String()
}

type queueSeq[T any] struct {
	queue *Queue[T]
	idx   int
}

func (s *queueSeq[T]) First() interface{} {
	return s.queue.at(s.idx)
}

func (s *queueSeq[T]) Next() seq.Sequence {
	if s.idx+1 >= s.queue.Length() {
		return nil
	}
	return &queueSeq[T]{
		queue: s.queue,
		idx:   s.idx + 1,
	}
}

func (s *queueSeq[T]) String() string {
	return seq.ConvertToString(s)
}
