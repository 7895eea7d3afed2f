// Package collection implements a growable, index addressable
// collection backed by a buffer it owns.
package collection // import "jsouthworth.net/go/mutable/collection"

import (
	"math"
	"reflect"

	"jsouthworth.net/go/seq"
)

const defaultCapacity = 16

// Collection is a mutable dynamic array. The backing buffer is
// allocated in slots; Capacity reports the number of slots and Count
// the number of live elements. Capacity never shrinks.
//
// The read only methods, Clear and the index checked accessors accept
// a nil *Collection and treat it as empty. Add, AddRange, InsertAt and
// EnsureCapacity need a non-nil receiver since they allocate.
//
// A Collection is not safe for concurrent use without external
// synchronization.
type Collection[T any] struct {
	items []T
	count int
}

// Empty returns a new collection with no elements and the default
// capacity of 16.
func Empty[T any]() *Collection[T] {
	return New[T]()
}

// Of returns a new collection holding the single item.
func Of[T any](item T) *Collection[T] {
	return New(item)
}

// New returns a collection holding the supplied items in order.
// Passing a slice with New(s...) copies the slice; the collection
// never aliases its argument.
func New[T any](items ...T) *Collection[T] {
	c := &Collection[T]{
		items: make([]T, grownCapacity(0, len(items))),
	}
	c.count = copy(c.items, items)
	return c
}

// From will convert many go types to a collection.
//
// *Collection[T]:
//    A copy of the collection is returned.
// []T:
//    New is called with the elements.
// []interface{}:
//    Each element is asserted to T.
// seq.Seqable:
//    Seq is called on the value and the collection is built from the resulting sequence.
// seq.Sequence:
//    The collection is built from the sequence. Care should be taken to provide finite sequences or the collection will grow without bound.
// []U:
//    The slice is converted using reflection.
//
// Elements that are not of type T cause a panic. Any other value
// yields an empty collection.
func From[T any](value interface{}) *Collection[T] {
	switch v := value.(type) {
	case *Collection[T]:
		return New(v.AsNative()...)
	case []T:
		return New(v...)
	case []interface{}:
		out := Empty[T]()
		out.EnsureCapacity(len(v))
		for _, elem := range v {
			out.Add(elem.(T))
		}
		return out
	case seq.Seqable:
		return collectionFromSequence[T](v.Seq())
	case seq.Sequence:
		return collectionFromSequence[T](v)
	default:
		return collectionFromReflection[T](value)
	}
}

func collectionFromSequence[T any](coll seq.Sequence) *Collection[T] {
	if coll == nil {
		return Empty[T]()
	}
	return seq.Reduce(func(result *Collection[T], input interface{}) *Collection[T] {
		result.Add(input.(T))
		return result
	}, Empty[T](), coll).(*Collection[T])
}

func collectionFromReflection[T any](value interface{}) *Collection[T] {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		out := Empty[T]()
		out.EnsureCapacity(v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Add(v.Index(i).Interface().(T))
		}
		return out
	default:
		return Empty[T]()
	}
}

// Count returns the number of elements in the collection.
func (c *Collection[T]) Count() int {
	if c == nil {
		return 0
	}
	return c.count
}

// Capacity returns the number of allocated slots.
func (c *Collection[T]) Capacity() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// EnsureCapacity grows the backing buffer so that it can hold at
// least required elements. Live elements keep their order.
func (c *Collection[T]) EnsureCapacity(required int) {
	if required <= len(c.items) {
		return
	}
	items := make([]T, grownCapacity(len(c.items), required))
	copy(items, c.items[:c.count])
	c.items = items
}

// grownCapacity doubles from max(current, defaultCapacity) until the
// result fits required. Doubling stops short of overflowing int; past
// that point required itself is used.
func grownCapacity(current, required int) int {
	capacity := max(current, defaultCapacity)
	for capacity < required {
		if capacity > math.MaxInt/2 {
			return required
		}
		capacity *= 2
	}
	return capacity
}

// Add appends the item to the end of the collection.
func (c *Collection[T]) Add(item T) {
	c.EnsureCapacity(c.count + 1)
	c.items[c.count] = item
	c.count++
}

// AddRange appends every item in order, growing the buffer at most
// once.
func (c *Collection[T]) AddRange(items ...T) {
	c.EnsureCapacity(c.count + len(items))
	c.count += copy(c.items[c.count:], items)
}

// InsertAt places the item at index, shifting the elements at and
// after index one slot to the right. index may equal Count, which
// appends.
func (c *Collection[T]) InsertAt(index int, item T) error {
	if err := c.validateIndex(index, insertion); err != nil {
		return err
	}
	c.EnsureCapacity(c.count + 1)
	copy(c.items[index+1:c.count+1], c.items[index:c.count])
	c.items[index] = item
	c.count++
	return nil
}

// RemoveAt deletes the element at index, shifting the following
// elements one slot to the left. Capacity is unchanged.
func (c *Collection[T]) RemoveAt(index int) error {
	if err := c.validateIndex(index, access); err != nil {
		return err
	}
	copy(c.items[index:], c.items[index+1:c.count])
	c.count--
	var zero T
	c.items[c.count] = zero
	return nil
}

// Exchange swaps the elements at i and j. If either index is out of
// range nothing is swapped.
func (c *Collection[T]) Exchange(i, j int) error {
	if err := c.validateIndex(i, access); err != nil {
		return err
	}
	if err := c.validateIndex(j, access); err != nil {
		return err
	}
	c.items[i], c.items[j] = c.items[j], c.items[i]
	return nil
}

// Clear removes every element. Capacity is unchanged.
func (c *Collection[T]) Clear() {
	if c == nil {
		return
	}
	clear(c.items[:c.count])
	c.count = 0
}

// Get returns the element at index.
func (c *Collection[T]) Get(index int) (T, error) {
	if err := c.validateIndex(index, access); err != nil {
		var zero T
		return zero, err
	}
	return c.items[index], nil
}

// Set replaces the element at index.
func (c *Collection[T]) Set(index int, value T) error {
	if err := c.validateIndex(index, access); err != nil {
		return err
	}
	c.items[index] = value
	return nil
}

// At returns the element at the supplied index. It will panic with an
// *IndexError if out of bounds.
func (c *Collection[T]) At(index int) T {
	v, err := c.Get(index)
	if err != nil {
		panic(err)
	}
	return v
}

// Find returns the value at the supplied index and if that index was
// in bounds for the collection. Out of bounds access does not panic but
// returns (nil, false). idx must be an int.
func (c *Collection[T]) Find(idx interface{}) (interface{}, bool) {
	v, err := c.Get(idx.(int))
	if err != nil {
		return nil, false
	}
	return v, true
}

// AsNative returns a copy of the live elements as a go slice.
func (c *Collection[T]) AsNative() []T {
	out := make([]T, c.Count())
	if c != nil {
		copy(out, c.items[:c.count])
	}
	return out
}
