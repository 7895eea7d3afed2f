// Package stack implements a mutable stack on top of a collection.
package stack // import "jsouthworth.net/go/mutable/stack"

import (
	"errors"
	"reflect"

	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/mutable/collection"
	"jsouthworth.net/go/seq"
)

// ErrEmptyStack is returned when popping or peeking an empty stack.
var ErrEmptyStack = errors.New("empty stack")

var errRangeSig = errors.New("Range requires a function: func(v vT) bool or func(v vT)")

// Stack is a LIFO stack. The top of the stack is the last element of
// the backing collection.
type Stack[T any] struct {
	backing *collection.Collection[T]
}

// Empty returns a new empty stack.
func Empty[T any]() *Stack[T] {
	return &Stack[T]{backing: collection.Empty[T]()}
}

// New returns a stack with elems pushed in order; the last element
// is the top.
func New[T any](elems ...T) *Stack[T] {
	return &Stack[T]{backing: collection.New(elems...)}
}

// From returns a stack built from any value collection.From accepts,
// for example a []T, a *collection.Collection[T] or a seq.Sequence.
// Elements are pushed in order so the last one is the top.
func From[T any](value interface{}) *Stack[T] {
	return &Stack[T]{backing: collection.From[T](value)}
}

// Push places elem at the top of the stack.
func (s *Stack[T]) Push(elem T) {
	s.backing.Add(elem)
}

// Pop removes and returns the top of the stack.
func (s *Stack[T]) Pop() (T, error) {
	top, err := s.Top()
	if err != nil {
		return top, err
	}
	return top, s.backing.RemoveAt(s.backing.Count() - 1)
}

// Top returns the top of the stack without removing it.
func (s *Stack[T]) Top() (T, error) {
	if s.backing.Count() == 0 {
		var zero T
		return zero, ErrEmptyStack
	}
	return s.backing.Get(s.backing.Count() - 1)
}

// Length returns the number of elements on the stack.
func (s *Stack[T]) Length() int {
	return s.backing.Count()
}

// Range calls the passed in function on each element of the stack,
// starting at the top. The function passed in may be of many types:
//
// func(value T) bool:
//    Takes a value and returns if the loop should continue.
// func(value T)
//    Takes a value.
// func(value interface{}) bool:
//    Takes a value of any type and returns if the loop should continue.
//    Useful for heterogenous stacks.
// func(value interface{})
//    Takes a value of any type.
// func(value U) bool, func(value U):
//    Is called with reflection and will panic if the type is incorrect.
//
// Range will panic if passed anything that doesn't match one of these signatures.
func (s *Stack[T]) Range(do interface{}) {
	fn := genRangeFunc[T](do)
	for i := s.backing.Count() - 1; i >= 0; i-- {
		if !fn(s.backing.At(i)) {
			return
		}
	}
}

func genRangeFunc[T any](do interface{}) func(T) bool {
	switch fn := do.(type) {
	case func(value T) bool:
		return fn
	case func(value T):
		return func(value T) bool {
			fn(value)
			return true
		}
	case func(value interface{}) bool:
		return func(value T) bool {
			return fn(value)
		}
	case func(value interface{}):
		return func(value T) bool {
			fn(value)
			return true
		}
	default:
		rv := reflect.ValueOf(do)
		if rv.Kind() != reflect.Func {
			panic(errRangeSig)
		}
		rt := rv.Type()
		if rt.NumIn() != 1 || rt.NumOut() > 1 {
			panic(errRangeSig)
		}
		if rt.NumOut() == 1 &&
			rt.Out(0).Kind() != reflect.Bool {
			panic(errRangeSig)
		}
		return func(value T) bool {
			out := dyn.Apply(do, value)
			if out != nil {
				return out.(bool)
			}
			return true
		}
	}
}

// Seq returns the elements of the stack as a sequence starting at the
// top. It is nil for an empty stack.
func (s *Stack[T]) Seq() seq.Sequence {
	if s.Length() == 0 {
		return nil
	}
	return &stackSequence[T]{stack: s, idx: s.Length() - 1}
}

// String returns the elements from the top down, for example
// [3, 2, 1].
func (s *Stack[T]) String() string {
	topDown := collection.Empty[T]()
	topDown.EnsureCapacity(s.Length())
	s.Range(func(item T) bool {
		topDown.Add(item)
		return true
	})
	return topDown.String()
}

type stackSequence[T any] struct {
	stack *Stack[T]
	idx   int
}

func (s *stackSequence[T]) First() interface{} {
	return s.stack.backing.At(s.idx)
}

func (s *stackSequence[T]) Next() seq.Sequence {
	if s.idx == 0 {
		return nil
	}
	return &stackSequence[T]{
		stack: s.stack,
		idx:   s.idx - 1,
	}
}

func (s *stackSequence[T]) String() string {
	return seq.ConvertToString(s)
}
