package collection

import (
	"errors"
	"reflect"

	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/seq"
)

var errRangeSig = errors.New("Range requires a function: func(idx int, v vT) bool or func(idx int, v vT)")
var errReduceSig = errors.New("Reduce requires a function: func(init iT, v vT) oT")

// Seq returns a seq.Sequence that will traverse the collection. The
// sequence reads the live collection; it is nil for an empty one.
func (c *Collection[T]) Seq() seq.Sequence {
	if c.Count() == 0 {
		return nil
	}
	return &collectionSequence[T]{coll: c}
}

type collectionSequence[T any] struct {
	coll *Collection[T]
	idx  int
}

func (s *collectionSequence[T]) First() interface{} {
	return s.coll.At(s.idx)
}

func (s *collectionSequence[T]) Next() seq.Sequence {
	if s.idx+1 >= s.coll.Count() {
		return nil
	}
	return &collectionSequence[T]{
		coll: s.coll,
		idx:  s.idx + 1,
	}
}

func (s *collectionSequence[T]) String() string {
	return seq.ConvertToString(s)
}

// Range calls the passed in function on each element of the collection.
// The function passed in may be of many types:
//
// func(index int, value T) bool:
//    Takes the index and a value and returns if the loop should continue.
// func(index int, value T)
//    Takes the index and a value.
// func(index int, value interface{}) bool:
//    Takes the index and a value of any type and returns if the loop should continue.
//    Useful for heterogenous collections.
// func(index int, value interface{})
//    Takes the index and a value of any type.
// func(index int, value U) bool, func(index int, value U):
//    Is called with reflection and will panic if the type is incorrect.
//
// Range will panic if passed anything that doesn't match one of these signatures.
func (c *Collection[T]) Range(do interface{}) {
	cont := true
	fn := genRangeFunc[T](do)
	for i := 0; i < c.Count() && cont; i++ {
		cont = fn(i, c.items[i])
	}
}

func genRangeFunc[T any](do interface{}) func(int, T) bool {
	switch fn := do.(type) {
	case func(idx int, value T) bool:
		return fn
	case func(idx int, value T):
		return func(idx int, value T) bool {
			fn(idx, value)
			return true
		}
	case func(idx int, value interface{}) bool:
		return func(idx int, value T) bool {
			return fn(idx, value)
		}
	case func(idx int, value interface{}):
		return func(idx int, value T) bool {
			fn(idx, value)
			return true
		}
	default:
		rv := reflect.ValueOf(do)
		if rv.Kind() != reflect.Func {
			panic(errRangeSig)
		}
		rt := rv.Type()
		if rt.NumIn() != 2 || rt.NumOut() > 1 {
			panic(errRangeSig)
		}
		if rt.NumOut() == 1 &&
			rt.Out(0).Kind() != reflect.Bool {
			panic(errRangeSig)
		}
		return func(idx int, value T) bool {
			out := dyn.Apply(do, idx, value)
			if out != nil {
				return out.(bool)
			}
			return true
		}
	}
}

// Reduce folds the collection from the first element to the last.
// Reduce can take the following types as the fn:
//
// func(init interface{}, value interface{}) interface{}
// func(init iT, v vT) oT
//
// Reduce will panic if given any other function type.
func (c *Collection[T]) Reduce(fn interface{}, init interface{}) interface{} {
	res := init
	rFn := genReduceFunc(fn)
	c.Range(func(_ int, e T) {
		res = rFn(res, e)
	})
	return res
}

func genReduceFunc(fn interface{}) func(r, v interface{}) interface{} {
	switch f := fn.(type) {
	case func(res, val interface{}) interface{}:
		return f
	default:
		rv := reflect.ValueOf(fn)
		if rv.Kind() != reflect.Func {
			panic(errReduceSig)
		}
		rt := rv.Type()
		if rt.NumIn() != 2 || rt.NumOut() != 1 {
			panic(errReduceSig)
		}
		return func(r, v interface{}) interface{} {
			return dyn.Apply(fn, r, v)
		}
	}
}

// Apply takes an arbitrary number of arguments and returns the
// value At the first argument. Apply allows a collection to be called
// as a function by the 'dyn' library.
func (c *Collection[T]) Apply(args ...interface{}) interface{} {
	return c.At(args[0].(int))
}

// Conj adds elem, which must be a T, to the end of the collection and
// returns the collection. Conj implements a generic mechanism for
// building collections.
func (c *Collection[T]) Conj(elem interface{}) interface{} {
	c.Add(elem.(T))
	return c
}
