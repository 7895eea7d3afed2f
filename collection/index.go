package collection

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is wrapped by every *IndexError.
var ErrOutOfRange = errors.New("index out of range")

// IndexError reports an index that fell outside the range valid for
// the operation. Count is the collection's Count at the time of the
// call.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range: Parameter should be in the range [0...%d]",
		e.Index, e.Count-1)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

type indexMode int

const (
	// access covers get, set, remove and exchange: [0, Count-1].
	access indexMode = iota
	// insertion allows Count as well, which appends.
	insertion
)

func (c *Collection[T]) validateIndex(i int, mode indexMode) error {
	limit := c.Count()
	if mode == insertion {
		limit++
	}
	if i < 0 || i >= limit {
		return &IndexError{Index: i, Count: c.Count()}
	}
	return nil
}
