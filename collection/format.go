package collection

import (
	"fmt"
	"strings"
)

// formatter is implemented by every *Collection[T] regardless of T so
// that nested collections are recognised per element, even when the
// outer collection holds interface{} values.
type formatter interface {
	format(b *strings.Builder)
}

// valueFormatter matches a Collection[T] held by value.
type valueFormatter interface {
	formatValue(b *strings.Builder)
}

// String converts the collection to its bracketed form, for example
// [1, 2, 3]. Nested collections are rendered recursively.
func (c *Collection[T]) String() string {
	b := new(strings.Builder)
	c.format(b)
	return b.String()
}

func (c *Collection[T]) format(b *strings.Builder) {
	b.WriteByte('[')
	for i := 0; i < c.Count(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		formatElement(b, c.items[i])
	}
	b.WriteByte(']')
}

func (c Collection[T]) formatValue(b *strings.Builder) {
	c.format(b)
}

func formatElement(b *strings.Builder, elem interface{}) {
	switch v := elem.(type) {
	case formatter:
		v.format(b)
	case valueFormatter:
		v.formatValue(b)
	default:
		fmt.Fprint(b, v)
	}
}
