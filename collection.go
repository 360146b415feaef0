package proxyiter

import (
	"fmt"
	"reflect"
)

// IndexedEnumerable is a foreign collection offering both access modes.
type IndexedEnumerable interface {
	Enumerable
	Indexed
}

// Collection is a Sequence with positional access. Indexing doesn't share state with iterators,
// so the two can be interleaved.
type Collection[T any] struct {
	Sequence[T]
	Indexed Indexed
}

func NewCollection[T any](c IndexedEnumerable, convert Converter[T]) Collection[T] {
	return Collection[T]{
		Sequence: NewSequence[T](c, convert),
		Indexed:  c,
	}
}

// CollectionOf is a Collection that converts elements with As.
func CollectionOf[T any](c IndexedEnumerable) Collection[T] {
	return NewCollection[T](c, As[T])
}

func (me Collection[T]) Count() int {
	return me.Indexed.Count()
}

// At requires 0 <= index < Count. Bounds aren't checked here.
func (me Collection[T]) At(index int) T {
	return convertAt(me.Indexed, index, me.Convert)
}

// At is indexed access converting with As. It panics if the element isn't a T.
func At[T any](c Indexed, index int) T {
	return convertAt[T](c, index, As[T])
}

func convertAt[T any](c Indexed, index int, convert Converter[T]) T {
	raw := c.ObjectAt(index)
	opt := convert(raw)
	if !opt.Ok {
		panic(fmt.Sprintf("element %v has type %T, not %v", index, raw, reflect.TypeFor[T]()))
	}
	return opt.Value
}
