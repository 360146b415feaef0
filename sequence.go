package proxyiter

import (
	"iter"

	g "github.com/anacrolix/generics"
)

// Sequence exposes a foreign enumerable as a lazy sequence of T. It holds no cursor of its own,
// so each pass is only as repeatable as the enumerable (see Resetter).
type Sequence[T any] struct {
	Enumerable Enumerable
	Convert    Converter[T]
}

func NewSequence[T any](e Enumerable, convert Converter[T]) Sequence[T] {
	return Sequence[T]{
		Enumerable: e,
		Convert:    convert,
	}
}

// Of is a Sequence that converts elements with As.
func Of[T any](e Enumerable) Sequence[T] {
	return NewSequence[T](e, As[T])
}

func (me Sequence[T]) MakeIterator() *Iterator[T] {
	return NewIterator(me.Enumerable, me.Convert)
}

// All starts a new pass each time the returned sequence is ranged over.
func (me Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := me.MakeIterator()
		for {
			next := it.Next()
			if !next.Ok || !yield(next.Value) {
				return
			}
		}
	}
}

// Enumerate pairs each element with its position in the pass.
func (me Sequence[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for t := range me.All() {
			if !yield(i, t) {
				return
			}
			i++
		}
	}
}

func (me Sequence[T]) Collect() (ret []T) {
	for t := range me.All() {
		ret = append(ret, t)
	}
	return
}

// Returns Some of the last element of a full pass, or None if the pass is empty.
func (me Sequence[T]) Last() (last g.Option[T]) {
	for t := range me.All() {
		last.Set(t)
	}
	return
}
