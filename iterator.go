package proxyiter

import (
	"reflect"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/log"
	"github.com/anacrolix/missinggo/v2/panicif"
)

var logger = log.Default.WithNames("proxyiter")

// Iterator pulls raw elements from a foreign enumerable and converts them to T. It keeps no state
// beyond whether it has terminated: exhaustion is whatever the foreign side says it is.
type Iterator[T any] struct {
	enumerable Enumerable
	convert    Converter[T]
	done       bool
	mismatch   g.Option[any]
	// Receives a debug message when a conversion failure ends the pass.
	Logger log.Logger
}

// NewIterator binds a fresh iterator to e, rewinding e first if it's a Resetter. The iterator
// borrows e and must not outlive it.
func NewIterator[T any](e Enumerable, convert Converter[T]) *Iterator[T] {
	panicif.Nil(e)
	panicif.True(convert == nil)
	if r, ok := e.(Resetter); ok {
		r.Reset()
	}
	return &Iterator[T]{
		enumerable: e,
		convert:    convert,
		Logger:     logger,
	}
}

// Next returns the next converted element. The end of the foreign sequence and an element that
// fails conversion both return None, and both are terminal. Use Mismatch to tell them apart.
func (me *Iterator[T]) Next() (ret g.Option[T]) {
	if me.done {
		return
	}
	raw, ok := me.enumerable.NextObject()
	if !ok {
		me.done = true
		return
	}
	converted := me.convert(raw)
	if !converted.Ok {
		me.done = true
		me.mismatch.Set(raw)
		me.Logger.Levelf(log.Debug, "ending iteration at element of type %T: not a %v", raw, reflect.TypeFor[T]())
		return
	}
	return converted
}

// Mismatch returns the raw element that ended iteration by failing conversion, if that's what
// ended it.
func (me *Iterator[T]) Mismatch() g.Option[any] {
	return me.mismatch
}

func (me *Iterator[T]) Done() bool {
	return me.done
}
