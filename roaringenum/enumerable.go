// Package roaringenum exposes roaring bitmaps as foreign enumerables.
package roaringenum

import (
	"github.com/anacrolix/proxyiter"
)

// Enumerable walks a bitmap in ascending order. Every pass starts over, and positional access
// goes through the bitmap's rank selection.
type Enumerable[T BitConstraint] struct {
	bitmap *Bitmap[T]
	it     Iterator[T]
}

var _ interface {
	proxyiter.IndexedEnumerable
	proxyiter.Resetter
} = (*Enumerable[int])(nil)

func New[T BitConstraint](bm *Bitmap[T]) *Enumerable[T] {
	ret := &Enumerable[T]{bitmap: bm}
	ret.Reset()
	return ret
}

func (me *Enumerable[T]) NextObject() (any, bool) {
	if !me.it.HasNext() {
		return nil, false
	}
	return me.it.Next(), true
}

func (me *Enumerable[T]) Reset() {
	me.it.Initialize(me.bitmap)
}

func (me *Enumerable[T]) Count() int {
	return me.bitmap.Len()
}

// ObjectAt panics with the bitmap's error if index is out of range.
func (me *Enumerable[T]) ObjectAt(index int) any {
	x, err := me.bitmap.Select(index)
	if err != nil {
		panic(err)
	}
	return x
}

// Collection is the bitmap as a typed proxyiter.Collection.
func Collection[T BitConstraint](bm *Bitmap[T]) proxyiter.Collection[T] {
	return proxyiter.CollectionOf[T](New(bm))
}
