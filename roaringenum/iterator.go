package roaringenum

import (
	"github.com/RoaringBitmap/roaring"
)

type Iterator[T BitConstraint] struct {
	roaring.IntIterator
}

func (t *Iterator[T]) Next() T {
	return T(t.IntIterator.Next())
}

func (t *Iterator[T]) Initialize(a *Bitmap[T]) {
	t.IntIterator.Initialize(&a.Bitmap)
}
