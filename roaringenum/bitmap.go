package roaringenum

import (
	"github.com/RoaringBitmap/roaring"
)

type BitConstraint interface {
	~int | ~uint | ~int32 | ~uint32 | ~uint16 | ~uint8
}

// Bitmap is a roaring bitmap holding values of T.
type Bitmap[T BitConstraint] struct {
	roaring.Bitmap
}

func (me *Bitmap[T]) Contains(x T) bool {
	return me.Bitmap.Contains(uint32(x))
}

func (me *Bitmap[T]) Add(xs ...T) {
	for _, x := range xs {
		me.Bitmap.Add(uint32(x))
	}
}

// Select returns the value with the given rank. It fails if there are fewer than rank+1 values.
func (me *Bitmap[T]) Select(rank int) (T, error) {
	x, err := me.Bitmap.Select(uint32(rank))
	return T(x), err
}

func (me *Bitmap[T]) Len() int {
	return int(me.Bitmap.GetCardinality())
}
