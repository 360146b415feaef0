package proxyiter

// Array is a foreign collection whose elements are proxies produced on demand by an allocator.
// It doesn't own what the proxies refer to.
type Array struct {
	alloc func(index int) any
	count func() int
	// Fast enumeration position.
	cursor int
}

var _ interface {
	IndexedEnumerable
	Resetter
} = (*Array)(nil)

func NewArray(alloc func(index int) any, count func() int) *Array {
	return &Array{
		alloc: alloc,
		count: count,
	}
}

// MakeNonOwningArray builds an Array over elems. Each proxy borrows a pointer into elems, so the
// slice must outlive the array and anything obtained from it.
func MakeNonOwningArray[E any](elems []E, alloc func(*E) any) *Array {
	return NewArray(
		func(index int) any {
			return alloc(&elems[index])
		},
		func() int {
			return len(elems)
		},
	)
}

func (me *Array) Count() int {
	return me.count()
}

// ObjectAt panics like a slice index if index is out of range.
func (me *Array) ObjectAt(index int) any {
	if index < 0 || index >= me.count() {
		panic(IndexOutOfRangeError{index, me.count()})
	}
	return me.alloc(index)
}

func (me *Array) NextObject() (obj any, ok bool) {
	if me.cursor >= me.count() {
		return
	}
	obj = me.alloc(me.cursor)
	me.cursor++
	return obj, true
}

func (me *Array) Reset() {
	me.cursor = 0
}
