// Package listenum exposes linked lists and insertion-ordered maps as foreign enumerables.
package listenum

import (
	list "github.com/bahlo/generic-list-go"

	"github.com/anacrolix/proxyiter"
)

// Enumerable follows a list's element chain from the front. Removing the element the cursor is
// on during a pass ends the pass early.
type Enumerable[T any] struct {
	l    *list.List[T]
	next *list.Element[T]
}

var _ interface {
	proxyiter.Enumerable
	proxyiter.Resetter
} = (*Enumerable[int])(nil)

func New[T any](l *list.List[T]) *Enumerable[T] {
	ret := &Enumerable[T]{l: l}
	ret.Reset()
	return ret
}

func (me *Enumerable[T]) NextObject() (any, bool) {
	e := me.next
	if e == nil {
		return nil, false
	}
	me.next = e.Next()
	return e.Value, true
}

func (me *Enumerable[T]) Reset() {
	me.next = me.l.Front()
}

func Sequence[T any](l *list.List[T]) proxyiter.Sequence[T] {
	return proxyiter.Of[T](New(l))
}
