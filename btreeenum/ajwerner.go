package btreeenum

import (
	"github.com/anacrolix/btree"

	"github.com/anacrolix/proxyiter"
)

// Ajwerner walks a github.com/anacrolix/btree set. The set has no positional access, so this is
// enumeration only.
type Ajwerner[T any] struct {
	set     *btree.Set[T]
	it      btree.MapIterator[T, struct{}]
	started bool
}

var _ interface {
	proxyiter.Enumerable
	proxyiter.Resetter
} = (*Ajwerner[int])(nil)

func NewAjwerner[T any](set *btree.Set[T]) *Ajwerner[T] {
	ret := &Ajwerner[T]{set: set}
	ret.Reset()
	return ret
}

func (me *Ajwerner[T]) NextObject() (any, bool) {
	if me.started {
		if !me.it.Valid() {
			return nil, false
		}
		me.it.Next()
	} else {
		me.it.First()
		me.started = true
	}
	if !me.it.Valid() {
		return nil, false
	}
	return me.it.Cur(), true
}

func (me *Ajwerner[T]) Reset() {
	me.it = me.set.Iterator()
	me.started = false
}
