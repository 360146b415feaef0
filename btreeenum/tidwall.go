// Package btreeenum exposes ordered B-tree sets as foreign enumerables.
package btreeenum

import (
	"github.com/tidwall/btree"

	"github.com/anacrolix/proxyiter"
)

// MakeTidwallSet returns a lock-free tree, which Tidwall can leave mid-pass without consequence.
func MakeTidwallSet[T any](cmp func(T, T) int) *btree.BTreeG[T] {
	return btree.NewBTreeGOptions(func(a, b T) bool {
		return cmp(a, b) < 0
	}, btree.Options{
		Degree:  32,
		NoLocks: true,
	})
}

// Tidwall walks a github.com/tidwall/btree tree in order with its pull cursor. On a locking tree
// a pass holds the read lock from its first element until it runs out or the next Reset.
type Tidwall[T any] struct {
	tree    *btree.BTreeG[T]
	it      btree.IterG[T]
	started bool
	ended   bool
}

var _ interface {
	proxyiter.IndexedEnumerable
	proxyiter.Resetter
} = (*Tidwall[int])(nil)

func NewTidwall[T any](tree *btree.BTreeG[T]) *Tidwall[T] {
	return &Tidwall[T]{tree: tree}
}

func (me *Tidwall[T]) NextObject() (any, bool) {
	if me.ended {
		return nil, false
	}
	var ok bool
	if me.started {
		ok = me.it.Next()
	} else {
		me.it = me.tree.Iter()
		me.started = true
		ok = me.it.First()
	}
	if !ok {
		me.it.Release()
		me.ended = true
		return nil, false
	}
	return me.it.Item(), true
}

func (me *Tidwall[T]) Reset() {
	if me.started && !me.ended {
		me.it.Release()
	}
	me.it = btree.IterG[T]{}
	me.started = false
	me.ended = false
}

func (me *Tidwall[T]) Count() int {
	return me.tree.Len()
}

func (me *Tidwall[T]) ObjectAt(index int) any {
	item, ok := me.tree.GetAt(index)
	if !ok {
		panic(proxyiter.IndexOutOfRangeError{Index: index, Count: me.tree.Len()})
	}
	return item
}

func TidwallCollection[T any](tree *btree.BTreeG[T]) proxyiter.Collection[T] {
	return proxyiter.CollectionOf[T](NewTidwall(tree))
}
