package listenum

import (
	g "github.com/anacrolix/generics"
	"github.com/elliotchance/orderedmap"

	"github.com/anacrolix/proxyiter"
)

// Entry is a key-value pair from an OrderedMap.
type Entry struct {
	Key, Value any
}

// OrderedMap walks an orderedmap.OrderedMap in insertion order, yielding Entries.
type OrderedMap struct {
	om   *orderedmap.OrderedMap
	next *orderedmap.Element
}

var _ interface {
	proxyiter.Enumerable
	proxyiter.Resetter
} = (*OrderedMap)(nil)

func NewOrderedMap(om *orderedmap.OrderedMap) *OrderedMap {
	ret := &OrderedMap{om: om}
	ret.Reset()
	return ret
}

func (me *OrderedMap) NextObject() (any, bool) {
	e := me.next
	if e == nil {
		return nil, false
	}
	me.next = e.Next()
	return Entry{e.Key, e.Value}, true
}

func (me *OrderedMap) Reset() {
	me.next = me.om.Front()
}

func Entries(om *orderedmap.OrderedMap) proxyiter.Sequence[Entry] {
	return proxyiter.Of[Entry](NewOrderedMap(om))
}

// Keys yields the map's keys as K. The first key that isn't a K ends the pass.
func Keys[K any](om *orderedmap.OrderedMap) proxyiter.Sequence[K] {
	return proxyiter.NewSequence[K](NewOrderedMap(om), func(raw any) g.Option[K] {
		return proxyiter.As[K](raw.(Entry).Key)
	})
}
