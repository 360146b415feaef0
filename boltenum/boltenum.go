// Package boltenum exposes bbolt buckets as foreign enumerables.
package boltenum

import (
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"github.com/anacrolix/proxyiter"
)

// Item is a key-value pair from a bucket. Both slices belong to the transaction they were read in.
type Item struct {
	Key   []byte
	Value []byte
}

// Cursor walks a bucket in key order. It's only valid for the life of the transaction that
// produced the bucket. Nested buckets show up as items with a nil Value.
type Cursor struct {
	c       *bbolt.Cursor
	started bool
	ended   bool
}

var _ interface {
	proxyiter.Enumerable
	proxyiter.Resetter
} = (*Cursor)(nil)

func NewCursor(b *bbolt.Bucket) *Cursor {
	return &Cursor{c: b.Cursor()}
}

func (me *Cursor) NextObject() (any, bool) {
	if me.ended {
		return nil, false
	}
	var k, v []byte
	if me.started {
		k, v = me.c.Next()
	} else {
		k, v = me.c.First()
		me.started = true
	}
	if k == nil {
		me.ended = true
		return nil, false
	}
	return Item{k, v}, true
}

func (me *Cursor) Reset() {
	me.started = false
	me.ended = false
}

// Items is the bucket as a sequence of Items.
func Items(b *bbolt.Bucket) proxyiter.Sequence[Item] {
	return proxyiter.Of[Item](NewCursor(b))
}

// View runs f over the named top-level bucket inside a read transaction.
func View(db *bbolt.DB, bucket []byte, f func(proxyiter.Sequence[Item]) error) error {
	return db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return errors.Errorf("bucket %q not found", bucket)
		}
		return errors.Wrapf(f(Items(b)), "viewing bucket %q", bucket)
	})
}
