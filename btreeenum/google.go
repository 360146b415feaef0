package btreeenum

import (
	"iter"

	"github.com/google/btree"

	"github.com/anacrolix/proxyiter"
)

// AscendSeq is the push iteration of a github.com/google/btree tree as an iter.Seq.
func AscendSeq[T any](tree *btree.BTreeG[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		tree.Ascend(btree.ItemIteratorG[T](yield))
	}
}

// NewGoogle pulls a google/btree tree one item at a time. The tree only offers push iteration,
// so the result is one-shot and should be stopped if abandoned.
func NewGoogle[T any](tree *btree.BTreeG[T]) *proxyiter.PullEnumerable {
	return proxyiter.FromSeq(AscendSeq(tree))
}
