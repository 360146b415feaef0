package proxyiter

import (
	"iter"
)

// PullEnumerable drives a push iterator one element at a time. It's one-shot: once drained,
// further passes see nothing.
type PullEnumerable struct {
	next func() (any, bool)
	stop func()
}

var _ Enumerable = (*PullEnumerable)(nil)

// FromSeq adapts seq. Call Stop if the enumerable is abandoned before it's exhausted.
func FromSeq[V any](seq iter.Seq[V]) *PullEnumerable {
	next, stop := iter.Pull(seq)
	return &PullEnumerable{
		next: func() (any, bool) {
			v, ok := next()
			if !ok {
				return nil, false
			}
			return v, true
		},
		stop: stop,
	}
}

func (me *PullEnumerable) NextObject() (any, bool) {
	return me.next()
}

func (me *PullEnumerable) Stop() {
	me.stop()
}
