/*
Package proxyiter adapts foreign enumerables to Go iteration.

A foreign enumerable is anything that hands out raw elements one at a time and signals when it
has run out, typically a cursor owned by a native collection. Wrap it in a Sequence to get a
typed iter.Seq:

	seq := proxyiter.Of[*Proxy](arr)
	for p := range seq.All() {
		fmt.Println(p.Value())
	}

Iterators borrow the enumerable for their whole lifetime and must not be used after the
collection behind it is gone. Nothing here is safe for concurrent use, and mutating the
collection during a pass is undefined.
*/
package proxyiter
