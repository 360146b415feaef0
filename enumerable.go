package proxyiter

// Enumerable is the foreign enumeration capability: fetch the next raw element, or report the
// end of the sequence with ok false.
type Enumerable interface {
	NextObject() (obj any, ok bool)
}

type EnumerableFunc func() (any, bool)

func (f EnumerableFunc) NextObject() (any, bool) {
	return f()
}

// Resetter is implemented by enumerables whose cursor can be rewound. NewIterator calls Reset, so
// each pass over a Resetter starts from the first element. Enumerables without it continue from
// wherever their cursor was left.
type Resetter interface {
	Reset()
}

// Indexed is positional access into a foreign collection. ObjectAt requires 0 <= index < Count;
// what happens otherwise is up to the implementation.
type Indexed interface {
	Count() int
	ObjectAt(index int) any
}
