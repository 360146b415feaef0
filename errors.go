package proxyiter

import (
	"fmt"
)

// IndexOutOfRangeError is the panic value of in-tree foreign collections indexed outside
// [0, Count).
type IndexOutOfRangeError struct {
	Index, Count int
}

func (me IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %v out of range [0, %v)", me.Index, me.Count)
}
