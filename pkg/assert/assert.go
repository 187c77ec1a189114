package assert

import (
	"fmt"
	"runtime/debug"
)

func Assert(condition bool) {
	if !condition {
		s := debug.Stack()

		panic("assertion failed:\n" + string(s))
	}
}

// InBounds checks that i is a valid index for a collection of length n.
func InBounds(i, n int) {
	if i < 0 || i >= n {
		s := debug.Stack()

		panic(fmt.Sprintf("index %d out of range [0, %d):\n", i, n) + string(s))
	}
}
