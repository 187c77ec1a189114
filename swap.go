// Package mem exchanges the contents of caller-owned storage locations.
//
// Both operations are total: they never fail, never allocate, and never
// inspect the values they move. The pair of values reachable through the
// locations involved is exactly preserved across every call; only their
// positions change.
package mem

// Swap exchanges the values stored at a and b in place.
//
// Afterwards a holds b's prior value and b holds a's. The two pointers may
// refer to the same location, in which case the value is unchanged. The
// cost is constant regardless of T's size or structure.
func Swap[T any](a, b *T) {
	var tmp = *a
	*a = *b
	*b = tmp
}
