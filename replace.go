package mem

// Replace installs value into slot and returns the previous occupant.
//
// The new value is held in a local temporary and swapped with slot, so
// exactly one value enters the slot and exactly one leaves it. Ownership of
// the returned value passes to the caller.
func Replace[T any](slot *T, value T) T {
	Swap(slot, &value)
	return value
}
