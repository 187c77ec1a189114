package generics

import (
	"reflect"
)

// SizeOf returns the size of the type T in bytes.
func SizeOf[T any]() int {
	return int(reflect.TypeOf((*T)(nil)).Elem().Size())
}
