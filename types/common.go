// Package types provides generic helpers shared by the parser packages.
package types

// KeyValue is a key/value pair as yielded by ordered containers.
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
