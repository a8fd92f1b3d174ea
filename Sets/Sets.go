package Sets

// Set is the contract of the sets in the sub packages.
type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
}
