package Maps

// Map is the contract shared by every container in this module. None of the
// operations fail; an absent key is reported through the bool result or a nil
// pointer.
type Map[K comparable, V any] interface {
	// Insert upserts val under key.
	Insert(key K, val V)
	Get(key K) (V, bool)
	// GetPtr returns a pointer to the stored value. It's only valid until the next mutation of the map.
	GetPtr(key K) *V
	// Remove deletes key and hands back the value it held.
	Remove(key K) (V, bool)
	Len() int
	Cap() int
}
