package ChainedMap

type entry[K comparable, V any] struct {
	key K
	val V
}

// bucket holds the entries whose hash maps to the same index, in no particular order.
type bucket[K comparable, V any] []entry[K, V]

// find returns the position of key in the bucket or -1.
func (b bucket[K, V]) find(key K) int {
	for i := range b {
		if b[i].key == key {
			return i
		}
	}
	return -1
}

// swapRemove removes the entry at i by moving the last entry into its place.
func (b *bucket[K, V]) swapRemove(i int) V {
	s := *b
	last := len(s) - 1
	val := s[i].val
	s[i] = s[last]
	s[last] = entry[K, V]{} //drop references held by the vacated tail.
	*b = s[:last]
	return val
}
