package OpenMap

type slot[K comparable, V any] struct {
	key    K
	val    V
	origin int //index the key hashed to when it was placed.
	used   bool
}

// displacement of the occupant of the slot at position at.
func (s *slot[K, V]) displacement(at int) int {
	return at - s.origin
}

func (s *slot[K, V]) clear() {
	*s = slot[K, V]{}
}
