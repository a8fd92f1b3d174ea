package HashSet

import (
	"github.com/g-m-twostay/hashtables/Maps"
	"github.com/g-m-twostay/hashtables/Maps/OpenMap"
	"github.com/g-m-twostay/hashtables/Sets"
)

var _ Sets.Set[int] = (*HashSet[int])(nil)

// HashSet is a set on top of a Robin-Hood OpenMap with empty values. It's not safe for concurrent use.
type HashSet[E comparable] struct {
	m *OpenMap.OpenMap[E, struct{}]
}

// New HashSet of type E.
// size is used to calculate the initial table size that should handle size elements without resizing.
func New[E comparable](size uint, hashF func(E) uint64) *HashSet[E] {
	cfg := Maps.DefaultRobinHoodConfig()
	if c := int(float64(size)/cfg.MaxLoadFactor) + 1; c > cfg.InitialCapacity {
		cfg.InitialCapacity = c
	}
	return &HashSet[E]{OpenMap.NewWithConfig[E, struct{}](cfg, hashF)}
}

// Size of the set.
func (u *HashSet[E]) Size() uint {
	return uint(u.m.Len())
}

// Put e into the set. Returns true if e wasn't present before.
func (u *HashSet[E]) Put(e E) bool {
	if u.m.GetPtr(e) != nil {
		return false
	}
	u.m.Insert(e, struct{}{})
	return true
}

// Has e in the set. Returns true if e is present in the set.
func (u *HashSet[E]) Has(e E) bool {
	return u.m.GetPtr(e) != nil
}

// Remove e from the set. Returns true if the removal is successful.
func (u *HashSet[E]) Remove(e E) bool {
	_, ok := u.m.Remove(e)
	return ok
}
