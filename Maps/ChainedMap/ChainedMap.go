package ChainedMap

import (
	"log/slog"

	"github.com/g-m-twostay/hashtables/Maps"
	"github.com/g-m-twostay/hashtables/Maps/internal"
)

var _ Maps.Map[int, int] = (*ChainedMap[int, int])(nil)

// ChainedMap is a hash table resolving collisions by separate chaining. It's not safe for concurrent use.
type ChainedMap[K comparable, V any] struct {
	buckets      []bucket[K, V]
	size         int
	maxLoad      float64
	shouldResize bool
	HashF        func(K) uint64
	logger       *slog.Logger
}

// New ChainedMap with Maps.DefaultChainedConfig.
func New[K comparable, V any](hashF func(K) uint64) *ChainedMap[K, V] {
	return NewWithConfig[K, V](Maps.DefaultChainedConfig(), hashF)
}

// NewWithConfig creates a ChainedMap with cfg.InitialCapacity buckets. Invalid fields of cfg fall back to the
// defaults. cfg.Discipline is ignored.
func NewWithConfig[K comparable, V any](cfg Maps.Config, hashF func(K) uint64) *ChainedMap[K, V] {
	cfg = cfg.Normalize(Maps.DefaultChainedConfig(), false)
	return &ChainedMap[K, V]{
		buckets:      make([]bucket[K, V], cfg.InitialCapacity),
		maxLoad:      cfg.MaxLoadFactor,
		shouldResize: cfg.ShouldResize,
		HashF:        hashF,
		logger:       cfg.Logger,
	}
}

func (u *ChainedMap[K, V]) index(key K) int {
	return internal.Index(u.HashF(key), len(u.buckets))
}

// Insert val under key, overwriting the value of an existing key. The table is grown first if it's loaded up
// to the threshold.
func (u *ChainedMap[K, V]) Insert(key K, val V) {
	if u.shouldResize && internal.Exceeds(u.size, len(u.buckets), u.maxLoad) {
		u.resize()
	}
	b := &u.buckets[u.index(key)]
	if i := b.find(key); i > -1 {
		(*b)[i].val = val
	} else {
		*b = append(*b, entry[K, V]{key, val})
		u.size++
	}
}

func (u *ChainedMap[K, V]) Get(key K) (val V, ok bool) {
	if p := u.GetPtr(key); p != nil {
		val, ok = *p, true
	}
	return
}

func (u *ChainedMap[K, V]) GetPtr(key K) *V {
	b := u.buckets[u.index(key)]
	if i := b.find(key); i > -1 {
		return &b[i].val
	}
	return nil
}

// Remove key and return its value. Bucket order isn't preserved.
func (u *ChainedMap[K, V]) Remove(key K) (val V, ok bool) {
	b := &u.buckets[u.index(key)]
	if i := b.find(key); i > -1 {
		val, ok = b.swapRemove(i), true
		u.size--
	}
	return
}

// resize doubles the number of buckets and redistributes every entry.
func (u *ChainedMap[K, V]) resize() {
	old := u.buckets
	u.buckets = make([]bucket[K, V], len(old)<<1)
	for _, b := range old {
		for _, e := range b {
			nb := &u.buckets[u.index(e.key)]
			*nb = append(*nb, e)
		}
	}
	if u.logger != nil {
		u.logger.Debug("Resized chained map",
			slog.Int("from", len(old)),
			slog.Int("to", len(u.buckets)),
			slog.Int("size", u.size),
		)
	}
}

// Len is the number of entries.
func (u *ChainedMap[K, V]) Len() int {
	return u.size
}

// Cap is the number of buckets.
func (u *ChainedMap[K, V]) Cap() int {
	return len(u.buckets)
}

type Stats struct {
	Len, Buckets, Empty, LongestChain int
	LoadFactor                        float64
}

// Stats walks all buckets.
func (u *ChainedMap[K, V]) Stats() (s Stats) {
	s.Len, s.Buckets = u.size, len(u.buckets)
	for _, b := range u.buckets {
		if len(b) == 0 {
			s.Empty++
		}
		s.LongestChain = max(s.LongestChain, len(b))
	}
	s.LoadFactor = float64(u.size) / float64(len(u.buckets))
	return
}
