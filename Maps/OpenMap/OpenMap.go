package OpenMap

import (
	"log/slog"

	"github.com/g-m-twostay/hashtables/Maps"
	"github.com/g-m-twostay/hashtables/Maps/internal"
)

var _ Maps.Map[int, int] = (*OpenMap[int, int])(nil)

// OpenMap is a hash table using open addressing with forward only linear probing. It's not safe for
// concurrent use.
//
// Keys hash into [0, Cap()). A probe never wraps around to index 0; when one runs off the end of the slots,
// another slot is appended. Resizing ahead of a full table keeps that a rare fallback.
type OpenMap[K comparable, V any] struct {
	slots        []slot[K, V]
	mod          int //number of ideal indexes; len(slots) >= mod.
	size         int
	maxLoad      float64
	shouldResize bool
	discipline   Maps.Discipline
	HashF        func(K) uint64
	logger       *slog.Logger
}

// New first-fit OpenMap with Maps.DefaultOpenConfig.
func New[K comparable, V any](hashF func(K) uint64) *OpenMap[K, V] {
	return NewWithConfig[K, V](Maps.DefaultOpenConfig(), hashF)
}

// NewRobinHood OpenMap with Maps.DefaultRobinHoodConfig.
func NewRobinHood[K comparable, V any](hashF func(K) uint64) *OpenMap[K, V] {
	return NewWithConfig[K, V](Maps.DefaultRobinHoodConfig(), hashF)
}

// NewWithConfig creates an OpenMap with cfg.InitialCapacity slots. Invalid fields of cfg fall back to the
// defaults of its discipline.
func NewWithConfig[K comparable, V any](cfg Maps.Config, hashF func(K) uint64) *OpenMap[K, V] {
	def := Maps.DefaultOpenConfig()
	if cfg.Discipline == Maps.RobinHood {
		def = Maps.DefaultRobinHoodConfig()
	}
	cfg = cfg.Normalize(def, true)
	return &OpenMap[K, V]{
		slots:        make([]slot[K, V], cfg.InitialCapacity),
		mod:          cfg.InitialCapacity,
		maxLoad:      cfg.MaxLoadFactor,
		shouldResize: cfg.ShouldResize,
		discipline:   cfg.Discipline,
		HashF:        hashF,
		logger:       cfg.Logger,
	}
}

func (u *OpenMap[K, V]) index(key K) int {
	return internal.Index(u.HashF(key), u.mod)
}

// find returns the position of key or -1. Every probe ends at the first empty slot.
func (u *OpenMap[K, V]) find(key K) int {
	i0 := u.index(key)
	for i := i0; i < len(u.slots) && u.slots[i].used; i++ {
		if u.slots[i].key == key {
			return i
		}
		// A resident closer to its ideal index than key would be here means key was never placed further on.
		if u.discipline == Maps.RobinHood && u.slots[i].displacement(i) < i-i0 {
			break
		}
	}
	return -1
}

// Insert val under key, overwriting the value of an existing key. The table is grown first if it's loaded up
// to the threshold.
func (u *OpenMap[K, V]) Insert(key K, val V) {
	if u.shouldResize && internal.Exceeds(u.size, u.mod, u.maxLoad) {
		u.resize()
	}
	if i := u.find(key); i > -1 {
		u.slots[i].val = val
		return
	}
	u.place(slot[K, V]{key: key, val: val, origin: u.index(key), used: true})
	u.size++
}

// place puts the absent entry s on its probe sequence according to the discipline.
func (u *OpenMap[K, V]) place(s slot[K, V]) {
	i := s.origin
	for ; i < len(u.slots) && u.slots[i].used; i++ {
		if u.discipline == Maps.RobinHood && s.displacement(i) > u.slots[i].displacement(i) {
			s, u.slots[i] = u.slots[i], s //carry on with the evicted resident.
		}
	}
	if i < len(u.slots) {
		u.slots[i] = s
		return
	}
	if u.logger != nil {
		u.logger.Debug("Probe ran off the table, appending a slot",
			slog.Int("slots", len(u.slots)),
			slog.Int("capacity", u.mod),
			slog.Int("size", u.size),
		)
	}
	u.slots = append(u.slots, s)
}

func (u *OpenMap[K, V]) Get(key K) (val V, ok bool) {
	if i := u.find(key); i > -1 {
		val, ok = u.slots[i].val, true
	}
	return
}

func (u *OpenMap[K, V]) GetPtr(key K) *V {
	if i := u.find(key); i > -1 {
		return &u.slots[i].val
	}
	return nil
}

// Remove key and return its value. The slots after it are shifted back so that no probe for a remaining key
// meets the new hole.
func (u *OpenMap[K, V]) Remove(key K) (val V, ok bool) {
	if i := u.find(key); i > -1 {
		val, ok = u.slots[i].val, true
		u.slots[i].clear()
		if u.discipline == Maps.RobinHood {
			u.shiftBack(i)
		} else {
			u.fillHole(i)
		}
		u.size--
	}
	return
}

// shiftBack moves every displaced entry following the hole one slot closer to its ideal index. Origins in a
// Robin-Hood run never decrease, so the run stays ordered.
func (u *OpenMap[K, V]) shiftBack(hole int) {
	for i := hole + 1; i < len(u.slots) && u.slots[i].used && u.slots[i].displacement(i) > 0; i++ {
		u.slots[i-1] = u.slots[i]
		u.slots[i].clear()
	}
}

// fillHole repeatedly moves the next entry of the run that may legally live in the hole into it, until the
// run ends.
func (u *OpenMap[K, V]) fillHole(hole int) {
	for i := hole + 1; i < len(u.slots) && u.slots[i].used; i++ {
		if u.slots[i].origin <= hole {
			u.slots[hole] = u.slots[i]
			u.slots[i].clear()
			hole = i
		}
	}
}

// resize doubles the capacity and places every entry again with its ideal index under the new capacity.
func (u *OpenMap[K, V]) resize() {
	old := u.slots
	u.mod <<= 1
	u.slots = make([]slot[K, V], u.mod)
	for _, s := range old {
		if s.used {
			s.origin = u.index(s.key)
			u.place(s)
		}
	}
	if u.logger != nil {
		u.logger.Debug("Resized open addressed map",
			slog.Int("from", len(old)),
			slog.Int("to", u.mod),
			slog.Int("size", u.size),
			slog.String("discipline", u.discipline.String()),
		)
	}
}

// Len is the number of entries.
func (u *OpenMap[K, V]) Len() int {
	return u.size
}

// Cap is the number of ideal indexes keys hash into. The slot array can be a bit longer.
func (u *OpenMap[K, V]) Cap() int {
	return u.mod
}

func (u *OpenMap[K, V]) Discipline() Maps.Discipline {
	return u.discipline
}

type Stats struct {
	Len, Slots, MaxDisplacement int
	MeanDisplacement, LoadFactor float64
}

// Stats walks all slots.
func (u *OpenMap[K, V]) Stats() (s Stats) {
	s.Len, s.Slots = u.size, len(u.slots)
	total := 0
	for i := range u.slots {
		if u.slots[i].used {
			d := u.slots[i].displacement(i)
			total += d
			s.MaxDisplacement = max(s.MaxDisplacement, d)
		}
	}
	if u.size > 0 {
		s.MeanDisplacement = float64(total) / float64(u.size)
	}
	s.LoadFactor = float64(u.size) / float64(u.mod)
	return
}
