package perf

import (
	"hash/maphash"
	"time"

	"github.com/pkg/errors"

	"github.com/g-m-twostay/hashtables"
	"github.com/g-m-twostay/hashtables/Maps"
	"github.com/g-m-twostay/hashtables/Maps/ChainedMap"
	"github.com/g-m-twostay/hashtables/Maps/OpenMap"
)

const (
	VariantChained   = "chained"
	HashXXH3         = "xxh3"
	HashXXHash       = "xxhash"
	HashMapHash      = "maphash"
	DefaultKeys      = 1000
	DefaultReportDur = 10 * time.Second
)

type Config struct {
	// Variant is "chained" or one of the open addressing disciplines, "first-fit" or "robin-hood".
	Variant string
	// Keys is the number of live keys in the sliding window.
	Keys int
	// Ops is the number of rounds, each doing a hit, a miss, a removal and an insertion. 0 runs until the
	// context is done.
	Ops             int
	Hash            string
	InitialCapacity int
	// MaxLoadFactor of 0 uses the variant's default.
	MaxLoadFactor float64
	NoResize      bool
	ReportEvery   time.Duration
}

func (c Config) Validate() error {
	if c.Variant != VariantChained {
		if _, err := Maps.ParseDiscipline(c.Variant); err != nil {
			return errors.Wrapf(err, "invalid variant '%s'", c.Variant)
		}
		if c.MaxLoadFactor >= 1 {
			return errors.Errorf("max load factor must be below 1 for open addressing, got %v", c.MaxLoadFactor)
		}
	}
	if c.Keys < 1 {
		return errors.Errorf("keys must be positive, got %d", c.Keys)
	}
	if c.Ops < 0 {
		return errors.Errorf("ops can't be negative, got %d", c.Ops)
	}
	if c.MaxLoadFactor < 0 {
		return errors.Errorf("max load factor can't be negative, got %v", c.MaxLoadFactor)
	}
	if c.ReportEvery <= 0 {
		return errors.Errorf("report interval must be positive, got %v", c.ReportEvery)
	}
	if _, err := hashFunc(c.Hash); err != nil {
		return err
	}
	return nil
}

func hashFunc(name string) (func(uint64) uint64, error) {
	switch name {
	case HashXXH3:
		return hashtables.Integer[uint64](hashtables.MakeHasher()), nil
	case HashXXHash:
		return hashtables.XXHashUint64, nil
	case HashMapHash:
		return hashtables.Comparable[uint64](maphash.MakeSeed()), nil
	}
	return nil, errors.Errorf("unknown hash function: '%s'", name)
}

// NewMap builds the map selected by c.
func NewMap(c Config) (Maps.Map[uint64, uint64], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	hashF, _ := hashFunc(c.Hash)
	cfg := Maps.Config{
		InitialCapacity: c.InitialCapacity,
		MaxLoadFactor:   c.MaxLoadFactor,
		ShouldResize:    !c.NoResize,
		Logger:          logger(),
	}
	if c.Variant == VariantChained {
		return ChainedMap.NewWithConfig[uint64, uint64](cfg, hashF), nil
	}
	cfg.Discipline, _ = Maps.ParseDiscipline(c.Variant)
	return OpenMap.NewWithConfig[uint64, uint64](cfg, hashF), nil
}
