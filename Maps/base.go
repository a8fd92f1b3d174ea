/*
Package Maps holds what the single-threaded hash tables in its sub packages share: the Map contract, the
construction-time Config and the probing Discipline of open addressing.

# Variants
ChainedMap resolves collisions with one unordered bucket slice per hash index. OpenMap keeps every entry in a
single flat slot array and probes linearly from the hash-derived index, either first-fit or with Robin-Hood
displacement.

# Growth
Tables only grow. Once the load factor, live entries over capacity, meets Config.MaxLoadFactor, the next
Insert doubles the capacity and reinserts every entry in one synchronous pass before proceeding. That pass is
O(n) and is the latency spike to expect at growth boundaries.

# Concurrency
None of the maps lock anything. Serialize access externally when sharing one across goroutines.
*/
package Maps

import "log/slog"

const (
	DefaultInitialCapacity             = 16
	DefaultChainedLoadFactor   float64 = 0.6
	DefaultFirstFitLoadFactor  float64 = 0.6
	DefaultRobinHoodLoadFactor float64 = 0.9 //Robin-Hood keeps probe lengths even, so it can run fuller.
)

// Config is fixed for a map's lifetime.
type Config struct {
	InitialCapacity int
	MaxLoadFactor   float64
	// ShouldResize=false pins the capacity, which is only useful to benchmark or test fixed size behavior.
	ShouldResize bool
	Discipline   Discipline //ignored by ChainedMap.
	Logger       *slog.Logger
}

func DefaultChainedConfig() Config {
	return Config{InitialCapacity: DefaultInitialCapacity, MaxLoadFactor: DefaultChainedLoadFactor, ShouldResize: true}
}

func DefaultOpenConfig() Config {
	return Config{InitialCapacity: DefaultInitialCapacity, MaxLoadFactor: DefaultFirstFitLoadFactor, ShouldResize: true, Discipline: FirstFit}
}

func DefaultRobinHoodConfig() Config {
	return Config{InitialCapacity: DefaultInitialCapacity, MaxLoadFactor: DefaultRobinHoodLoadFactor, ShouldResize: true, Discipline: RobinHood}
}

// Normalize replaces the out of range fields of c by the ones of def. When open is set, a load factor of 1 or
// more is out of range too, since a full table has no empty slot to end a probe.
func (c Config) Normalize(def Config, open bool) Config {
	if c.InitialCapacity < 1 {
		c.InitialCapacity = def.InitialCapacity
	}
	if c.MaxLoadFactor <= 0 || (open && c.MaxLoadFactor >= 1) {
		c.MaxLoadFactor = def.MaxLoadFactor
	}
	if !c.Discipline.Valid() {
		c.Discipline = def.Discipline
	}
	return c
}
