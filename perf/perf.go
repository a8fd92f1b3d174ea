package perf

import (
	"context"
	"log/slog"
	"time"

	"github.com/bmizerany/perks/quantile"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/g-m-twostay/hashtables/Maps"
)

var ErrInconsistent = errors.New("map returned an inconsistent result")

// Latency quantiles of one operation, in nanoseconds.
type Latency struct {
	P50, P95, P99, P999, Max float64
}

type Result struct {
	Rounds              int
	Get, Remove, Insert Latency
	Len, Cap            int
}

type Perf interface {
	// Run fills the map and then slides the window until the configured rounds are done or ctx is.
	Run(ctx context.Context) (Result, error)
}

func New(config Config) Perf {
	return &perf{
		config: config,
	}
}

type perf struct {
	config Config
	get    *quantile.Stream
	remove *quantile.Stream
	insert *quantile.Stream
}

// logger hands the maps the process wide slog logger, which the CLI backs with zerolog.
func logger() *slog.Logger {
	return slog.Default()
}

func newStream() *quantile.Stream {
	return quantile.NewTargeted(0.50, 0.95, 0.99, 0.999, 1.0)
}

func latency(q *quantile.Stream) Latency {
	return Latency{q.Query(0.5), q.Query(0.95), q.Query(0.99), q.Query(0.999), q.Query(1.0)}
}

func (p *perf) Run(ctx context.Context) (Result, error) {
	log.Info().
		Interface("config", p.config).
		Msg("Starting map perf run")

	m, err := NewMap(p.config)
	if err != nil {
		return Result{}, err
	}
	p.get, p.remove, p.insert = newStream(), newStream(), newStream()

	window := uint64(p.config.Keys)
	for i := uint64(1); i <= window; i++ {
		m.Insert(i, i)
	}
	log.Info().
		Str("keys", humanize.Comma(int64(m.Len()))).
		Int("capacity", m.Cap()).
		Msg("Filled the map")

	ticker := time.NewTicker(p.config.ReportEvery)
	defer ticker.Stop()

	rounds := 0
	for k := uint64(1); p.config.Ops == 0 || rounds < p.config.Ops; k++ {
		select {
		case <-ctx.Done():
			log.Info().Err(ctx.Err()).Msg("Stopping map perf run")
			return p.result(m, rounds), nil
		case <-ticker.C:
			p.report(m, rounds)
		default:
		}
		if err := p.round(m, k, window); err != nil {
			return p.result(m, rounds), err
		}
		rounds++
	}
	r := p.result(m, rounds)
	p.report(m, rounds)
	return r, nil
}

// round reads k+2/5 of the window (live), k+2*window (never inserted), then retires k and adds k+window.
func (p *perf) round(m Maps.Map[uint64, uint64], k, window uint64) error {
	hit, miss := k+window*2/5, k+2*window

	start := time.Now()
	v, ok := m.Get(hit)
	p.get.Insert(float64(time.Since(start).Nanoseconds()))
	if !ok || v != hit {
		return errors.Wrapf(ErrInconsistent, "get %d returned %d, %t", hit, v, ok)
	}

	start = time.Now()
	v, ok = m.Get(miss)
	p.get.Insert(float64(time.Since(start).Nanoseconds()))
	if ok {
		return errors.Wrapf(ErrInconsistent, "get %d of an absent key returned %d", miss, v)
	}

	start = time.Now()
	v, ok = m.Remove(k)
	p.remove.Insert(float64(time.Since(start).Nanoseconds()))
	if !ok || v != k {
		return errors.Wrapf(ErrInconsistent, "remove %d returned %d, %t", k, v, ok)
	}

	start = time.Now()
	m.Insert(k+window, k+window)
	p.insert.Insert(float64(time.Since(start).Nanoseconds()))

	if m.Len() != int(window) {
		return errors.Wrapf(ErrInconsistent, "expected %d keys, found %d", window, m.Len())
	}
	return nil
}

func (p *perf) result(m Maps.Map[uint64, uint64], rounds int) Result {
	return Result{
		Rounds: rounds,
		Get:    latency(p.get),
		Remove: latency(p.remove),
		Insert: latency(p.insert),
		Len:    m.Len(),
		Cap:    m.Cap(),
	}
}

func (p *perf) report(m Maps.Map[uint64, uint64], rounds int) {
	g, r, i := latency(p.get), latency(p.remove), latency(p.insert)
	log.Info().Msgf(`Stats - Rounds: %s - Keys: %s - Capacity: %s
	Get    latency ns: 50%% %6.0f - 95%% %6.0f - 99%% %6.0f - 99.9%% %6.0f - max %8.0f
	Remove latency ns: 50%% %6.0f - 95%% %6.0f - 99%% %6.0f - 99.9%% %6.0f - max %8.0f
	Insert latency ns: 50%% %6.0f - 95%% %6.0f - 99%% %6.0f - 99.9%% %6.0f - max %8.0f`,
		humanize.Comma(int64(rounds)),
		humanize.Comma(int64(m.Len())),
		humanize.Comma(int64(m.Cap())),
		g.P50, g.P95, g.P99, g.P999, g.Max,
		r.P50, r.P95, r.P99, r.P999, r.Max,
		i.P50, i.P95, i.P99, i.P999, i.Max,
	)
}
