package comparisons

import (
	"math/rand/v2"
	"testing"

	godsmap "github.com/emirpasic/gods/maps/hashmap"
	"github.com/g-m-twostay/hashtables/Maps"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/stretchr/testify/require"
)

// Every map is checked against ordered and hashed reference implementations on the same random operations.
const (
	testOpsN     = 1 << 15
	testKeyRange = 1 << 11
)

type pair struct {
	k, v uint64
}

func lessPair(a, b pair) bool {
	return a.k < b.k
}

// Less makes pair an llrb.Item.
func (a pair) Less(than llrb.Item) bool {
	return a.k < than.(pair).k
}

type oracle interface {
	put(k, v uint64)
	get(k uint64) (uint64, bool)
	remove(k uint64) (uint64, bool)
	len() int
}

type godsOracle struct{ m *godsmap.Map }

func (o godsOracle) put(k, v uint64) { o.m.Put(k, v) }
func (o godsOracle) get(k uint64) (uint64, bool) {
	if v, ok := o.m.Get(k); ok {
		return v.(uint64), true
	}
	return 0, false
}
func (o godsOracle) remove(k uint64) (uint64, bool) {
	v, ok := o.get(k)
	if ok {
		o.m.Remove(k)
	}
	return v, ok
}
func (o godsOracle) len() int { return o.m.Size() }

type btreeOracle struct{ t *btree.BTreeG[pair] }

func (o btreeOracle) put(k, v uint64) { o.t.ReplaceOrInsert(pair{k, v}) }
func (o btreeOracle) get(k uint64) (uint64, bool) {
	p, ok := o.t.Get(pair{k: k})
	return p.v, ok
}
func (o btreeOracle) remove(k uint64) (uint64, bool) {
	p, ok := o.t.Delete(pair{k: k})
	return p.v, ok
}
func (o btreeOracle) len() int { return o.t.Len() }

type llrbOracle struct{ t *llrb.LLRB }

func (o llrbOracle) put(k, v uint64) { o.t.ReplaceOrInsert(pair{k, v}) }
func (o llrbOracle) get(k uint64) (uint64, bool) {
	if p := o.t.Get(pair{k: k}); p != nil {
		return p.(pair).v, true
	}
	return 0, false
}
func (o llrbOracle) remove(k uint64) (uint64, bool) {
	if p := o.t.Delete(pair{k: k}); p != nil {
		return p.(pair).v, true
	}
	return 0, false
}
func (o llrbOracle) len() int { return o.t.Len() }

var oracles = []struct {
	name string
	make func() oracle
}{
	{"gods", func() oracle { return godsOracle{godsmap.New()} }},
	{"btree", func() oracle { return btreeOracle{btree.NewG[pair](8, lessPair)} }},
	{"llrb", func() oracle { return llrbOracle{llrb.New()} }},
}

func runAgainst(t *testing.T, m Maps.Map[uint64, uint64], o oracle, seed uint64) {
	t.Helper()
	rg := rand.New(rand.NewPCG(seed, seed>>1))
	for i := range uint64(testOpsN) {
		k := rg.Uint64N(testKeyRange)
		switch rg.IntN(4) {
		case 0, 1:
			m.Insert(k, i)
			o.put(k, i)
		case 2:
			v, ok := m.Get(k)
			ov, ook := o.get(k)
			require.Equal(t, ook, ok, "get %d at op %d", k, i)
			require.Equal(t, ov, v, "get %d at op %d", k, i)
		case 3:
			v, ok := m.Remove(k)
			ov, ook := o.remove(k)
			require.Equal(t, ook, ok, "remove %d at op %d", k, i)
			require.Equal(t, ov, v, "remove %d at op %d", k, i)
		}
		require.Equal(t, o.len(), m.Len())
	}
	for k := range uint64(testKeyRange) {
		v, ok := m.Get(k)
		ov, ook := o.get(k)
		require.Equal(t, ook, ok)
		require.Equal(t, ov, v)
	}
}

func TestMaps_AgainstOracles(t *testing.T) {
	for _, v := range variants {
		for j, o := range oracles {
			t.Run(v.name+"/"+o.name, func(t *testing.T) {
				runAgainst(t, v.make(), o.make(), uint64(j+1))
			})
		}
	}
}

func TestMaps_Scenario(t *testing.T) {
	for _, vr := range variants {
		t.Run(vr.name, func(t *testing.T) {
			m := vr.make()
			m.Insert(1, 10)
			m.Insert(2, 20)
			m.Insert(2, 30)
			require.Equal(t, 2, m.Len())
			v, ok := m.Get(2)
			require.True(t, ok)
			require.Equal(t, uint64(30), v)
			v, ok = m.Remove(2)
			require.True(t, ok)
			require.Equal(t, uint64(30), v)
			require.Nil(t, m.GetPtr(2))
			require.Equal(t, 1, m.Len())
		})
	}
}
