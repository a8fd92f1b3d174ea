package perf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/hashtables/Maps"
	"github.com/g-m-twostay/hashtables/Maps/ChainedMap"
	"github.com/g-m-twostay/hashtables/Maps/OpenMap"
)

func testConfig(variant, hash string) Config {
	return Config{
		Variant:     variant,
		Keys:        DefaultKeys,
		Ops:         5000,
		Hash:        hash,
		ReportEvery: time.Hour,
	}
}

func TestPerf_Run(t *testing.T) {
	for _, variant := range []string{VariantChained, Maps.FirstFit.String(), Maps.RobinHood.String()} {
		for _, hash := range []string{HashXXH3, HashXXHash, HashMapHash} {
			t.Run(variant+"/"+hash, func(t *testing.T) {
				r, err := New(testConfig(variant, hash)).Run(context.Background())
				require.NoError(t, err)
				assert.Equal(t, 5000, r.Rounds)
				assert.Equal(t, DefaultKeys, r.Len)
				assert.Positive(t, r.Cap)
				assert.LessOrEqual(t, r.Get.P50, r.Get.Max)
				assert.LessOrEqual(t, r.Insert.P99, r.Insert.Max)
			})
		}
	}
}

func TestPerf_NoResize(t *testing.T) {
	c := testConfig(Maps.FirstFit.String(), HashXXH3)
	c.NoResize = true
	c.InitialCapacity = 256
	c.Keys = 500
	r, err := New(c).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 256, r.Cap)
	assert.Equal(t, 500, r.Len)
}

func TestPerf_Cancel(t *testing.T) {
	c := testConfig(VariantChained, HashXXH3)
	c.Ops = 0
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, err := New(c).Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, r.Rounds)
	assert.Equal(t, DefaultKeys, r.Len)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, testConfig(VariantChained, HashXXH3).Validate())

	c := testConfig("cuckoo", HashXXH3)
	assert.ErrorContains(t, c.Validate(), "cuckoo")

	c = testConfig(VariantChained, "md5")
	assert.ErrorContains(t, c.Validate(), "md5")

	c = testConfig(Maps.RobinHood.String(), HashXXH3)
	c.MaxLoadFactor = 1
	assert.Error(t, c.Validate())
	c.Variant = VariantChained
	assert.NoError(t, c.Validate())

	c.Keys = 0
	assert.Error(t, c.Validate())
	c.Keys, c.Ops = 1, -1
	assert.Error(t, c.Validate())
	c.Ops, c.ReportEvery = 0, 0
	assert.Error(t, c.Validate())
}

func TestNewMap(t *testing.T) {
	m, err := NewMap(testConfig(VariantChained, HashXXH3))
	require.NoError(t, err)
	assert.IsType(t, &ChainedMap.ChainedMap[uint64, uint64]{}, m)

	m, err = NewMap(testConfig("robin", HashXXHash))
	require.NoError(t, err)
	require.IsType(t, &OpenMap.OpenMap[uint64, uint64]{}, m)
	assert.Equal(t, Maps.RobinHood, m.(*OpenMap.OpenMap[uint64, uint64]).Discipline())

	_, err = NewMap(testConfig("", HashXXH3))
	assert.Error(t, err)
}
