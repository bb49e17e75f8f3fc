package dataset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateDefaultScenario(t *testing.T) {
	records := Generate(NewRand(DefaultSeed), DefaultParams())
	require.Len(t, records, 250+80+120)
	for i, r := range records {
		require.Equal(t, fmt.Sprintf("Species %d", i), r.SpeciesID)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, -7, 1 << 40} {
		a := Generate(NewRand(seed), DefaultParams())
		b := Generate(NewRand(seed), DefaultParams())
		require.Equal(t, a, b, "seed %d", seed)
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a := Generate(NewRand(1), DefaultParams())
	b := Generate(NewRand(2), DefaultParams())
	require.NotEqual(t, a, b)
}

func TestGenerateClipsChange(t *testing.T) {
	p := DefaultParams()
	// Wide groups so both bounds are hit.
	p.Groups = []Group{{Name: "wide", Count: 2000, Mean: 20, Spread: 400}}
	records := Generate(NewRand(7), p)

	var sawLow, sawHigh bool
	for _, r := range records {
		require.GreaterOrEqual(t, r.PercentChange, -98.0)
		require.LessOrEqual(t, r.PercentChange, 140.0)
		sawLow = sawLow || r.PercentChange == -98
		sawHigh = sawHigh || r.PercentChange == 140
	}
	require.True(t, sawLow, "expected some values clipped to the lower bound")
	require.True(t, sawHigh, "expected some values clipped to the upper bound")
}

func TestGenerateJitterRange(t *testing.T) {
	for _, r := range Generate(NewRand(DefaultSeed), DefaultParams()) {
		require.GreaterOrEqual(t, r.Jitter, -0.3)
		require.LessOrEqual(t, r.Jitter, 0.3)
	}
}

func TestGenerateDrawOrder(t *testing.T) {
	p := DefaultParams()
	records := Generate(NewRand(DefaultSeed), p)

	rng := NewRand(DefaultSeed)
	var changes []float64
	for _, g := range p.Groups {
		for i := 0; i < g.Count; i++ {
			changes = append(changes, clip(g.Mean+g.Spread*rng.NormFloat64(), p.ClipLow, p.ClipHigh))
		}
	}
	jitter := make([]float64, len(changes))
	for i := range jitter {
		jitter[i] = -0.3 + 0.6*rng.Float64()
	}
	for i := range changes {
		require.Equal(t, changes[i], records[i].PercentChange, "change %d", i)
		require.Equal(t, jitter[i], records[i].Jitter, "jitter %d", i)
		require.Equal(t, rng.Float64() < 0.4, records[i].Significant, "significant %d", i)
	}
}

func TestGenerateSignificanceRate(t *testing.T) {
	p := DefaultParams()
	p.Groups = []Group{{Name: "all", Count: 20000, Mean: 0, Spread: 10}}
	records := Generate(NewRand(3), p)

	sig := 0
	for _, r := range records {
		if r.Significant {
			sig++
		}
	}
	rate := float64(sig) / float64(len(records))
	require.InDelta(t, 0.4, rate, 0.02)
}

func TestGenerateEmptyGroups(t *testing.T) {
	p := DefaultParams()
	p.Groups = nil
	require.Empty(t, Generate(NewRand(1), p))

	p.Groups = []Group{{Name: "neg", Count: -5}}
	require.Empty(t, Generate(NewRand(1), p))
}

func TestGroupMeansRoughlyHold(t *testing.T) {
	records := Generate(NewRand(DefaultSeed), DefaultParams())
	mean := func(rs []Record) float64 {
		sum := 0.0
		for _, r := range rs {
			sum += r.PercentChange
		}
		return sum / float64(len(rs))
	}
	require.InDelta(t, -65, mean(records[:250]), 5)
	require.InDelta(t, 0, mean(records[250:330]), 5)
	require.InDelta(t, 60, mean(records[330:]), 10)
}
