package dataset

import "math/rand"

// Group is one normally distributed sample group.
type Group struct {
	Name   string
	Count  int
	Mean   float64
	Spread float64
}

// Params controls synthetic generation. The zero value is not useful; start
// from DefaultParams.
type Params struct {
	Groups                 []Group
	ClipLow                float64
	ClipHigh               float64
	JitterSpread           float64
	SignificantProbability float64
}

// DefaultGroups returns the large-decline, stable and improving groups in
// draw order.
func DefaultGroups() []Group {
	return []Group{
		{Name: "decline", Count: 250, Mean: -65, Spread: 18},
		{Name: "stable", Count: 80, Mean: 0, Spread: 10},
		{Name: "improving", Count: 120, Mean: 60, Spread: 35},
	}
}

func DefaultParams() Params {
	return Params{
		Groups:                 DefaultGroups(),
		ClipLow:                -98,
		ClipHigh:               140,
		JitterSpread:           0.3,
		SignificantProbability: 0.4,
	}
}

// DefaultSeed is the seed every dashboard render uses unless configured.
const DefaultSeed int64 = 42

// NewRand returns an explicitly seeded source. A *rand.Rand is not safe for
// concurrent use; create one per pipeline run.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Generate draws every group from rng and returns one record per sample.
//
// Draw order is part of the contract: all normal draws for each group in
// order, then one jitter draw per record, then one significance draw per
// record. Reordering these changes the output for a given seed.
func Generate(rng *rand.Rand, p Params) []Record {
	total := 0
	for _, g := range p.Groups {
		if g.Count > 0 {
			total += g.Count
		}
	}

	changes := make([]float64, 0, total)
	for _, g := range p.Groups {
		for i := 0; i < g.Count; i++ {
			changes = append(changes, g.Mean+g.Spread*rng.NormFloat64())
		}
	}
	for i, v := range changes {
		changes[i] = clip(v, p.ClipLow, p.ClipHigh)
	}

	records := make([]Record, len(changes))
	for i, v := range changes {
		records[i] = Record{SpeciesID: speciesID(i), PercentChange: v}
	}
	for i := range records {
		records[i].Jitter = -p.JitterSpread + 2*p.JitterSpread*rng.Float64()
	}
	for i := range records {
		records[i].Significant = rng.Float64() < p.SignificantProbability
	}
	return records
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
