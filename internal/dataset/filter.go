package dataset

// Criteria narrows the visible record set.
type Criteria struct {
	Low             float64
	High            float64
	SignificantOnly bool
}

// DefaultCriteria shows every record the generator can produce.
func DefaultCriteria() Criteria {
	return Criteria{Low: -100, High: 150}
}

// Matches reports whether r passes both the range and significance predicate.
func (c Criteria) Matches(r Record) bool {
	if r.PercentChange < c.Low || r.PercentChange > c.High {
		return false
	}
	if c.SignificantOnly && !r.Significant {
		return false
	}
	return true
}

// Filter returns the records matching c in their original order. An empty
// result is valid; Low > High always yields one.
func Filter(records []Record, c Criteria) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !c.Matches(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}
