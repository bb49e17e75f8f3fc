package dataset

// Classify derives the fill color and border width of a record.
func Classify(r Record) Style {
	s := Style{Trend: TrendStable, Color: ColorStable}
	switch {
	case r.PercentChange < -TrendThreshold:
		s.Trend, s.Color = TrendDeclining, ColorDeclining
	case r.PercentChange > TrendThreshold:
		s.Trend, s.Color = TrendImproving, ColorImproving
	}
	if r.Significant {
		s.BorderWidth = SignificantBorderWidth
	}
	return s
}

// StyleAll classifies each record independently, keeping order.
func StyleAll(records []Record) []Styled {
	out := make([]Styled, len(records))
	for i, r := range records {
		out[i] = Styled{Record: r, Style: Classify(r)}
	}
	return out
}
