package dataset

// Summary holds the counts shown next to the chart.
type Summary struct {
	Shown       int
	Significant int
	Declining   int
	Stable      int
	Improving   int
}

func Summarize(points []Styled) Summary {
	s := Summary{Shown: len(points)}
	for _, p := range points {
		if p.Significant {
			s.Significant++
		}
		switch p.Trend {
		case TrendDeclining:
			s.Declining++
		case TrendImproving:
			s.Improving++
		default:
			s.Stable++
		}
	}
	return s
}
