package dataset

// View is the result of one pipeline run: the styled points that survived the
// filter plus the counts the dashboard displays.
type View struct {
	Criteria Criteria
	Total    int
	Points   []Styled
	Summary  Summary
}

// Build filters records with c, classifies the survivors and summarizes them.
func Build(records []Record, c Criteria) View {
	points := StyleAll(Filter(records, c))
	return View{
		Criteria: c,
		Total:    len(records),
		Points:   points,
		Summary:  Summarize(points),
	}
}

// Pipeline regenerates the full record set from Seed on every Run. It holds no
// state between runs, so callers re-run it whenever the criteria change.
type Pipeline struct {
	Seed   int64
	Params Params
}

func NewPipeline(seed int64, p Params) Pipeline {
	return Pipeline{Seed: seed, Params: p}
}

func (p Pipeline) Records() []Record {
	return Generate(NewRand(p.Seed), p.Params)
}

func (p Pipeline) Run(c Criteria) View {
	return Build(p.Records(), c)
}
