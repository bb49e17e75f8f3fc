package dataset

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Lookup finds the species in points that best matches query and returns its
// index. Matching tries, in order: a case-insensitive exact id, a bare index
// ("42" means "Species 42"), an id prefix, and finally the closest id by edit
// distance when it is within a third of the query length.
func Lookup(points []Styled, query string) (int, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(points) == 0 {
		return -1, false
	}
	if n, err := strconv.Atoi(q); err == nil {
		q = strings.ToLower(speciesID(n))
	}

	for i, p := range points {
		if strings.ToLower(p.SpeciesID) == q {
			return i, true
		}
	}
	for i, p := range points {
		if strings.HasPrefix(strings.ToLower(p.SpeciesID), q) {
			return i, true
		}
	}

	best, bestDist := -1, 0
	for i, p := range points {
		d := levenshtein.ComputeDistance(q, strings.ToLower(p.SpeciesID))
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if bestDist > max(1, len(q)/3) {
		return -1, false
	}
	return best, true
}
