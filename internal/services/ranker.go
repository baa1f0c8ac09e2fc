package services

import (
	"sort"
	"strings"

	"arogya-dispatch-service/internal/domain"
)

// maxSuggestions caps how many facilities a single suggestion response carries.
const maxSuggestions = 10

// Suggestion is one ranked facility candidate. DistanceKm is negative when no
// pickup point was supplied.
type Suggestion struct {
	Facility   domain.Facility
	Score      float64
	DistanceKm float64
}

// FacilityScore scores a facility against a lower-cased query. Each searchable
// string (name, area, every alias) contributes +3 for a prefix match or +1 for
// a containment match; popularity adds pop*0.1 once regardless of matches.
func FacilityScore(f domain.Facility, query string) float64 {
	if query == "" {
		return 0
	}

	tokens := make([]string, 0, 2+len(f.Aliases))
	tokens = append(tokens, strings.ToLower(f.Name), strings.ToLower(f.Area))
	for _, a := range f.Aliases {
		tokens = append(tokens, strings.ToLower(a))
	}

	var score float64
	for _, t := range tokens {
		if strings.HasPrefix(t, query) {
			score += 3
		} else if strings.Contains(t, query) {
			score += 1
		}
	}
	score += float64(f.Popularity) * 0.1
	return score
}

// SuggestFacilities ranks facilities for a free-text query and optional pickup
// point.
//
// For a non-empty query, candidates scoring <= 0 are dropped and the single
// top-scoring candidate is always pinned first, even when a closer but
// lower-scored facility exists; the user should see the best lexical match at
// the very top. The remaining candidates are ordered by ascending distance
// from the pickup when one is set, else by descending popularity. An empty
// query skips scoring and applies the distance/popularity order to the whole
// set. Results are capped at maxSuggestions.
func SuggestFacilities(facilities []domain.Facility, query string, pickup *domain.GeoPoint) []Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))

	dist := func(f domain.Facility) float64 {
		if pickup == nil {
			return -1
		}
		return domain.HaversineKm(*pickup, f.Position())
	}

	var top *Suggestion
	var rest []Suggestion

	if q != "" {
		scored := make([]Suggestion, 0, len(facilities))
		for _, f := range facilities {
			s := FacilityScore(f, q)
			if s <= 0 {
				continue
			}
			scored = append(scored, Suggestion{Facility: f, Score: s, DistanceKm: dist(f)})
		}
		// Stable: ties keep original dataset order.
		sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

		if len(scored) == 0 {
			return nil
		}
		top = &scored[0]
		rest = scored[1:]
	} else {
		rest = make([]Suggestion, 0, len(facilities))
		for _, f := range facilities {
			rest = append(rest, Suggestion{Facility: f, DistanceKm: dist(f)})
		}
	}

	sort.SliceStable(rest, func(i, j int) bool {
		if pickup != nil {
			return rest[i].DistanceKm < rest[j].DistanceKm
		}
		return rest[i].Facility.Popularity > rest[j].Facility.Popularity
	})

	out := make([]Suggestion, 0, maxSuggestions)
	if top != nil {
		out = append(out, *top)
	}
	for _, s := range rest {
		if len(out) >= maxSuggestions {
			break
		}
		out = append(out, s)
	}
	return out
}

// FindFacilityByText returns the first facility whose name is contained in the
// free text (case-insensitive), matching how typed destinations resolve when
// no suggestion was explicitly selected.
func FindFacilityByText(facilities []domain.Facility, text string) (domain.Facility, bool) {
	lower := strings.ToLower(text)
	for _, f := range facilities {
		if strings.Contains(lower, strings.ToLower(f.Name)) {
			return f, true
		}
	}
	return domain.Facility{}, false
}
