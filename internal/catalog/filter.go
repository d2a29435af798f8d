package catalog

import (
	"strings"

	"github.com/samber/lo"

	"github.com/awray/coasterlog/internal/model"
)

// Filter returns the parks matching the free-text search term, preserving
// dataset order. An empty or whitespace-only term returns every park.
//
// A park matches when the term appears case-insensitively in its name,
// location, state, or in the name of any of its coasters. The filter is
// park-level only: a matching park keeps its complete coaster list even
// when only one coaster name matched.
func (c *Catalog) Filter(term string) []*model.Park {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return c.parks
	}

	return lo.Filter(c.parks, func(p *model.Park, _ int) bool {
		return parkMatches(p, term)
	})
}

func parkMatches(p *model.Park, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Location), term) ||
		strings.Contains(strings.ToLower(p.State), term) {
		return true
	}
	for _, coaster := range p.Coasters {
		if strings.Contains(strings.ToLower(coaster.Name), term) {
			return true
		}
	}
	return false
}
