package catalog

import "github.com/bobmcallan/insurancebuddy/internal/models"

// SummarizePlans counts plans, providers, cities and eligibility flags.
// An empty input yields the zero summary. Otherwise city_count is at least
// 1, even when no plan lists a city.
func SummarizePlans(plans []models.Plan) models.PlanSummary {
	if len(plans) == 0 {
		return models.PlanSummary{}
	}

	providers := make(map[string]struct{})
	cities := make(map[string]struct{})
	var s models.PlanSummary
	for i := range plans {
		p := &plans[i]
		if p.Provider != "" {
			providers[p.Provider] = struct{}{}
		}
		for _, c := range p.Cities {
			cities[c] = struct{}{}
		}
		if p.ForChild {
			s.ChildReady++
		}
		if p.ForAdult {
			s.AdultReady++
		}
	}

	s.PlanCount = len(plans)
	s.ProviderCount = len(providers)
	s.CityCount = len(cities)
	if s.CityCount == 0 {
		s.CityCount = 1
	}
	return s
}
