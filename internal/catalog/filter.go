package catalog

import (
	"sort"

	"github.com/bobmcallan/insurancebuddy/internal/models"
)

// Age window bounds used when a plan does not state its own.
const (
	DefaultAgeMin = 0
	DefaultAgeMax = 120
)

// FilterPlans returns the plans matching member, age and city, in catalog
// order. An empty city or nil age disables that criterion; an unrecognised
// member matches every plan. The input slice is not modified.
func FilterPlans(plans []models.Plan, member string, age *int, city string) []models.Plan {
	out := make([]models.Plan, 0, len(plans))
	for i := range plans {
		p := &plans[i]
		if city != "" && !p.HasCity(city) {
			continue
		}
		if !supportsMember(p, member) {
			continue
		}
		if age != nil && !withinAgeWindow(p, *age) {
			continue
		}
		out = append(out, *p)
	}
	return out
}

func supportsMember(p *models.Plan, member string) bool {
	switch member {
	case models.MemberAdult:
		return p.ForAdult
	case models.MemberChild:
		return p.ForChild
	case models.MemberFamily:
		return p.SupportsFamily
	case models.MemberGovernment:
		return p.IsGovernment
	}
	return true
}

func withinAgeWindow(p *models.Plan, age int) bool {
	lo, hi := DefaultAgeMin, DefaultAgeMax
	if p.AgeMin != nil {
		lo = *p.AgeMin
	}
	if p.AgeMax != nil {
		hi = *p.AgeMax
	}
	return lo <= age && age <= hi
}

// UniqueCities returns the sorted set of cities across plans.
func UniqueCities(plans []models.Plan) []string {
	seen := make(map[string]struct{})
	for i := range plans {
		for _, c := range plans[i].Cities {
			seen[c] = struct{}{}
		}
	}
	cities := make([]string, 0, len(seen))
	for c := range seen {
		cities = append(cities, c)
	}
	sort.Strings(cities)
	return cities
}
