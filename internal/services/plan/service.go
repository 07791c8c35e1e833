// Package plan answers plan finder queries against the static catalog.
package plan

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/bobmcallan/insurancebuddy/internal/catalog"
	"github.com/bobmcallan/insurancebuddy/internal/common"
	"github.com/bobmcallan/insurancebuddy/internal/interfaces"
	"github.com/bobmcallan/insurancebuddy/internal/models"
)

// Age bounds accepted from the plan finder form.
const (
	MinQueryAge = 0
	MaxQueryAge = 80
)

// Compile-time interface check
var _ interfaces.PlanService = (*Service)(nil)

// Defaults are substituted for missing or unusable query parameters.
type Defaults struct {
	Member string
	Age    int
}

// Service implements PlanService
type Service struct {
	catalog       interfaces.PlanCatalog
	content       interfaces.ContentService
	defaults      Defaults
	featuredLimit int
	logger        *common.Logger
}

// NewService creates a new plan service. content may be nil, in which case
// the configured default member is always used.
func NewService(cat interfaces.PlanCatalog, content interfaces.ContentService, config *common.Config, logger *common.Logger) *Service {
	return &Service{
		catalog: cat,
		content: content,
		defaults: Defaults{
			Member: config.Site.DefaultMember,
			Age:    config.Site.DefaultAge,
		},
		featuredLimit: config.Catalog.FeaturedLimit,
		logger:        logger,
	}
}

func (s *Service) plans() ([]models.Plan, error) {
	plans, err := s.catalog.Plans()
	if err != nil {
		return nil, fmt.Errorf("failed to load plan catalog: %w", err)
	}
	return plans, nil
}

// ParseQuery reads member, age and city from the request, using the default
// audience segment when it names a member type.
func (s *Service) ParseQuery(ctx context.Context, values url.Values) (models.PlanQuery, error) {
	cities, err := s.Cities(ctx)
	if err != nil {
		return models.PlanQuery{}, err
	}

	defaults := s.defaults
	if s.content != nil {
		if member := s.content.DefaultMember(ctx); member != "" {
			defaults.Member = member
		}
	}
	return ParseQuery(values, cities, defaults), nil
}

// ParseQuery never fails: unknown members, unparseable ages and unknown
// cities are replaced rather than rejected.
func ParseQuery(values url.Values, cities []string, defaults Defaults) models.PlanQuery {
	if !models.IsMemberType(defaults.Member) {
		defaults.Member = models.MemberAdult
	}

	q := models.PlanQuery{
		Member: defaults.Member,
		Age:    clampAge(defaults.Age),
	}

	if member := strings.TrimSpace(values.Get("member")); models.IsMemberType(member) {
		q.Member = member
	}

	if raw := strings.TrimSpace(values.Get("age")); raw != "" {
		if age, err := strconv.Atoi(raw); err == nil {
			q.Age = clampAge(age)
		}
	}

	city := values.Get("city")
	for _, c := range cities {
		if c == city {
			q.City = city
			break
		}
	}
	if q.City == "" && len(cities) > 0 {
		q.City = cities[0]
	}
	return q
}

func clampAge(age int) int {
	if age < MinQueryAge {
		return MinQueryAge
	}
	if age > MaxQueryAge {
		return MaxQueryAge
	}
	return age
}

// Find filters the catalog. When nothing matches the whole catalog is shown
// instead and Fallback is set. Summary and comparison describe the displayed
// plans.
func (s *Service) Find(ctx context.Context, query models.PlanQuery) (*models.ProductView, error) {
	all, err := s.plans()
	if err != nil {
		return nil, err
	}

	age := query.Age
	displayed := catalog.FilterPlans(all, query.Member, &age, query.City)
	fallback := false
	if len(displayed) == 0 {
		displayed = all
		fallback = true
	}

	featured := displayed
	if s.featuredLimit > 0 && len(featured) > s.featuredLimit {
		featured = featured[:s.featuredLimit:s.featuredLimit]
	}

	compared := catalog.ComparisonPlans(displayed)
	view := &models.ProductView{
		Query:           query,
		MemberTypes:     models.MemberTypes,
		Cities:          catalog.UniqueCities(all),
		Featured:        featured,
		ComparisonPlans: compared,
		ComparisonRows:  catalog.BuildComparison(compared, catalog.ComparisonFields()),
		Summary:         catalog.SummarizePlans(displayed),
		Fallback:        fallback,
		Total:           len(displayed),
	}

	s.logger.Debug().
		Str("member", query.Member).
		Int("age", query.Age).
		Str("city", query.City).
		Int("matches", view.Total).
		Bool("fallback", fallback).
		Msg("Plan query")
	return view, nil
}

// Cities lists the distinct catalog cities, sorted.
func (s *Service) Cities(ctx context.Context) ([]string, error) {
	all, err := s.plans()
	if err != nil {
		return nil, err
	}
	return catalog.UniqueCities(all), nil
}

// Compare returns up to three plans by name with their comparison rows.
// Without names the first plans of the catalog are compared.
func (s *Service) Compare(ctx context.Context, names []string) ([]models.Plan, []models.ComparisonRow, error) {
	all, err := s.plans()
	if err != nil {
		return nil, nil, err
	}

	var compared []models.Plan
	if len(names) == 0 {
		compared = catalog.ComparisonPlans(all)
	} else {
		compared = catalog.FindPlans(all, names)
	}
	return compared, catalog.BuildComparison(compared, catalog.ComparisonFields()), nil
}

// Summary returns the headline counts for the whole catalog.
func (s *Service) Summary(ctx context.Context) (models.PlanSummary, error) {
	all, err := s.plans()
	if err != nil {
		return models.PlanSummary{}, err
	}
	return catalog.SummarizePlans(all), nil
}
