package models

// Member types accepted by the plan filter.
const (
	MemberAdult      = "adult"
	MemberChild      = "child"
	MemberFamily     = "family"
	MemberGovernment = "government"
)

// MemberTypes lists the recognised member types in display order.
var MemberTypes = []string{MemberAdult, MemberChild, MemberFamily, MemberGovernment}

// IsMemberType reports whether s is a recognised member type.
func IsMemberType(s string) bool {
	for _, m := range MemberTypes {
		if m == s {
			return true
		}
	}
	return false
}

// Plan is one normalized entry of the static plan catalog.
// Plans are derived at load time and never persisted.
type Plan struct {
	PlanName       string `json:"plan_name"`
	Provider       string `json:"provider"`
	ForChild       bool   `json:"for_child"`
	ForAdult       bool   `json:"for_adult"`
	SupportsFamily bool   `json:"supports_family"`
	AgeMin         *int   `json:"age_min,omitempty"`
	AgeMax         *int   `json:"age_max,omitempty"`
	IsGovernment   bool   `json:"is_government"`

	OverallDeductible         string `json:"overall_deductible,omitempty"`
	ServicesBeforeDeductible  string `json:"services_before_deductible,omitempty"`
	SpecificServiceDeductible string `json:"specific_service_deductible,omitempty"`
	OOPIndividual             string `json:"oop_individual,omitempty"`
	OOPFamily                 string `json:"oop_family,omitempty"`
	OOPHospital               string `json:"oop_hospital,omitempty"`
	ExcludedFromOOP           string `json:"excluded_from_oop,omitempty"`
	NetworkLowerCost          bool   `json:"network_lower_cost"`
	ReferralRequired          bool   `json:"referral_required"`

	Cities        []string `json:"cities"`
	CitiesDisplay string   `json:"cities_display"`
	AudienceLabel string   `json:"audience_label"`
	Tags          []string `json:"tags"`
}

// Coverage field keys, shared by the comparison table and CoverageValue.
const (
	FieldOverallDeductible         = "overall_deductible"
	FieldServicesBeforeDeductible  = "services_before_deductible"
	FieldSpecificServiceDeductible = "specific_service_deductible"
	FieldOOPIndividual             = "oop_individual"
	FieldOOPFamily                 = "oop_family"
	FieldOOPHospital               = "oop_hospital"
	FieldExcludedFromOOP           = "excluded_from_oop"
	FieldNetworkLowerCost          = "network_lower_cost"
	FieldReferralRequired          = "referral_required"
)

// CoverageValue returns the text coverage field named by key, or "" when
// the plan has no value or the key is not a text field.
func (p *Plan) CoverageValue(key string) string {
	switch key {
	case FieldOverallDeductible:
		return p.OverallDeductible
	case FieldServicesBeforeDeductible:
		return p.ServicesBeforeDeductible
	case FieldSpecificServiceDeductible:
		return p.SpecificServiceDeductible
	case FieldOOPIndividual:
		return p.OOPIndividual
	case FieldOOPFamily:
		return p.OOPFamily
	case FieldOOPHospital:
		return p.OOPHospital
	case FieldExcludedFromOOP:
		return p.ExcludedFromOOP
	}
	return ""
}

// CoverageFlag returns the boolean coverage field named by key.
func (p *Plan) CoverageFlag(key string) bool {
	switch key {
	case FieldNetworkLowerCost:
		return p.NetworkLowerCost
	case FieldReferralRequired:
		return p.ReferralRequired
	}
	return false
}

// HasCity reports whether the plan is offered in city.
func (p *Plan) HasCity(city string) bool {
	for _, c := range p.Cities {
		if c == city {
			return true
		}
	}
	return false
}

// PlanSummary aggregates counts over a set of plans.
type PlanSummary struct {
	PlanCount     int `json:"plan_count"`
	ProviderCount int `json:"provider_count"`
	CityCount     int `json:"city_count"`
	ChildReady    int `json:"child_ready"`
	AdultReady    int `json:"adult_ready"`
}

// ComparisonField describes one row of the side-by-side comparison table.
type ComparisonField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type,omitempty"` // "" or "bool"
}

// ComparisonRow holds one rendered row: a label and one value per plan.
type ComparisonRow struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// PlanQuery is the validated set of product page criteria.
type PlanQuery struct {
	Member string `json:"member"`
	Age    int    `json:"age"`
	City   string `json:"city"`
}

// ProductView is everything the product page and /api/plans render.
type ProductView struct {
	Query           PlanQuery       `json:"query"`
	MemberTypes     []string        `json:"member_types"`
	Cities          []string        `json:"cities"`
	Featured        []Plan          `json:"featured"`
	ComparisonPlans []Plan          `json:"comparison_plans"`
	ComparisonRows  []ComparisonRow `json:"comparison_rows"`
	Summary         PlanSummary     `json:"summary"`
	Fallback        bool            `json:"fallback"`
	Total           int             `json:"total"`
}
