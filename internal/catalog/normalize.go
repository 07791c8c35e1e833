package catalog

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/bobmcallan/insurancebuddy/internal/models"
)

// UnnamedPlan is used when a raw entry has no usable plan_name.
const UnnamedPlan = "Unnamed Plan"

var contentReferencePattern = regexp.MustCompile(`:contentReference\[[^\]]+\]\{[^}]+\}`)

// Raw catalog keys.
const (
	rawPlanName                  = "plan_name"
	rawOverallDeductible         = "overall-deductible"
	rawServicesBeforeDeductible  = "services-covered-before-deductible"
	rawSpecificServiceDeductible = "specific-service-deductible"
	rawOOPIndividual             = "out-of-pocket-limit-individual"
	rawOOPFamily                 = "out-of-pocket-limit-family"
	rawOOPHospital               = "out-of-pocket-limit-hospital-surgery-combined"
	rawExcludedFromOOP           = "excluded-from-out-of-pocket-limit"
	rawNetworkLowerCost          = "network-provider-lower-cost"
	rawReferralRequired          = "referral-required-for-specialist"
	rawCities                    = "cities"
	rawAgeMin                    = "age_min"
	rawAgeMax                    = "age_max"
	rawForChild                  = "for-child"
	rawForAdult                  = "for-adult"
)

// CleanText removes upstream content-reference artifacts and trims the result.
func CleanText(s string) string {
	return strings.TrimSpace(contentReferencePattern.ReplaceAllString(s, ""))
}

// Normalize converts one raw catalog entry into a Plan, deriving the
// provider, eligibility flags, audience label and tags.
func Normalize(entry map[string]interface{}) models.Plan {
	p := models.Plan{
		PlanName: textValue(entry[rawPlanName]),

		OverallDeductible:         textValue(entry[rawOverallDeductible]),
		ServicesBeforeDeductible:  textValue(entry[rawServicesBeforeDeductible]),
		SpecificServiceDeductible: textValue(entry[rawSpecificServiceDeductible]),
		OOPIndividual:             textValue(entry[rawOOPIndividual]),
		OOPFamily:                 textValue(entry[rawOOPFamily]),
		OOPHospital:               textValue(entry[rawOOPHospital]),
		ExcludedFromOOP:           textValue(entry[rawExcludedFromOOP]),
		NetworkLowerCost:          truthy(entry[rawNetworkLowerCost]),
		ReferralRequired:          truthy(entry[rawReferralRequired]),

		ForChild: truthy(entry[rawForChild]),
		ForAdult: truthy(entry[rawForAdult]),
		AgeMin:   intValue(entry[rawAgeMin]),
		AgeMax:   intValue(entry[rawAgeMax]),
		Cities:   cityList(entry[rawCities]),
	}
	if p.PlanName == "" {
		p.PlanName = UnnamedPlan
	}

	p.Provider = DeriveProvider(p.PlanName)
	p.SupportsFamily = p.ForChild && p.ForAdult
	p.IsGovernment = IsGovernmentPlan(p.PlanName)
	p.AudienceLabel = AudienceLabel(p.ForChild, p.ForAdult)
	p.Tags = DeriveTags(&p)
	p.CitiesDisplay = strings.Join(p.Cities, ", ")
	return p
}

// textValue renders a raw scalar as display text. Falsy values are absent.
func textValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return CleanText(x)
	case bool:
		if x {
			return "Yes"
		}
		return ""
	case json.Number:
		if f, err := x.Float64(); err == nil && f == 0 {
			return ""
		}
		return x.String()
	default:
		if !truthy(x) {
			return ""
		}
		b, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// truthy applies JSON truthiness: null, false, 0, "" and empty containers
// are false.
func truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return CleanText(x) != ""
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	case []interface{}:
		return len(x) > 0
	case map[string]interface{}:
		return len(x) > 0
	}
	return true
}

// intValue returns the raw value as an int only when it is an integral number.
func intValue(v interface{}) *int {
	n, ok := v.(json.Number)
	if !ok {
		return nil
	}
	i, err := n.Int64()
	if err != nil {
		return nil
	}
	out := int(i)
	return &out
}

// cityList coerces the raw cities value to a slice. A lone string becomes a
// one-element list; anything falsy becomes an empty list.
func cityList(v interface{}) []string {
	cities := []string{}
	switch x := v.(type) {
	case string:
		if c := CleanText(x); c != "" {
			cities = append(cities, c)
		}
	case []interface{}:
		for _, item := range x {
			if s, ok := item.(string); ok && s != "" {
				cities = append(cities, s)
			}
		}
	}
	return cities
}
