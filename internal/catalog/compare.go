package catalog

import "github.com/bobmcallan/insurancebuddy/internal/models"

// MaxComparisonPlans is the number of plans shown side by side.
const MaxComparisonPlans = 3

// Placeholder is rendered for text fields a plan does not provide.
const Placeholder = "—"

// ComparisonFields returns the fixed row specs of the comparison table.
func ComparisonFields() []models.ComparisonField {
	return []models.ComparisonField{
		{Key: models.FieldOverallDeductible, Label: "Overall Deductible"},
		{Key: models.FieldServicesBeforeDeductible, Label: "Preventive Before Deductible"},
		{Key: models.FieldSpecificServiceDeductible, Label: "Specific Service Deductible"},
		{Key: models.FieldOOPIndividual, Label: "OOP Max (Individual)"},
		{Key: models.FieldOOPFamily, Label: "OOP Max (Family)"},
		{Key: models.FieldOOPHospital, Label: "Hospital/Surgery Limit"},
		{Key: models.FieldExcludedFromOOP, Label: "Excluded From OOP"},
		{Key: models.FieldNetworkLowerCost, Label: "Prefers Network", Type: "bool"},
		{Key: models.FieldReferralRequired, Label: "Referral Needed", Type: "bool"},
	}
}

// ComparisonPlans returns at most the first three plans.
func ComparisonPlans(plans []models.Plan) []models.Plan {
	if len(plans) > MaxComparisonPlans {
		return plans[:MaxComparisonPlans:MaxComparisonPlans]
	}
	return plans
}

// BuildComparison renders one row per field with one value per plan, in
// plan order. Bool fields render "Yes" or "No".
func BuildComparison(plans []models.Plan, fields []models.ComparisonField) []models.ComparisonRow {
	rows := make([]models.ComparisonRow, 0, len(fields))
	for _, f := range fields {
		row := models.ComparisonRow{Label: f.Label, Values: make([]string, 0, len(plans))}
		for i := range plans {
			row.Values = append(row.Values, comparisonValue(&plans[i], f))
		}
		rows = append(rows, row)
	}
	return rows
}

func comparisonValue(p *models.Plan, f models.ComparisonField) string {
	if f.Type == "bool" {
		if p.CoverageFlag(f.Key) {
			return "Yes"
		}
		return "No"
	}
	if v := p.CoverageValue(f.Key); v != "" {
		return v
	}
	return Placeholder
}

// FindPlans returns the plans whose names appear in names, in the order
// requested. Unknown names are skipped and at most three plans are returned.
func FindPlans(plans []models.Plan, names []string) []models.Plan {
	byName := make(map[string]int, len(plans))
	for i := range plans {
		if _, dup := byName[plans[i].PlanName]; !dup {
			byName[plans[i].PlanName] = i
		}
	}

	out := make([]models.Plan, 0, MaxComparisonPlans)
	seen := make(map[string]bool)
	for _, n := range names {
		idx, ok := byName[n]
		if !ok || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, plans[idx])
		if len(out) == MaxComparisonPlans {
			break
		}
	}
	return out
}
