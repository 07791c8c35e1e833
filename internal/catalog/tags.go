package catalog

import (
	"strings"

	"github.com/bobmcallan/insurancebuddy/internal/models"
)

var governmentKeywords = []string{"medicaid", "chip", "medicare", "tricare", "husky"}

// Tag labels.
const (
	TagFamilyReady       = "Family-ready"
	TagChildCoverage     = "Child coverage"
	TagAdultStudent      = "Adult student"
	TagReferralNeeded    = "Referral needed"
	TagNoReferral        = "No referral"
	TagInNetworkPricing  = "Best in-network pricing"
	TagGovernmentProgram = "Government program"
	TagACACompliant      = "ACA compliant"
	TagMarketplaceReady  = "Marketplace ready"
	TagGlobalCoverage    = "Global coverage"
)

// IsGovernmentPlan reports whether the name mentions a public program.
func IsGovernmentPlan(planName string) bool {
	name := strings.ToLower(planName)
	for _, kw := range governmentKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// AudienceLabel summarises eligibility for display.
func AudienceLabel(forChild, forAdult bool) string {
	switch {
	case forChild && forAdult:
		return "All ages"
	case forChild:
		return "Child / dependent"
	case forAdult:
		return "Adult student"
	default:
		return "Special eligibility"
	}
}

// DeriveTags builds the ordered badge list for a plan whose eligibility and
// coverage fields are already normalized.
func DeriveTags(p *models.Plan) []string {
	tags := make([]string, 0, 4)

	switch {
	case p.ForChild && p.ForAdult:
		tags = append(tags, TagFamilyReady)
	case p.ForChild:
		tags = append(tags, TagChildCoverage)
	case p.ForAdult:
		tags = append(tags, TagAdultStudent)
	}

	if p.ReferralRequired {
		tags = append(tags, TagReferralNeeded)
	} else {
		tags = append(tags, TagNoReferral)
	}

	if p.NetworkLowerCost {
		tags = append(tags, TagInNetworkPricing)
	}

	name := strings.ToLower(p.PlanName)
	switch {
	case IsGovernmentPlan(p.PlanName):
		tags = append(tags, TagGovernmentProgram)
	case strings.Contains(name, "aca"):
		tags = append(tags, TagACACompliant)
	case strings.Contains(name, "exchange") || strings.Contains(name, "marketplace"):
		tags = append(tags, TagMarketplaceReady)
	case strings.Contains(name, "nomad") || strings.Contains(name, "global"):
		tags = append(tags, TagGlobalCoverage)
	}

	return tags
}
