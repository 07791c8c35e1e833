package catalog

import "strings"

type providerMatch struct {
	substring string
	canonical string
}

// providerTable is evaluated in order; the first substring found in the
// plan-name prefix wins.
var providerTable = []providerMatch{
	{"Student Medicover", "Student Medicover"},
	{"WorldTrips", "WorldTrips"},
	{"ISO ", "ISO International"},
	{"IMG ", "IMG Global"},
	{"ACA Marketplace", "ACA Marketplace"},
	{"Parent's Employer", "Parent Employer Plan"},
	{"Compass", "Compass Student"},
	{"PSI ", "PSI"},
	{"TRICARE", "TRICARE"},
	{"Cigna", "Cigna Global"},
	{"SafetyWing", "SafetyWing"},
	{"Wellfleet", "Wellfleet"},
	{"Anthem", "Anthem"},
	{"UnitedHealthcare", "UnitedHealthcare"},
	{"Aetna", "Aetna"},
	{"Florida Blue", "Florida Blue"},
	{"ConnectiCare", "ConnectiCare"},
	{"Spouse/Partner", "Employer Plan"},
	{"GeoBlue", "GeoBlue"},
}

// DeriveProvider maps a plan name to its canonical provider. The text
// before the first "(" is matched against the provider table and returned
// verbatim when nothing matches.
func DeriveProvider(planName string) string {
	if planName == "" {
		return ""
	}
	prefix, _, _ := strings.Cut(planName, "(")
	prefix = strings.TrimSpace(prefix)

	for _, m := range providerTable {
		if strings.Contains(prefix, m.substring) {
			return m.canonical
		}
	}
	return prefix
}
