package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/insurancebuddy/internal/models"
)

func TestSummarizePlans_Empty(t *testing.T) {
	assert.Equal(t, models.PlanSummary{}, SummarizePlans(nil))
	assert.Equal(t, models.PlanSummary{}, SummarizePlans([]models.Plan{}))
}

func TestSummarizePlans_Counts(t *testing.T) {
	plans := filterFixture(t)
	got := SummarizePlans(plans)

	assert.Equal(t, models.PlanSummary{
		PlanCount:     5,
		ProviderCount: 5,
		CityCount:     3,
		ChildReady:    3,
		AdultReady:    4,
	}, got)
}

func TestSummarizePlans_DistinctProviders(t *testing.T) {
	plans := mustLoad(t, `[
		{"plan_name": "Cigna Global Silver"},
		{"plan_name": "Cigna Close Care"},
		{"plan_name": "Aetna Student"}
	]`)
	assert.Equal(t, 2, SummarizePlans(plans).ProviderCount)
}

func TestSummarizePlans_CityCountFloor(t *testing.T) {
	plans := mustLoad(t, `[{"plan_name": "Nowhere Plan"}, {"plan_name": "Also Nowhere"}]`)
	require.Len(t, plans, 2)

	s := SummarizePlans(plans)
	assert.Equal(t, 2, s.PlanCount)
	assert.Equal(t, 1, s.CityCount, "non-empty input reports at least one city")
}

func TestSummarizePlans_NeverZeroCitiesForNonEmpty(t *testing.T) {
	plans := filterFixture(t)
	for i := range plans {
		s := SummarizePlans(plans[i : i+1])
		assert.GreaterOrEqual(t, s.CityCount, 1, plans[i].PlanName)
	}
}
