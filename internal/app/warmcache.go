package app

import (
	"os"
	"time"

	"github.com/bobmcallan/insurancebuddy/internal/catalog"
)

// WarmCatalog parses the plan catalog on startup so the first product page
// is fast and a broken catalog shows up in the logs immediately. A failure
// is not fatal: the loader retries on the next request.
func (a *App) WarmCatalog() {
	if os.Getenv("BUDDY_WARM_CATALOG") == "off" {
		a.Logger.Info().Msg("Warm catalog: disabled via BUDDY_WARM_CATALOG=off")
		return
	}

	start := time.Now()
	plans, err := a.Catalog.Plans()
	if err != nil {
		a.Logger.Warn().Err(err).Str("path", a.Catalog.Path()).Msg("Warm catalog: catalog unavailable")
		return
	}

	summary := catalog.SummarizePlans(plans)
	a.Logger.Info().
		Int("plans", summary.PlanCount).
		Int("providers", summary.ProviderCount).
		Int("cities", summary.CityCount).
		Dur("elapsed", time.Since(start)).
		Msg("Warm catalog: complete")
}
