package server

import (
	"net/http"
	"strings"
)

// handlePlans handles GET /api/plans?member=&age=&city= and returns the
// same view the product page renders.
func (s *Server) handlePlans(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	ctx := r.Context()

	query, err := s.app.PlanService.ParseQuery(ctx, r.URL.Query())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	view, err := s.app.PlanService.Find(ctx, query)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, view)
}

// handlePlanCities handles GET /api/plans/cities.
func (s *Server) handlePlanCities(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	cities, err := s.app.PlanService.Cities(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"cities": cities})
}

// handlePlanCompare handles GET /api/plans/compare?plan=A&plan=B.
func (s *Server) handlePlanCompare(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	var names []string
	for _, name := range r.URL.Query()["plan"] {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	plans, rows, err := s.app.PlanService.Compare(r.Context(), names)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"plans": plans,
		"rows":  rows,
	})
}

// handlePlanSummary handles GET /api/plans/summary for the whole catalog.
func (s *Server) handlePlanSummary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	summary, err := s.app.PlanService.Summary(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, summary)
}
