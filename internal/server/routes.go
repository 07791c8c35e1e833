package server

import (
	"net/http"
	"time"

	"github.com/bobmcallan/insurancebuddy/internal/common"
)

// registerRoutes sets up the HTML pages and JSON API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Pages
	mux.HandleFunc("/", s.handleHomePage)
	mux.HandleFunc("/about/", s.handleAboutPage)
	mux.HandleFunc("/product/", s.handleProductPage)
	mux.HandleFunc("/contact/", s.handleContactPage)
	mux.Handle("/static/", staticHandler())

	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Plans
	mux.HandleFunc("/api/plans/cities", s.handlePlanCities)
	mux.HandleFunc("/api/plans/compare", s.handlePlanCompare)
	mux.HandleFunc("/api/plans/summary", s.handlePlanSummary)
	mux.HandleFunc("/api/plans", s.handlePlans)

	// Public content
	mux.HandleFunc("/api/content/", s.handleContent)
	mux.HandleFunc("/api/partners", s.handlePartners)
	mux.HandleFunc("/api/segments", s.handleSegments)
	mux.HandleFunc("/api/contact", s.handleContactSubmit)

	// Auth
	mux.HandleFunc("/api/auth/login", s.handleAuthLogin)
	mux.HandleFunc("/api/auth/validate", s.handleAuthValidate)

	// Admin
	mux.HandleFunc("/api/admin/pages/", s.handleAdminPage)
	mux.HandleFunc("/api/admin/partners/", s.routeAdminPartners) // handles {id} and {id}/order
	mux.HandleFunc("/api/admin/partners", s.handleAdminPartners)
	mux.HandleFunc("/api/admin/segments/", s.handleAdminSegment)
	mux.HandleFunc("/api/admin/segments", s.handleAdminSegments)
	mux.HandleFunc("/api/admin/inquiries/", s.handleAdminInquiry)
	mux.HandleFunc("/api/admin/inquiries", s.handleAdminInquiries)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"storage": s.app.Storage.Backend(),
		"uptime":  time.Since(s.app.StartupTime).Round(time.Second).String(),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}
