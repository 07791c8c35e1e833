package server

import (
	"context"
	"net/http"

	"github.com/bobmcallan/insurancebuddy/internal/models"
)

// pageContent loads the content record for kind, or its default.
func (s *Server) pageContent(ctx context.Context, kind models.PageKind) (interface{}, error) {
	svc := s.app.ContentService
	switch kind {
	case models.PageHome:
		return svc.HomePage(ctx)
	case models.PageAbout:
		return svc.AboutPage(ctx)
	case models.PageProduct:
		return svc.ProductPage(ctx)
	default:
		return svc.ContactPage(ctx)
	}
}

// handleContent handles GET /api/content/{kind}.
func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	kind, ok := models.ParsePageKind(PathParam(r, "/api/content/", ""))
	if !ok {
		WriteErrorWithCode(w, http.StatusNotFound, "Unknown page", "not_found")
		return
	}

	page, err := s.pageContent(r.Context(), kind)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// handlePartners handles GET /api/partners.
func (s *Server) handlePartners(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	partners, err := s.app.ContentService.Partners(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"partners": partners})
}

// handleSegments handles GET /api/segments.
func (s *Server) handleSegments(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	segments, err := s.app.ContentService.Segments(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"segments": segments})
}

// handleContactSubmit handles POST /api/contact.
func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	if !s.contactLimiter.Allow(s.clientKey(r)) {
		writeRateLimited(w, s.contactLimiter)
		return
	}

	var inquiry models.ContactInquiry
	if !DecodeJSON(w, r, &inquiry) {
		return
	}
	if err := s.app.ContentService.SubmitInquiry(r.Context(), &inquiry); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"status":     "ok",
		"inquiry_id": inquiry.InquiryID,
	})
}
