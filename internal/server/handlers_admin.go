package server

import (
	"net/http"
	"strings"

	"github.com/bobmcallan/insurancebuddy/internal/models"
)

const defaultInquiryLimit = 100

// handleAdminPage handles GET|PUT|DELETE /api/admin/pages/{kind}.
// DELETE discards the saved copy and returns the default.
func (s *Server) handleAdminPage(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPut, http.MethodDelete) {
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}

	kind, ok := models.ParsePageKind(PathParam(r, "/api/admin/pages/", ""))
	if !ok {
		WriteErrorWithCode(w, http.StatusNotFound, "Unknown page", "not_found")
		return
	}
	ctx := r.Context()
	svc := s.app.ContentService

	switch r.Method {
	case http.MethodPut:
		var err error
		switch kind {
		case models.PageHome:
			var page models.HomePageContent
			if !DecodeJSON(w, r, &page) {
				return
			}
			err = svc.SaveHomePage(ctx, &page)
		case models.PageAbout:
			var page models.AboutPageContent
			if !DecodeJSON(w, r, &page) {
				return
			}
			err = svc.SaveAboutPage(ctx, &page)
		case models.PageProduct:
			var page models.ProductPageContent
			if !DecodeJSON(w, r, &page) {
				return
			}
			err = svc.SaveProductPage(ctx, &page)
		case models.PageContact:
			var page models.ContactPageContent
			if !DecodeJSON(w, r, &page) {
				return
			}
			err = svc.SaveContactPage(ctx, &page)
		}
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
	case http.MethodDelete:
		if err := svc.ResetPage(ctx, kind); err != nil {
			s.writeServiceError(w, r, err)
			return
		}
	}

	page, err := s.pageContent(ctx, kind)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// --- Partners ---

// handleAdminPartners handles GET|POST /api/admin/partners.
func (s *Server) handleAdminPartners(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}
	ctx := r.Context()

	if r.Method == http.MethodGet {
		partners, err := s.app.ContentService.Partners(ctx)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{"partners": partners})
		return
	}

	var partner models.PartnerOrganization
	if !DecodeJSON(w, r, &partner) {
		return
	}
	partner.PartnerID = "" // ids are assigned by the store
	if err := s.app.ContentService.SavePartner(ctx, &partner); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, partner)
}

// routeAdminPartners dispatches /api/admin/partners/{id}[/order].
func (s *Server) routeAdminPartners(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/admin/partners/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "partner id is required in path")
		return
	}

	switch sub {
	case "":
		s.handleAdminPartner(w, r, id)
	case "order":
		s.handleAdminPartnerOrder(w, r, id)
	default:
		WriteErrorWithCode(w, http.StatusNotFound, "Not found", "not_found")
	}
}

// handleAdminPartner handles GET|PUT|DELETE /api/admin/partners/{id}.
func (s *Server) handleAdminPartner(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPut, http.MethodDelete) {
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}
	ctx := r.Context()
	svc := s.app.ContentService

	switch r.Method {
	case http.MethodGet:
		partner, err := svc.Partner(ctx, id)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, partner)

	case http.MethodPut:
		var partner models.PartnerOrganization
		if !DecodeJSON(w, r, &partner) {
			return
		}
		partner.PartnerID = id
		if err := svc.SavePartner(ctx, &partner); err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, partner)

	case http.MethodDelete:
		if err := svc.DeletePartner(ctx, id); err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleAdminPartnerOrder handles PATCH /api/admin/partners/{id}/order.
func (s *Server) handleAdminPartnerOrder(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodPatch) {
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}

	var req struct {
		DisplayOrder *int `json:"display_order"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.DisplayOrder == nil {
		WriteErrorWithCode(w, http.StatusBadRequest, "display_order is required", "invalid")
		return
	}

	partner, err := s.app.ContentService.SetPartnerOrder(r.Context(), id, *req.DisplayOrder)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, partner)
}

// --- Segments ---

// handleAdminSegments handles GET|POST /api/admin/segments.
func (s *Server) handleAdminSegments(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}
	ctx := r.Context()

	if r.Method == http.MethodGet {
		segments, err := s.app.ContentService.Segments(ctx)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{"segments": segments})
		return
	}

	var segment models.AudienceSegment
	if !DecodeJSON(w, r, &segment) {
		return
	}
	if err := s.app.ContentService.CreateSegment(ctx, &segment); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, segment)
}

// handleAdminSegment handles GET|PUT|DELETE /api/admin/segments/{slug}.
func (s *Server) handleAdminSegment(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPut, http.MethodDelete) {
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}

	slug := PathParam(r, "/api/admin/segments/", "")
	if slug == "" {
		WriteError(w, http.StatusBadRequest, "segment slug is required in path")
		return
	}
	ctx := r.Context()
	svc := s.app.ContentService

	switch r.Method {
	case http.MethodGet:
		segment, err := svc.Segment(ctx, slug)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, segment)

	case http.MethodPut:
		var segment models.AudienceSegment
		if !DecodeJSON(w, r, &segment) {
			return
		}
		if err := svc.UpdateSegment(ctx, slug, &segment); err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, segment)

	case http.MethodDelete:
		if err := svc.DeleteSegment(ctx, slug); err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// --- Inquiries ---

// handleAdminInquiries handles GET /api/admin/inquiries?limit=N, newest first.
func (s *Server) handleAdminInquiries(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}

	limit := queryInt(r, "limit", defaultInquiryLimit)
	inquiries, err := s.app.ContentService.Inquiries(r.Context(), limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"inquiries": inquiries,
		"count":     len(inquiries),
	})
}

// handleAdminInquiry handles DELETE /api/admin/inquiries/{id}.
func (s *Server) handleAdminInquiry(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}

	id := PathParam(r, "/api/admin/inquiries/", "")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "inquiry id is required in path")
		return
	}
	if err := s.app.ContentService.DeleteInquiry(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
