package server

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/bobmcallan/insurancebuddy/internal/models"
	"github.com/bobmcallan/insurancebuddy/internal/services/content"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageNames = []string{"home", "about", "product", "contact", "error"}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

// parsePages parses each page together with the shared layout.
func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, err
		}
		pages[name] = t
	}
	return pages, nil
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// layoutData is shared by every page.
type layoutData struct {
	Title  string
	Active string
	Year   int
}

func newLayout(title, active string) layoutData {
	return layoutData{Title: title, Active: active, Year: time.Now().Year()}
}

type homeData struct {
	layoutData
	Page     *models.HomePageContent
	Partners []*models.PartnerOrganization
	Segments []*models.AudienceSegment
}

type aboutData struct {
	layoutData
	Page *models.AboutPageContent
}

type productData struct {
	layoutData
	Page     *models.ProductPageContent
	View     *models.ProductView
	Segments []*models.AudienceSegment
}

type contactData struct {
	layoutData
	Page      *models.ContactPageContent
	Submitted bool
	Errors    string
	Form      models.ContactInquiry
}

type errorData struct {
	layoutData
	Status  int
	Message string
}

// render executes a page into a buffer first so a template failure never
// leaves a half-written response.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := s.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		s.logger.Error().Err(err).Str("template", name).Str("path", r.URL.Path).Msg("Template render failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.render(w, r, status, "error", errorData{
		layoutData: newLayout(http.StatusText(status), ""),
		Status:     status,
		Message:    message,
	})
}

// renderServiceError renders the HTML error page for a service error.
func (s *Server) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, _ := errorStatus(err)
	switch status {
	case http.StatusServiceUnavailable:
		s.logger.Warn().Err(err).Str("path", r.URL.Path).Msg("Plan catalog unavailable")
		s.renderError(w, r, status, "Plan information is temporarily unavailable. Please try again shortly.")
	case http.StatusInternalServerError:
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("Page failed")
		s.renderError(w, r, status, "Something went wrong.")
	default:
		s.renderError(w, r, status, err.Error())
	}
}

// handleHomePage handles GET /. Every other unmatched path is a 404.
func (s *Server) handleHomePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.renderError(w, r, http.StatusNotFound, "Page not found.")
		return
	}
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	ctx := r.Context()
	svc := s.app.ContentService

	page, err := svc.HomePage(ctx)
	if err != nil {
		s.renderServiceError(w, r, err)
		return
	}
	partners, err := svc.Partners(ctx)
	if err != nil {
		s.renderServiceError(w, r, err)
		return
	}
	segments, err := svc.Segments(ctx)
	if err != nil {
		s.renderServiceError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, "home", homeData{
		layoutData: newLayout("Insurance Buddy", "home"),
		Page:       page,
		Partners:   partners,
		Segments:   segments,
	})
}

// handleAboutPage handles GET /about/.
func (s *Server) handleAboutPage(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	page, err := s.app.ContentService.AboutPage(r.Context())
	if err != nil {
		s.renderServiceError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "about", aboutData{
		layoutData: newLayout("About", "about"),
		Page:       page,
	})
}

// handleProductPage handles GET /product/?member=&age=&city=.
func (s *Server) handleProductPage(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	ctx := r.Context()

	page, err := s.app.ContentService.ProductPage(ctx)
	if err != nil {
		s.renderServiceError(w, r, err)
		return
	}
	segments, err := s.app.ContentService.Segments(ctx)
	if err != nil {
		s.renderServiceError(w, r, err)
		return
	}
	query, err := s.app.PlanService.ParseQuery(ctx, r.URL.Query())
	if err != nil {
		s.renderServiceError(w, r, err)
		return
	}
	view, err := s.app.PlanService.Find(ctx, query)
	if err != nil {
		s.renderServiceError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, "product", productData{
		layoutData: newLayout("Compare Plans", "product"),
		Page:       page,
		View:       view,
		Segments:   segments,
	})
}

// handleContactPage handles GET and POST /contact/. A successful POST
// re-renders the page with a confirmation.
func (s *Server) handleContactPage(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead, http.MethodPost) {
		return
	}
	ctx := r.Context()

	page, err := s.app.ContentService.ContactPage(ctx)
	if err != nil {
		s.renderServiceError(w, r, err)
		return
	}
	data := contactData{
		layoutData: newLayout("Contact", "contact"),
		Page:       page,
	}

	if r.Method != http.MethodPost {
		s.render(w, r, http.StatusOK, "contact", data)
		return
	}

	if !s.contactLimiter.Allow(s.clientKey(r)) {
		data.Errors = "Too many messages, please try again in a minute."
		s.render(w, r, http.StatusTooManyRequests, "contact", data)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
	if err := r.ParseForm(); err != nil {
		data.Errors = "The form could not be read."
		s.render(w, r, http.StatusBadRequest, "contact", data)
		return
	}
	data.Form = models.ContactInquiry{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Message: r.PostForm.Get("message"),
	}

	inquiry := data.Form
	if err := s.app.ContentService.SubmitInquiry(ctx, &inquiry); err != nil {
		if errors.Is(err, content.ErrInvalid) {
			data.Errors = strings.TrimPrefix(err.Error(), content.ErrInvalid.Error()+": ")
			s.render(w, r, http.StatusBadRequest, "contact", data)
			return
		}
		s.renderServiceError(w, r, err)
		return
	}

	data.Submitted = true
	data.Form = models.ContactInquiry{}
	s.render(w, r, http.StatusOK, "contact", data)
}
