package interfaces

import (
	"context"
	"net/url"

	"github.com/bobmcallan/insurancebuddy/internal/models"
)

// PlanCatalog provides the immutable plan catalog.
type PlanCatalog interface {
	// Plans returns the normalized catalog. The slice is shared and must
	// not be modified.
	Plans() ([]models.Plan, error)
}

// PlanService answers product page queries against the catalog.
type PlanService interface {
	// ParseQuery validates raw query parameters, substituting defaults for
	// unknown or missing values.
	ParseQuery(ctx context.Context, values url.Values) (models.PlanQuery, error)

	// Find filters the catalog, falling back to the full catalog when
	// nothing matches.
	Find(ctx context.Context, query models.PlanQuery) (*models.ProductView, error)

	// Cities lists the distinct cities in the catalog.
	Cities(ctx context.Context) ([]string, error)

	// Compare builds the comparison table for the named plans, or for the
	// first plans of the catalog when names is empty.
	Compare(ctx context.Context, names []string) ([]models.Plan, []models.ComparisonRow, error)

	// Summary aggregates the whole catalog.
	Summary(ctx context.Context) (models.PlanSummary, error)
}

// ContentService reads and edits the site content. Page getters never
// return nil: a default is returned when nothing has been saved.
type ContentService interface {
	HomePage(ctx context.Context) (*models.HomePageContent, error)
	AboutPage(ctx context.Context) (*models.AboutPageContent, error)
	ProductPage(ctx context.Context) (*models.ProductPageContent, error)
	ContactPage(ctx context.Context) (*models.ContactPageContent, error)

	SaveHomePage(ctx context.Context, page *models.HomePageContent) error
	SaveAboutPage(ctx context.Context, page *models.AboutPageContent) error
	SaveProductPage(ctx context.Context, page *models.ProductPageContent) error
	SaveContactPage(ctx context.Context, page *models.ContactPageContent) error
	ResetPage(ctx context.Context, kind models.PageKind) error

	Partners(ctx context.Context) ([]*models.PartnerOrganization, error)
	Partner(ctx context.Context, partnerID string) (*models.PartnerOrganization, error)
	SavePartner(ctx context.Context, partner *models.PartnerOrganization) error
	SetPartnerOrder(ctx context.Context, partnerID string, order int) (*models.PartnerOrganization, error)
	DeletePartner(ctx context.Context, partnerID string) error

	Segments(ctx context.Context) ([]*models.AudienceSegment, error)
	Segment(ctx context.Context, slug string) (*models.AudienceSegment, error)
	CreateSegment(ctx context.Context, segment *models.AudienceSegment) error
	UpdateSegment(ctx context.Context, slug string, segment *models.AudienceSegment) error
	DeleteSegment(ctx context.Context, slug string) error
	DefaultMember(ctx context.Context) string

	SubmitInquiry(ctx context.Context, inquiry *models.ContactInquiry) error
	Inquiries(ctx context.Context, limit int) ([]*models.ContactInquiry, error)
	DeleteInquiry(ctx context.Context, inquiryID string) error
}
