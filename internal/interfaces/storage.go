// Package interfaces defines service and storage contracts for Insurance Buddy
package interfaces

import (
	"context"
	"errors"

	"github.com/bobmcallan/insurancebuddy/internal/models"
)

// ErrNotFound is returned by stores when a record does not exist.
var ErrNotFound = errors.New("not found")

// StorageManager coordinates all storage backends
type StorageManager interface {
	ContentStore() ContentStore
	InternalStore() InternalStore

	// Backend names the active backend ("sqlite" or "surrealdb").
	Backend() string

	// Lifecycle
	Close() error
}

// ContentStore persists the editable site content. Page records are
// singletons keyed by kind.
type ContentStore interface {
	GetHomePage(ctx context.Context) (*models.HomePageContent, error)
	SaveHomePage(ctx context.Context, page *models.HomePageContent) error
	GetAboutPage(ctx context.Context) (*models.AboutPageContent, error)
	SaveAboutPage(ctx context.Context, page *models.AboutPageContent) error
	GetProductPage(ctx context.Context) (*models.ProductPageContent, error)
	SaveProductPage(ctx context.Context, page *models.ProductPageContent) error
	GetContactPage(ctx context.Context) (*models.ContactPageContent, error)
	SaveContactPage(ctx context.Context, page *models.ContactPageContent) error
	DeletePage(ctx context.Context, kind models.PageKind) error

	// Partners are listed by display order, then name.
	ListPartners(ctx context.Context) ([]*models.PartnerOrganization, error)
	GetPartner(ctx context.Context, partnerID string) (*models.PartnerOrganization, error)
	SavePartner(ctx context.Context, partner *models.PartnerOrganization) error
	DeletePartner(ctx context.Context, partnerID string) error

	// Segments are listed by display order, then slug.
	ListSegments(ctx context.Context) ([]*models.AudienceSegment, error)
	GetSegment(ctx context.Context, slug string) (*models.AudienceSegment, error)
	SaveSegment(ctx context.Context, segment *models.AudienceSegment) error
	DeleteSegment(ctx context.Context, slug string) error

	// Inquiries are listed newest first. A limit <= 0 returns all.
	SaveInquiry(ctx context.Context, inquiry *models.ContactInquiry) error
	ListInquiries(ctx context.Context, limit int) ([]*models.ContactInquiry, error)
	DeleteInquiry(ctx context.Context, inquiryID string) error
}

// InternalStore manages staff accounts.
type InternalStore interface {
	GetUser(ctx context.Context, userID string) (*models.InternalUser, error)
	SaveUser(ctx context.Context, user *models.InternalUser) error
	DeleteUser(ctx context.Context, userID string) error
	ListUsers(ctx context.Context) ([]string, error)
}
