package surrealdb

import (
	"context"
	"fmt"
	"time"

	"github.com/bobmcallan/insurancebuddy/internal/common"
	"github.com/bobmcallan/insurancebuddy/internal/interfaces"
	"github.com/bobmcallan/insurancebuddy/internal/models"
	"github.com/surrealdb/surrealdb.go"
)

// ContentStore implements interfaces.ContentStore. Pages live in the page
// table keyed by kind; partners, segments and inquiries have their own tables.
type ContentStore struct {
	db     *surrealdb.DB
	logger *common.Logger
}

func NewContentStore(db *surrealdb.DB, logger *common.Logger) *ContentStore {
	return &ContentStore{
		db:     db,
		logger: logger,
	}
}

// --- Pages ---

func (s *ContentStore) GetHomePage(ctx context.Context) (*models.HomePageContent, error) {
	return getRecord[models.HomePageContent](ctx, s.db, tablePage, string(models.PageHome))
}

func (s *ContentStore) SaveHomePage(ctx context.Context, page *models.HomePageContent) error {
	page.Touch(time.Now())
	return upsertRecord(ctx, s.db, tablePage, string(models.PageHome), page)
}

func (s *ContentStore) GetAboutPage(ctx context.Context) (*models.AboutPageContent, error) {
	return getRecord[models.AboutPageContent](ctx, s.db, tablePage, string(models.PageAbout))
}

func (s *ContentStore) SaveAboutPage(ctx context.Context, page *models.AboutPageContent) error {
	page.Touch(time.Now())
	return upsertRecord(ctx, s.db, tablePage, string(models.PageAbout), page)
}

func (s *ContentStore) GetProductPage(ctx context.Context) (*models.ProductPageContent, error) {
	return getRecord[models.ProductPageContent](ctx, s.db, tablePage, string(models.PageProduct))
}

func (s *ContentStore) SaveProductPage(ctx context.Context, page *models.ProductPageContent) error {
	page.Touch(time.Now())
	return upsertRecord(ctx, s.db, tablePage, string(models.PageProduct), page)
}

func (s *ContentStore) GetContactPage(ctx context.Context) (*models.ContactPageContent, error) {
	return getRecord[models.ContactPageContent](ctx, s.db, tablePage, string(models.PageContact))
}

func (s *ContentStore) SaveContactPage(ctx context.Context, page *models.ContactPageContent) error {
	page.Touch(time.Now())
	return upsertRecord(ctx, s.db, tablePage, string(models.PageContact), page)
}

func (s *ContentStore) DeletePage(ctx context.Context, kind models.PageKind) error {
	return deleteRecord[map[string]any](ctx, s.db, tablePage, string(kind))
}

// --- Partners ---

func (s *ContentStore) ListPartners(ctx context.Context) ([]*models.PartnerOrganization, error) {
	sql := "SELECT * FROM partner ORDER BY display_order ASC, name ASC"
	partners, err := queryRecords[models.PartnerOrganization](ctx, s.db, sql, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	return partners, nil
}

func (s *ContentStore) GetPartner(ctx context.Context, partnerID string) (*models.PartnerOrganization, error) {
	return getRecord[models.PartnerOrganization](ctx, s.db, tablePartner, partnerID)
}

func (s *ContentStore) SavePartner(ctx context.Context, partner *models.PartnerOrganization) error {
	if partner.PartnerID == "" {
		partner.PartnerID = models.NewPartnerID()
	}
	partner.Touch(time.Now())
	return upsertRecord(ctx, s.db, tablePartner, partner.PartnerID, partner)
}

func (s *ContentStore) DeletePartner(ctx context.Context, partnerID string) error {
	return deleteRecord[models.PartnerOrganization](ctx, s.db, tablePartner, partnerID)
}

// --- Segments ---

func (s *ContentStore) ListSegments(ctx context.Context) ([]*models.AudienceSegment, error) {
	sql := "SELECT * FROM segment ORDER BY display_order ASC, slug ASC"
	segments, err := queryRecords[models.AudienceSegment](ctx, s.db, sql, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list segments: %w", err)
	}
	return segments, nil
}

func (s *ContentStore) GetSegment(ctx context.Context, slug string) (*models.AudienceSegment, error) {
	return getRecord[models.AudienceSegment](ctx, s.db, tableSegment, slug)
}

func (s *ContentStore) SaveSegment(ctx context.Context, segment *models.AudienceSegment) error {
	return upsertRecord(ctx, s.db, tableSegment, segment.Slug, segment)
}

func (s *ContentStore) DeleteSegment(ctx context.Context, slug string) error {
	return deleteRecord[models.AudienceSegment](ctx, s.db, tableSegment, slug)
}

// --- Inquiries ---

func (s *ContentStore) SaveInquiry(ctx context.Context, inquiry *models.ContactInquiry) error {
	if inquiry.InquiryID == "" {
		inquiry.InquiryID = models.NewInquiryID()
	}
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now()
	}
	return upsertRecord(ctx, s.db, tableInquiry, inquiry.InquiryID, inquiry)
}

func (s *ContentStore) ListInquiries(ctx context.Context, limit int) ([]*models.ContactInquiry, error) {
	sql := "SELECT * FROM inquiry ORDER BY created_at DESC"
	var vars map[string]any
	if limit > 0 {
		sql += " LIMIT $limit"
		vars = map[string]any{"limit": limit}
	}

	inquiries, err := queryRecords[models.ContactInquiry](ctx, s.db, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return inquiries, nil
}

func (s *ContentStore) DeleteInquiry(ctx context.Context, inquiryID string) error {
	return deleteRecord[models.ContactInquiry](ctx, s.db, tableInquiry, inquiryID)
}

// Compile-time check
var _ interfaces.ContentStore = (*ContentStore)(nil)
