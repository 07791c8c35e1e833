package sqlite

import (
	"context"
	"time"

	"github.com/bobmcallan/insurancebuddy/internal/common"
	"github.com/bobmcallan/insurancebuddy/internal/interfaces"
	"github.com/bobmcallan/insurancebuddy/internal/models"
)

// ContentStore implements interfaces.ContentStore on the documents table.
type ContentStore struct {
	docs   *documents
	logger *common.Logger
}

func (s *ContentStore) GetHomePage(ctx context.Context) (*models.HomePageContent, error) {
	page := &models.HomePageContent{}
	if err := s.docs.get(ctx, kindPage, string(models.PageHome), page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *ContentStore) SaveHomePage(ctx context.Context, page *models.HomePageContent) error {
	page.Touch(time.Now())
	return s.docs.put(ctx, kindPage, string(models.PageHome), page)
}

func (s *ContentStore) GetAboutPage(ctx context.Context) (*models.AboutPageContent, error) {
	page := &models.AboutPageContent{}
	if err := s.docs.get(ctx, kindPage, string(models.PageAbout), page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *ContentStore) SaveAboutPage(ctx context.Context, page *models.AboutPageContent) error {
	page.Touch(time.Now())
	return s.docs.put(ctx, kindPage, string(models.PageAbout), page)
}

func (s *ContentStore) GetProductPage(ctx context.Context) (*models.ProductPageContent, error) {
	page := &models.ProductPageContent{}
	if err := s.docs.get(ctx, kindPage, string(models.PageProduct), page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *ContentStore) SaveProductPage(ctx context.Context, page *models.ProductPageContent) error {
	page.Touch(time.Now())
	return s.docs.put(ctx, kindPage, string(models.PageProduct), page)
}

func (s *ContentStore) GetContactPage(ctx context.Context) (*models.ContactPageContent, error) {
	page := &models.ContactPageContent{}
	if err := s.docs.get(ctx, kindPage, string(models.PageContact), page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *ContentStore) SaveContactPage(ctx context.Context, page *models.ContactPageContent) error {
	page.Touch(time.Now())
	return s.docs.put(ctx, kindPage, string(models.PageContact), page)
}

func (s *ContentStore) DeletePage(ctx context.Context, kind models.PageKind) error {
	return s.docs.delete(ctx, kindPage, string(kind))
}

func (s *ContentStore) ListPartners(ctx context.Context) ([]*models.PartnerOrganization, error) {
	partners, err := listAs[models.PartnerOrganization](ctx, s.docs, kindPartner)
	if err != nil {
		return nil, err
	}
	models.SortPartners(partners)
	return partners, nil
}

func (s *ContentStore) GetPartner(ctx context.Context, partnerID string) (*models.PartnerOrganization, error) {
	partner := &models.PartnerOrganization{}
	if err := s.docs.get(ctx, kindPartner, partnerID, partner); err != nil {
		return nil, err
	}
	return partner, nil
}

func (s *ContentStore) SavePartner(ctx context.Context, partner *models.PartnerOrganization) error {
	if partner.PartnerID == "" {
		partner.PartnerID = models.NewPartnerID()
	}
	partner.Touch(time.Now())
	return s.docs.put(ctx, kindPartner, partner.PartnerID, partner)
}

func (s *ContentStore) DeletePartner(ctx context.Context, partnerID string) error {
	return s.docs.delete(ctx, kindPartner, partnerID)
}

func (s *ContentStore) ListSegments(ctx context.Context) ([]*models.AudienceSegment, error) {
	segments, err := listAs[models.AudienceSegment](ctx, s.docs, kindSegment)
	if err != nil {
		return nil, err
	}
	models.SortSegments(segments)
	return segments, nil
}

func (s *ContentStore) GetSegment(ctx context.Context, slug string) (*models.AudienceSegment, error) {
	segment := &models.AudienceSegment{}
	if err := s.docs.get(ctx, kindSegment, slug, segment); err != nil {
		return nil, err
	}
	return segment, nil
}

func (s *ContentStore) SaveSegment(ctx context.Context, segment *models.AudienceSegment) error {
	return s.docs.put(ctx, kindSegment, segment.Slug, segment)
}

func (s *ContentStore) DeleteSegment(ctx context.Context, slug string) error {
	return s.docs.delete(ctx, kindSegment, slug)
}

func (s *ContentStore) SaveInquiry(ctx context.Context, inquiry *models.ContactInquiry) error {
	if inquiry.InquiryID == "" {
		inquiry.InquiryID = models.NewInquiryID()
	}
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now()
	}
	return s.docs.put(ctx, kindInquiry, inquiry.InquiryID, inquiry)
}

func (s *ContentStore) ListInquiries(ctx context.Context, limit int) ([]*models.ContactInquiry, error) {
	inquiries, err := listAs[models.ContactInquiry](ctx, s.docs, kindInquiry)
	if err != nil {
		return nil, err
	}
	models.SortInquiries(inquiries)
	if limit > 0 && len(inquiries) > limit {
		inquiries = inquiries[:limit]
	}
	return inquiries, nil
}

func (s *ContentStore) DeleteInquiry(ctx context.Context, inquiryID string) error {
	return s.docs.delete(ctx, kindInquiry, inquiryID)
}

// Compile-time check
var _ interfaces.ContentStore = (*ContentStore)(nil)
