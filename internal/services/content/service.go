// Package content serves and edits the persisted site copy
package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bobmcallan/insurancebuddy/internal/common"
	"github.com/bobmcallan/insurancebuddy/internal/interfaces"
	"github.com/bobmcallan/insurancebuddy/internal/models"
)

// Compile-time interface check
var _ interfaces.ContentService = (*Service)(nil)

// Service implements ContentService
type Service struct {
	storage interfaces.StorageManager
	logger  *common.Logger
}

// NewService creates a new content service
func NewService(storage interfaces.StorageManager, logger *common.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

func (s *Service) store() interfaces.ContentStore {
	return s.storage.ContentStore()
}

// --- Pages ---

// HomePage returns the saved home page or the default copy.
func (s *Service) HomePage(ctx context.Context) (*models.HomePageContent, error) {
	page, err := s.store().GetHomePage(ctx)
	if errors.Is(err, interfaces.ErrNotFound) {
		return models.DefaultHomePageContent(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get home page: %w", err)
	}
	page.SortChildren()
	return page, nil
}

func (s *Service) AboutPage(ctx context.Context) (*models.AboutPageContent, error) {
	page, err := s.store().GetAboutPage(ctx)
	if errors.Is(err, interfaces.ErrNotFound) {
		return models.DefaultAboutPageContent(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get about page: %w", err)
	}
	page.SortChildren()
	return page, nil
}

func (s *Service) ProductPage(ctx context.Context) (*models.ProductPageContent, error) {
	page, err := s.store().GetProductPage(ctx)
	if errors.Is(err, interfaces.ErrNotFound) {
		return models.DefaultProductPageContent(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product page: %w", err)
	}
	return page, nil
}

func (s *Service) ContactPage(ctx context.Context) (*models.ContactPageContent, error) {
	page, err := s.store().GetContactPage(ctx)
	if errors.Is(err, interfaces.ErrNotFound) {
		return models.DefaultContactPageContent(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact page: %w", err)
	}
	return page, nil
}

// SaveHomePage validates and stores the home page with its stats and features.
// Blank fields that have a default take it.
func (s *Service) SaveHomePage(ctx context.Context, page *models.HomePageContent) error {
	def := models.DefaultHomePageContent()
	fillDefault(&page.HeroKicker, def.HeroKicker)
	fillDefault(&page.PrimaryCTALabel, def.PrimaryCTALabel)
	fillDefault(&page.PrimaryCTAURL, def.PrimaryCTAURL)
	fillDefault(&page.SecondaryCTALabel, def.SecondaryCTALabel)
	fillDefault(&page.SecondaryCTAURL, def.SecondaryCTAURL)
	fillDefault(&page.TrustHeading, def.TrustHeading)

	var v validator
	v.maxLen("hero_kicker", page.HeroKicker, 120)
	v.required("hero_headline", page.HeroHeadline)
	v.maxLen("hero_headline", page.HeroHeadline, 255)
	v.required("hero_subheadline", page.HeroSubheadline)
	v.maxLen("primary_cta_label", page.PrimaryCTALabel, 80)
	v.maxLen("primary_cta_url", page.PrimaryCTAURL, 255)
	v.maxLen("secondary_cta_label", page.SecondaryCTALabel, 80)
	v.maxLen("secondary_cta_url", page.SecondaryCTAURL, 255)
	v.maxLen("trust_heading", page.TrustHeading, 255)
	for i := range page.Stats {
		st := &page.Stats[i]
		field := fmt.Sprintf("stats[%d]", i)
		v.required(field+".value", st.Value)
		v.maxLen(field+".value", st.Value, 40)
		v.required(field+".label", st.Label)
		v.maxLen(field+".label", st.Label, 120)
		v.maxLen(field+".description", st.Description, 120)
		v.order(field+".display_order", st.DisplayOrder)
	}
	for i := range page.Features {
		f := &page.Features[i]
		field := fmt.Sprintf("features[%d]", i)
		fillDefault(&f.Icon, "✨")
		v.maxLen(field+".icon", f.Icon, 10)
		v.required(field+".title", f.Title)
		v.maxLen(field+".title", f.Title, 120)
		v.required(field+".description", f.Description)
		v.order(field+".display_order", f.DisplayOrder)
	}
	if err := v.err(); err != nil {
		return err
	}

	page.SortChildren()
	if existing, err := s.store().GetHomePage(ctx); err == nil {
		page.CreatedAt = existing.CreatedAt
	}
	if err := s.store().SaveHomePage(ctx, page); err != nil {
		return fmt.Errorf("failed to save home page: %w", err)
	}
	s.logger.Info().Int("stats", len(page.Stats)).Int("features", len(page.Features)).Msg("Home page saved")
	return nil
}

func (s *Service) SaveAboutPage(ctx context.Context, page *models.AboutPageContent) error {
	fillDefault(&page.Kicker, models.DefaultAboutPageContent().Kicker)

	var v validator
	v.maxLen("kicker", page.Kicker, 120)
	v.required("headline", page.Headline)
	v.maxLen("headline", page.Headline, 255)
	v.required("intro", page.Intro)
	for i := range page.Values {
		val := &page.Values[i]
		field := fmt.Sprintf("values[%d]", i)
		fillDefault(&val.Icon, "💡")
		v.maxLen(field+".icon", val.Icon, 10)
		v.required(field+".title", val.Title)
		v.maxLen(field+".title", val.Title, 120)
		v.required(field+".description", val.Description)
		v.order(field+".display_order", val.DisplayOrder)
	}
	if err := v.err(); err != nil {
		return err
	}

	page.SortChildren()
	if existing, err := s.store().GetAboutPage(ctx); err == nil {
		page.CreatedAt = existing.CreatedAt
	}
	if err := s.store().SaveAboutPage(ctx, page); err != nil {
		return fmt.Errorf("failed to save about page: %w", err)
	}
	s.logger.Info().Int("values", len(page.Values)).Msg("About page saved")
	return nil
}

func (s *Service) SaveProductPage(ctx context.Context, page *models.ProductPageContent) error {
	fillDefault(&page.Kicker, models.DefaultProductPageContent().Kicker)

	var v validator
	v.maxLen("kicker", page.Kicker, 120)
	v.required("headline", page.Headline)
	v.maxLen("headline", page.Headline, 255)
	v.required("subheadline", page.Subheadline)
	v.maxLen("summary_line", page.SummaryLine, 255)
	v.maxLen("summary_secondary", page.SummarySecondary, 255)
	if err := v.err(); err != nil {
		return err
	}

	if existing, err := s.store().GetProductPage(ctx); err == nil {
		page.CreatedAt = existing.CreatedAt
	}
	if err := s.store().SaveProductPage(ctx, page); err != nil {
		return fmt.Errorf("failed to save product page: %w", err)
	}
	s.logger.Info().Msg("Product page saved")
	return nil
}

func (s *Service) SaveContactPage(ctx context.Context, page *models.ContactPageContent) error {
	def := models.DefaultContactPageContent()
	fillDefault(&page.Kicker, def.Kicker)
	fillDefault(&page.SupportEmail, def.SupportEmail)

	var v validator
	v.maxLen("kicker", page.Kicker, 120)
	v.required("headline", page.Headline)
	v.maxLen("headline", page.Headline, 255)
	v.required("intro", page.Intro)
	v.email("support_email", page.SupportEmail)
	if err := v.err(); err != nil {
		return err
	}

	if existing, err := s.store().GetContactPage(ctx); err == nil {
		page.CreatedAt = existing.CreatedAt
	}
	if err := s.store().SaveContactPage(ctx, page); err != nil {
		return fmt.Errorf("failed to save contact page: %w", err)
	}
	s.logger.Info().Str("support_email", page.SupportEmail).Msg("Contact page saved")
	return nil
}

// ResetPage deletes the saved page so the default copy is served again.
func (s *Service) ResetPage(ctx context.Context, kind models.PageKind) error {
	if err := s.store().DeletePage(ctx, kind); err != nil {
		return fmt.Errorf("failed to reset %s page: %w", kind, err)
	}
	s.logger.Info().Str("page", string(kind)).Msg("Page reset to defaults")
	return nil
}

func fillDefault(field *string, def string) {
	if strings.TrimSpace(*field) == "" {
		*field = def
	}
}

// --- Partners ---

func (s *Service) Partners(ctx context.Context) ([]*models.PartnerOrganization, error) {
	partners, err := s.store().ListPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	return partners, nil
}

func (s *Service) Partner(ctx context.Context, partnerID string) (*models.PartnerOrganization, error) {
	return s.store().GetPartner(ctx, partnerID)
}

// SavePartner creates the partner when PartnerID is empty, otherwise
// replaces the existing record.
func (s *Service) SavePartner(ctx context.Context, partner *models.PartnerOrganization) error {
	var v validator
	v.required("name", partner.Name)
	v.maxLen("name", partner.Name, 150)
	v.maxLen("campus", partner.Campus, 150)
	v.absoluteURL("website", partner.Website)
	v.required("logo_url", partner.LogoURL)
	v.absoluteURL("logo_url", partner.LogoURL)
	v.order("display_order", partner.DisplayOrder)
	if err := v.err(); err != nil {
		return err
	}

	if partner.PartnerID != "" {
		existing, err := s.store().GetPartner(ctx, partner.PartnerID)
		if err != nil {
			return err
		}
		partner.CreatedAt = existing.CreatedAt
	}

	if err := s.store().SavePartner(ctx, partner); err != nil {
		return fmt.Errorf("failed to save partner: %w", err)
	}
	s.logger.Info().Str("partner_id", partner.PartnerID).Str("name", partner.Name).Msg("Partner saved")
	return nil
}

// SetPartnerOrder changes only the display order of a partner.
func (s *Service) SetPartnerOrder(ctx context.Context, partnerID string, order int) (*models.PartnerOrganization, error) {
	var v validator
	v.order("display_order", order)
	if err := v.err(); err != nil {
		return nil, err
	}

	partner, err := s.store().GetPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	partner.DisplayOrder = order
	if err := s.store().SavePartner(ctx, partner); err != nil {
		return nil, fmt.Errorf("failed to save partner: %w", err)
	}
	return partner, nil
}

func (s *Service) DeletePartner(ctx context.Context, partnerID string) error {
	if _, err := s.store().GetPartner(ctx, partnerID); err != nil {
		return err
	}
	if err := s.store().DeletePartner(ctx, partnerID); err != nil {
		return fmt.Errorf("failed to delete partner: %w", err)
	}
	s.logger.Info().Str("partner_id", partnerID).Msg("Partner deleted")
	return nil
}

// --- Segments ---

// Segments returns the saved audience segments, or the defaults when none
// have been saved.
func (s *Service) Segments(ctx context.Context) ([]*models.AudienceSegment, error) {
	segments, err := s.store().ListSegments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list segments: %w", err)
	}
	if len(segments) == 0 {
		return models.DefaultSegments(), nil
	}
	return segments, nil
}

func (s *Service) Segment(ctx context.Context, slug string) (*models.AudienceSegment, error) {
	return s.store().GetSegment(ctx, slug)
}

func validateSegment(seg *models.AudienceSegment) error {
	fillDefault(&seg.Icon, "👤")

	var v validator
	v.slug("slug", seg.Slug)
	v.maxLen("slug", seg.Slug, 50)
	v.required("label", seg.Label)
	v.maxLen("label", seg.Label, 120)
	v.required("description", seg.Description)
	v.maxLen("description", seg.Description, 255)
	v.maxLen("icon", seg.Icon, 10)
	v.order("display_order", seg.DisplayOrder)
	return v.err()
}

// CreateSegment stores a new segment. The slug must be unused.
func (s *Service) CreateSegment(ctx context.Context, seg *models.AudienceSegment) error {
	if err := validateSegment(seg); err != nil {
		return err
	}
	if _, err := s.store().GetSegment(ctx, seg.Slug); err == nil {
		return fmt.Errorf("segment %q: %w", seg.Slug, ErrConflict)
	} else if !errors.Is(err, interfaces.ErrNotFound) {
		return fmt.Errorf("failed to check segment: %w", err)
	}

	if err := s.store().SaveSegment(ctx, seg); err != nil {
		return fmt.Errorf("failed to save segment: %w", err)
	}
	s.logger.Info().Str("slug", seg.Slug).Msg("Segment created")
	return nil
}

// UpdateSegment replaces the segment at slug. Changing the slug renames the
// record and fails if the new slug is taken.
func (s *Service) UpdateSegment(ctx context.Context, slug string, seg *models.AudienceSegment) error {
	if seg.Slug == "" {
		seg.Slug = slug
	}
	if err := validateSegment(seg); err != nil {
		return err
	}
	if _, err := s.store().GetSegment(ctx, slug); err != nil {
		return err
	}
	if seg.Slug != slug {
		if _, err := s.store().GetSegment(ctx, seg.Slug); err == nil {
			return fmt.Errorf("segment %q: %w", seg.Slug, ErrConflict)
		} else if !errors.Is(err, interfaces.ErrNotFound) {
			return fmt.Errorf("failed to check segment: %w", err)
		}
	}

	if err := s.store().SaveSegment(ctx, seg); err != nil {
		return fmt.Errorf("failed to save segment: %w", err)
	}
	if seg.Slug != slug {
		if err := s.store().DeleteSegment(ctx, slug); err != nil {
			return fmt.Errorf("failed to remove renamed segment: %w", err)
		}
	}
	s.logger.Info().Str("slug", seg.Slug).Msg("Segment updated")
	return nil
}

func (s *Service) DeleteSegment(ctx context.Context, slug string) error {
	if _, err := s.store().GetSegment(ctx, slug); err != nil {
		return err
	}
	if err := s.store().DeleteSegment(ctx, slug); err != nil {
		return fmt.Errorf("failed to delete segment: %w", err)
	}
	s.logger.Info().Str("slug", slug).Msg("Segment deleted")
	return nil
}

// DefaultMember returns the slug of the first default segment when it names
// a plan member type, otherwise "".
func (s *Service) DefaultMember(ctx context.Context) string {
	segments, err := s.Segments(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to read segments for default member")
		return ""
	}
	for _, seg := range segments {
		if seg.IsDefault {
			if models.IsMemberType(seg.Slug) {
				return seg.Slug
			}
			return ""
		}
	}
	return ""
}

// --- Inquiries ---

// SubmitInquiry validates and stores a contact form message.
func (s *Service) SubmitInquiry(ctx context.Context, inquiry *models.ContactInquiry) error {
	inquiry.Name = strings.TrimSpace(inquiry.Name)
	inquiry.Email = strings.TrimSpace(inquiry.Email)
	inquiry.Message = strings.TrimSpace(inquiry.Message)

	var v validator
	v.required("name", inquiry.Name)
	v.maxLen("name", inquiry.Name, 150)
	v.required("email", inquiry.Email)
	v.email("email", inquiry.Email)
	v.required("message", inquiry.Message)
	v.maxLen("message", inquiry.Message, 5000)
	if err := v.err(); err != nil {
		return err
	}

	inquiry.InquiryID = ""
	inquiry.CreatedAt = time.Time{}
	if err := s.store().SaveInquiry(ctx, inquiry); err != nil {
		return fmt.Errorf("failed to save inquiry: %w", err)
	}
	s.logger.Info().Str("inquiry_id", inquiry.InquiryID).Msg("Contact inquiry received")
	return nil
}

func (s *Service) Inquiries(ctx context.Context, limit int) ([]*models.ContactInquiry, error) {
	inquiries, err := s.store().ListInquiries(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return inquiries, nil
}

func (s *Service) DeleteInquiry(ctx context.Context, inquiryID string) error {
	if err := s.store().DeleteInquiry(ctx, inquiryID); err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}
	return nil
}
