package models

import (
	"sort"
	"time"
)

// PageKind names one of the singleton content pages.
type PageKind string

const (
	PageHome    PageKind = "home"
	PageAbout   PageKind = "about"
	PageProduct PageKind = "product"
	PageContact PageKind = "contact"
)

// PageKinds lists every editable page.
var PageKinds = []PageKind{PageHome, PageAbout, PageProduct, PageContact}

// ParsePageKind validates a page kind from a URL segment.
func ParsePageKind(s string) (PageKind, bool) {
	for _, k := range PageKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// TimeStamps is embedded by every persisted content record.
type TimeStamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Touch sets CreatedAt on first save and UpdatedAt on every save.
func (t *TimeStamps) Touch(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}

// HomeStat is a headline number on the home page.
type HomeStat struct {
	Value        string `json:"value"`
	Label        string `json:"label"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

// HomeFeature is a feature card on the home page.
type HomeFeature struct {
	Icon         string `json:"icon"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

// HomePageContent is the editable copy of the landing page.
type HomePageContent struct {
	HeroKicker        string        `json:"hero_kicker"`
	HeroHeadline      string        `json:"hero_headline"`
	HeroSubheadline   string        `json:"hero_subheadline"`
	PrimaryCTALabel   string        `json:"primary_cta_label"`
	PrimaryCTAURL     string        `json:"primary_cta_url"`
	SecondaryCTALabel string        `json:"secondary_cta_label"`
	SecondaryCTAURL   string        `json:"secondary_cta_url"`
	TrustHeading      string        `json:"trust_heading"`
	TrustBody         string        `json:"trust_body"`
	Stats             []HomeStat    `json:"stats"`
	Features          []HomeFeature `json:"features"`
	TimeStamps
}

// SortChildren orders stats and features by display order, stable for ties.
func (h *HomePageContent) SortChildren() {
	sort.SliceStable(h.Stats, func(i, j int) bool { return h.Stats[i].DisplayOrder < h.Stats[j].DisplayOrder })
	sort.SliceStable(h.Features, func(i, j int) bool { return h.Features[i].DisplayOrder < h.Features[j].DisplayOrder })
}

// AboutValue is one value card on the about page.
type AboutValue struct {
	Icon         string `json:"icon"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

// AboutPageContent is the editable copy of the about page.
type AboutPageContent struct {
	Kicker   string       `json:"kicker"`
	Headline string       `json:"headline"`
	Intro    string       `json:"intro"`
	Values   []AboutValue `json:"values"`
	TimeStamps
}

// SortChildren orders values by display order, stable for ties.
func (a *AboutPageContent) SortChildren() {
	sort.SliceStable(a.Values, func(i, j int) bool { return a.Values[i].DisplayOrder < a.Values[j].DisplayOrder })
}

// ProductPageContent is the editable copy around the plan finder.
type ProductPageContent struct {
	Kicker           string `json:"kicker"`
	Headline         string `json:"headline"`
	Subheadline      string `json:"subheadline"`
	SummaryLine      string `json:"summary_line"`
	SummarySecondary string `json:"summary_secondary"`
	TimeStamps
}

// ContactPageContent is the editable copy of the contact page.
type ContactPageContent struct {
	Kicker       string `json:"kicker"`
	Headline     string `json:"headline"`
	Intro        string `json:"intro"`
	SupportEmail string `json:"support_email"`
	TimeStamps
}

// PartnerOrganization is a university partner shown in the logo strip.
type PartnerOrganization struct {
	PartnerID    string `json:"partner_id"`
	Name         string `json:"name"`
	Campus       string `json:"campus"`
	Website      string `json:"website"`
	LogoURL      string `json:"logo_url"`
	DisplayOrder int    `json:"display_order"`
	TimeStamps
}

// AudienceSegment is a selectable audience on the home and product pages.
// The slug doubles as the record id.
type AudienceSegment struct {
	Slug         string `json:"slug"`
	Label        string `json:"label"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"display_order"`
	IsDefault    bool   `json:"is_default"`
}

// ContactInquiry is a message submitted through the contact form.
type ContactInquiry struct {
	InquiryID string    `json:"inquiry_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// SortPartners orders partners by display order then name.
func SortPartners(partners []*PartnerOrganization) {
	sort.SliceStable(partners, func(i, j int) bool {
		if partners[i].DisplayOrder != partners[j].DisplayOrder {
			return partners[i].DisplayOrder < partners[j].DisplayOrder
		}
		return partners[i].Name < partners[j].Name
	})
}

// SortSegments orders segments by display order then slug.
func SortSegments(segments []*AudienceSegment) {
	sort.SliceStable(segments, func(i, j int) bool {
		if segments[i].DisplayOrder != segments[j].DisplayOrder {
			return segments[i].DisplayOrder < segments[j].DisplayOrder
		}
		return segments[i].Slug < segments[j].Slug
	})
}

// SortInquiries orders inquiries newest first.
func SortInquiries(inquiries []*ContactInquiry) {
	sort.SliceStable(inquiries, func(i, j int) bool {
		return inquiries[i].CreatedAt.After(inquiries[j].CreatedAt)
	})
}
