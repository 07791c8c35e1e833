package models

import "github.com/google/uuid"

// NewPartnerID returns a short random partner id, e.g. "p_1a2b3c4d".
func NewPartnerID() string {
	return "p_" + uuid.New().String()[:8]
}

// NewInquiryID returns a short random inquiry id, e.g. "inq_1a2b3c4d".
func NewInquiryID() string {
	return "inq_" + uuid.New().String()[:8]
}
