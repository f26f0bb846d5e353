package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"invitepages/internal/domain"
)

// rawContent mirrors the semi-structured content blob as stored. Pointer
// fields distinguish absent from empty.
type rawContent struct {
	Headline   *string                                     `json:"headline"`
	Subtitle   *string                                     `json:"subtitle"`
	Message    *string                                     `json:"message"`
	Couple     *domain.CoupleInfo                          `json:"couple"`
	Hosts      []domain.HostInfo                           `json:"hosts"`
	CoverImage *string                                     `json:"cover_image"`
	Gallery    []string                                    `json:"gallery"`
	Quote      *string                                     `json:"quote"`
	Logistics  map[string]any                              `json:"logistics"`
	Features   map[domain.FeatureKey]domain.FeatureSetting `json:"features"`
	SkinConfig map[string]string                           `json:"skin_config"`
}

// NormalizeRecord transforms a stored invitation record into the
// canonical schema. It is a pure transform: the record is not modified
// and the schema is built fresh on every call.
//
// Required content fields are headline, message, logistics, and features;
// a blob missing any of them fails with ErrMalformedContent. Tier and
// language are validated against their enumerations here (fail-fast),
// while the skin id passes through untouched and is resolved leniently at
// dispatch time. CoverImage defaults to the empty string, the explicit
// "no image" sentinel; OwnerID defaults to empty when the owner reference
// is absent. Other optional fields stay absent rather than defaulted.
func NormalizeRecord(rec *domain.InvitationRecord) (*domain.InvitationSchema, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", domain.ErrMalformedContent)
	}

	var raw rawContent
	if err := json.Unmarshal(rec.Content, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedContent, err)
	}

	if raw.Headline == nil || strings.TrimSpace(*raw.Headline) == "" {
		return nil, fmt.Errorf("%w: missing headline", domain.ErrMalformedContent)
	}
	if raw.Message == nil || strings.TrimSpace(*raw.Message) == "" {
		return nil, fmt.Errorf("%w: missing message", domain.ErrMalformedContent)
	}
	if raw.Logistics == nil {
		return nil, fmt.Errorf("%w: missing logistics", domain.ErrMalformedContent)
	}
	if raw.Features == nil {
		return nil, fmt.Errorf("%w: missing features", domain.ErrMalformedContent)
	}

	tier := domain.Tier(rec.Tier)
	if !tier.IsValid() {
		return nil, fmt.Errorf("%w: unknown tier %q", domain.ErrMalformedContent, rec.Tier)
	}
	lang := domain.Language(rec.Language)
	if !lang.IsValid() {
		return nil, fmt.Errorf("%w: unknown language %q", domain.ErrMalformedContent, rec.Language)
	}

	coverImage := ""
	if raw.CoverImage != nil {
		coverImage = *raw.CoverImage
	}
	ownerID := ""
	if rec.OwnerID != nil {
		ownerID = *rec.OwnerID
	}

	return &domain.InvitationSchema{
		Metadata: domain.SchemaMetadata{
			ID:        rec.ID,
			Slug:      rec.Slug,
			Tier:      tier,
			SkinID:    rec.SkinID,
			EventType: rec.EventType,
			Language:  lang,
			OwnerID:   ownerID,
			IsActive:  rec.IsActive,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
			ExpiresAt: rec.ExpiresAt,
		},
		Content: domain.SchemaContent{
			Headline:   *raw.Headline,
			Subtitle:   raw.Subtitle,
			Message:    *raw.Message,
			Couple:     raw.Couple,
			Hosts:      raw.Hosts,
			CoverImage: coverImage,
			Gallery:    raw.Gallery,
			Quote:      raw.Quote,
		},
		Logistics:  raw.Logistics,
		Features:   raw.Features,
		SkinConfig: raw.SkinConfig,
	}, nil
}
