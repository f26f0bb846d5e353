package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"invitepages/internal/domain"
)

// eventDateKey is the logistics key holding the event timestamp
// (RFC 3339). When present it drives the countdown snapshot.
const eventDateKey = "event_date"

type invitationService struct {
	invitationRepo domain.InvitationRepository
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewInvitationService creates an InvitationService backed by the given
// repository.
func NewInvitationService(invitationRepo domain.InvitationRepository, logger *slog.Logger, timeout time.Duration) domain.InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *invitationService) GetRenderPage(ctx context.Context, slug string, preview bool) (*domain.InvitationPage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rec, err := s.invitationRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}

	schema, err := NormalizeRecord(rec)
	if err != nil {
		// Surfaced upstream as not-found; the log line keeps the real cause.
		s.logger.Error("normalize invitation", "slug", slug, "err", err)
		return nil, err
	}

	if !preview {
		go s.incrementViews(slug)
	}

	return s.assemblePage(schema, preview), nil
}

// assemblePage applies tier gating, content limits, and skin dispatch to
// a canonical schema.
func (s *invitationService) assemblePage(schema *domain.InvitationSchema, preview bool) *domain.InvitationPage {
	tier := schema.Metadata.Tier

	content := schema.Content
	if limit := domain.GalleryLimitFor(tier); len(content.Gallery) > limit {
		content.Gallery = content.Gallery[:limit]
	}

	sections := make(map[domain.FeatureKey]domain.SectionGate)
	for _, key := range domain.FeatureKeys {
		// Tier gating comes first: features outside the tier's set never
		// reach gate evaluation and are absent from the page entirely.
		if !domain.HasFeature(tier, key) {
			continue
		}
		setting := schema.Features[key]
		fallback := ""
		if preview {
			fallback = previewFallback(key)
		}
		sections[key] = EvaluateGateWithFallback(setting.Visible, sectionData(&content, schema, key), fallback)
	}

	page := &domain.InvitationPage{
		Metadata:   schema.Metadata,
		Content:    content,
		Logistics:  schema.Logistics,
		Sections:   sections,
		Skin:       ResolveSkin(schema.Metadata.SkinID),
		SkinConfig: schema.SkinConfig,
	}

	if target, ok := eventDate(schema.Logistics); ok {
		cd := ResolveCountdown(target, s.now())
		page.Countdown = &cd
	}
	if preview {
		overlay := PreviewOverlayFor(schema.Metadata.SkinID)
		page.Preview = &overlay
	}
	return page
}

// sectionData returns the data a feature's gate inspects, already clipped
// to tier limits where applicable. Nil means the feature has no data
// contract and renders on visibility alone.
func sectionData(content *domain.SchemaContent, schema *domain.InvitationSchema, key domain.FeatureKey) any {
	switch key {
	case domain.FeatureGallery:
		return content.Gallery
	case domain.FeatureQuote:
		return content.Quote
	case domain.FeatureMusic, domain.FeatureDressCode, domain.FeatureSocialShare, domain.FeatureGiftRegistry:
		return schema.Features[key].Options
	}
	// countdown and rsvp carry no data contract
	return nil
}

func previewFallback(key domain.FeatureKey) string {
	return fmt.Sprintf("Section %q is hidden: enable it or add content.", key)
}

// eventDate extracts the event timestamp from the logistics block, which
// is otherwise opaque to the core.
func eventDate(logistics map[string]any) (time.Time, bool) {
	raw, ok := logistics[eventDateKey].(string)
	if !ok {
		return time.Time{}, false
	}
	target, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return target, true
}

// incrementViews bumps the view counter in the background. Best-effort:
// failures are logged and never affect the render.
func (s *invitationService) incrementViews(slug string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.contextTimeout)
	defer cancel()
	if err := s.invitationRepo.IncrementViewCount(ctx, slug); err != nil {
		s.logger.Warn("increment view count", "slug", slug, "err", err)
	}
}
