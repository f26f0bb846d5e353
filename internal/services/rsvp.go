package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"invitepages/internal/domain"
)

const maxCompanions = 10

type rsvpService struct {
	invitationRepo domain.InvitationRepository
	rsvpRepo       domain.RSVPRepository
	contextTimeout time.Duration
}

// NewRSVPService creates an RSVPService with the given repositories.
func NewRSVPService(invitationRepo domain.InvitationRepository, rsvpRepo domain.RSVPRepository, timeout time.Duration) domain.RSVPService {
	return &rsvpService{
		invitationRepo: invitationRepo,
		rsvpRepo:       rsvpRepo,
		contextTimeout: timeout,
	}
}

func (s *rsvpService) SubmitRSVP(ctx context.Context, slug, guestName string, attending bool, companions int, message string) (*domain.RSVPResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, domain.NewValidationError("guest_name", "is required")
	}
	if companions < 0 || companions > maxCompanions {
		return nil, domain.NewValidationError("companions", fmt.Sprintf("must be between 0 and %d", maxCompanions))
	}

	rec, err := s.invitationRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	schema, err := NormalizeRecord(rec)
	if err != nil {
		return nil, err
	}

	// Responses are accepted only when the tier carries the rsvp feature
	// and the owner left it visible.
	if !domain.HasFeature(schema.Metadata.Tier, domain.FeatureRSVP) || !schema.Features[domain.FeatureRSVP].Visible {
		return nil, domain.ErrForbidden
	}

	resp := domain.NewRSVPResponse(
		uuid.NewString(),
		schema.Metadata.ID,
		guestName,
		attending,
		companions,
		strings.TrimSpace(message),
		time.Now(),
	)
	if err := s.rsvpRepo.Create(ctx, resp); err != nil {
		return nil, fmt.Errorf("create rsvp: %w", err)
	}
	return resp, nil
}

func (s *rsvpService) ListResponsesBySlug(ctx context.Context, slug string) ([]*domain.RSVPResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rec, err := s.invitationRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}

	responses, err := s.rsvpRepo.ListByInvitationID(ctx, rec.ID)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	if responses == nil {
		responses = []*domain.RSVPResponse{}
	}
	return responses, nil
}
