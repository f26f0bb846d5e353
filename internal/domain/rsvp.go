package domain

import (
	"context"
	"time"
)

// RSVPResponse is one guest's answer to an invitation.
// swagger:model RSVPResponse
type RSVPResponse struct {
	ID           string    `json:"id"`
	InvitationID string    `json:"invitation_id"`
	GuestName    string    `json:"guest_name"`
	Attending    bool      `json:"attending"`
	Companions   int       `json:"companions"`
	Message      string    `json:"message,omitempty"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// NewRSVPResponse returns an RSVPResponse with the identifier and
// submission timestamp assigned.
func NewRSVPResponse(id, invitationID, guestName string, attending bool, companions int, message string, submittedAt time.Time) *RSVPResponse {
	return &RSVPResponse{
		ID:           id,
		InvitationID: invitationID,
		GuestName:    guestName,
		Attending:    attending,
		Companions:   companions,
		Message:      message,
		SubmittedAt:  submittedAt,
	}
}

// RSVPRepository defines storage operations for guest responses.
type RSVPRepository interface {
	Create(ctx context.Context, resp *RSVPResponse) error
	ListByInvitationID(ctx context.Context, invitationID string) ([]*RSVPResponse, error)
}

// RSVPService defines guest-facing response submission.
type RSVPService interface {
	// SubmitRSVP validates and records a guest response for the active
	// invitation stored under slug. Returns ErrNotFound when the slug does
	// not resolve, ErrForbidden when the invitation does not accept
	// responses, and *ValidationError for bad guest input.
	SubmitRSVP(ctx context.Context, slug, guestName string, attending bool, companions int, message string) (*RSVPResponse, error)
	// ListResponsesBySlug returns all responses for the active invitation
	// stored under slug, newest first.
	ListResponsesBySlug(ctx context.Context, slug string) ([]*RSVPResponse, error)
}
