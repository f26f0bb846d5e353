package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Language is the display language of an invitation page.
type Language string

const (
	LanguageES Language = "es"
	LanguageEN Language = "en"
)

// IsValid reports whether l is a supported language.
func (l Language) IsValid() bool {
	return l == LanguageES || l == LanguageEN
}

// InvitationRecord is an invitation row as stored. The content blob is
// kept raw here; NormalizeRecord turns the whole record into the
// canonical InvitationSchema.
// swagger:model InvitationRecord
type InvitationRecord struct {
	ID        string          `json:"id"`
	Slug      string          `json:"slug"`
	Tier      string          `json:"tier"`
	SkinID    string          `json:"skin_id"`
	EventType string          `json:"event_type"`
	Language  string          `json:"language"`
	OwnerID   *string         `json:"owner_id,omitempty"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	Content   json.RawMessage `json:"content"`
}

// InvitationRepository defines storage operations for invitations.
type InvitationRepository interface {
	// GetBySlug returns the active invitation for the slug, or ErrNotFound.
	// Inactive records are reported as ErrNotFound, indistinguishable from
	// missing ones.
	GetBySlug(ctx context.Context, slug string) (*InvitationRecord, error)
	GetByID(ctx context.Context, id string) (*InvitationRecord, error)
	// IncrementViewCount bumps the page view counter for the slug.
	// Best-effort; callers fire it in the background and only log failures.
	IncrementViewCount(ctx context.Context, slug string) error
}

// InvitationService resolves stored invitations into renderable pages.
type InvitationService interface {
	// GetRenderPage resolves the invitation stored under slug into a fully
	// gated, skin-dispatched page view-model. When preview is true the
	// page carries the diagnostic overlay and suppressed sections include
	// placeholder fallbacks.
	GetRenderPage(ctx context.Context, slug string, preview bool) (*InvitationPage, error)
}
