package postgres

import (
	"context"
	"database/sql"
	"errors"

	"invitepages/internal/domain"
)

type invitationRepository struct {
	DB *sql.DB
}

// NewInvitationRepository returns an InvitationRepository backed by postgres.
func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{
		DB: db,
	}
}

const invitationColumns = `id, slug, tier, skin_id, event_type, language, owner_id, is_active, created_at, updated_at, expires_at, content`

func (r *invitationRepository) GetBySlug(ctx context.Context, slug string) (*domain.InvitationRecord, error) {
	// Inactive rows are filtered here so missing and deactivated slugs are
	// indistinguishable to callers.
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE slug = $1 AND is_active = TRUE
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, slug))
}

func (r *invitationRepository) GetByID(ctx context.Context, id string) (*domain.InvitationRecord, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE id = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *invitationRepository) IncrementViewCount(ctx context.Context, slug string) error {
	query := `UPDATE invitations SET view_count = view_count + 1 WHERE slug = $1`
	_, err := r.DB.ExecContext(ctx, query, slug)
	return err
}

func (r *invitationRepository) scanOne(row *sql.Row) (*domain.InvitationRecord, error) {
	rec := &domain.InvitationRecord{}
	var ownerNull sql.NullString
	var expiresNull sql.NullTime
	err := row.Scan(
		&rec.ID, &rec.Slug, &rec.Tier, &rec.SkinID, &rec.EventType, &rec.Language,
		&ownerNull, &rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt, &expiresNull, &rec.Content,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if ownerNull.Valid {
		rec.OwnerID = &ownerNull.String
	}
	if expiresNull.Valid {
		rec.ExpiresAt = &expiresNull.Time
	}
	return rec, nil
}
