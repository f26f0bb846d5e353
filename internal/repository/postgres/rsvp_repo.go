package postgres

import (
	"context"
	"database/sql"

	"invitepages/internal/domain"
)

type rsvpRepository struct {
	DB *sql.DB
}

// NewRSVPRepository returns an RSVPRepository backed by postgres.
func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{
		DB: db,
	}
}

func (r *rsvpRepository) Create(ctx context.Context, resp *domain.RSVPResponse) error {
	query := `
		INSERT INTO rsvp_responses (id, invitation_id, guest_name, attending, companions, message, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query,
		resp.ID, resp.InvitationID, resp.GuestName, resp.Attending, resp.Companions, resp.Message, resp.SubmittedAt,
	)
	return err
}

func (r *rsvpRepository) ListByInvitationID(ctx context.Context, invitationID string) ([]*domain.RSVPResponse, error) {
	query := `
		SELECT id, invitation_id, guest_name, attending, companions, message, submitted_at
		FROM rsvp_responses
		WHERE invitation_id = $1
		ORDER BY submitted_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, invitationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	responses := make([]*domain.RSVPResponse, 0)
	for rows.Next() {
		resp := &domain.RSVPResponse{}
		var messageNull sql.NullString
		if err := rows.Scan(&resp.ID, &resp.InvitationID, &resp.GuestName, &resp.Attending, &resp.Companions, &messageNull, &resp.SubmittedAt); err != nil {
			return nil, err
		}
		if messageNull.Valid {
			resp.Message = messageNull.String
		}
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}
