package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invitepages/internal/domain"
)

type fakeRSVPRepository struct {
	created   []*domain.RSVPResponse
	createErr error
	listed    map[string][]*domain.RSVPResponse
	listErr   error
}

func (f *fakeRSVPRepository) Create(ctx context.Context, resp *domain.RSVPResponse) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, resp)
	return nil
}

func (f *fakeRSVPRepository) ListByInvitationID(ctx context.Context, invitationID string) ([]*domain.RSVPResponse, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listed[invitationID], nil
}

func newTestRSVPService(invRepo domain.InvitationRepository, rsvpRepo domain.RSVPRepository) domain.RSVPService {
	return NewRSVPService(invRepo, rsvpRepo, 2*time.Second)
}

func TestSubmitRSVP_success(t *testing.T) {
	rec := validRecord(t)
	rsvpRepo := &fakeRSVPRepository{}
	svc := newTestRSVPService(&fakeInvitationRepository{
		recs: map[string]*domain.InvitationRecord{rec.Slug: rec},
	}, rsvpRepo)

	before := time.Now()
	resp, err := svc.SubmitRSVP(context.Background(), rec.Slug, "  María García  ", true, 2, " See you there! ")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, rec.ID, resp.InvitationID)
	assert.Equal(t, "María García", resp.GuestName)
	assert.True(t, resp.Attending)
	assert.Equal(t, 2, resp.Companions)
	assert.Equal(t, "See you there!", resp.Message)
	assert.False(t, resp.SubmittedAt.Before(before))

	require.Len(t, rsvpRepo.created, 1)
	assert.Equal(t, resp, rsvpRepo.created[0])
}

func TestSubmitRSVP_validation(t *testing.T) {
	rec := validRecord(t)
	svc := newTestRSVPService(&fakeInvitationRepository{
		recs: map[string]*domain.InvitationRecord{rec.Slug: rec},
	}, &fakeRSVPRepository{})

	tests := []struct {
		name       string
		guestName  string
		companions int
	}{
		{"empty guest name", "   ", 0},
		{"negative companions", "Ana", -1},
		{"too many companions", "Ana", 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitRSVP(context.Background(), rec.Slug, tt.guestName, true, tt.companions, "")
			var vErr *domain.ValidationError
			require.Error(t, err)
			assert.True(t, errors.As(err, &vErr))
		})
	}
}

func TestSubmitRSVP_not_found(t *testing.T) {
	svc := newTestRSVPService(&fakeInvitationRepository{recs: map[string]*domain.InvitationRecord{}}, &fakeRSVPRepository{})
	_, err := svc.SubmitRSVP(context.Background(), "missing", "Ana", true, 0, "")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSubmitRSVP_feature_disabled(t *testing.T) {
	rec := recordWithContent(t, func(c map[string]any) {
		c["features"] = map[string]any{
			"countdown": map[string]any{"visible": true},
			"rsvp":      map[string]any{"visible": false},
		}
	})
	svc := newTestRSVPService(&fakeInvitationRepository{
		recs: map[string]*domain.InvitationRecord{rec.Slug: rec},
	}, &fakeRSVPRepository{})

	_, err := svc.SubmitRSVP(context.Background(), rec.Slug, "Ana", true, 0, "")
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestSubmitRSVP_repo_error(t *testing.T) {
	rec := validRecord(t)
	svc := newTestRSVPService(&fakeInvitationRepository{
		recs: map[string]*domain.InvitationRecord{rec.Slug: rec},
	}, &fakeRSVPRepository{createErr: errors.New("db down")})

	_, err := svc.SubmitRSVP(context.Background(), rec.Slug, "Ana", false, 0, "")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

func TestListResponsesBySlug(t *testing.T) {
	rec := validRecord(t)
	stored := []*domain.RSVPResponse{
		{ID: "r-1", InvitationID: rec.ID, GuestName: "Ana", Attending: true},
	}
	svc := newTestRSVPService(&fakeInvitationRepository{
		recs: map[string]*domain.InvitationRecord{rec.Slug: rec},
	}, &fakeRSVPRepository{listed: map[string][]*domain.RSVPResponse{rec.ID: stored}})

	responses, err := svc.ListResponsesBySlug(context.Background(), rec.Slug)
	require.NoError(t, err)
	assert.Equal(t, stored, responses)
}

func TestListResponsesBySlug_empty_never_nil(t *testing.T) {
	rec := validRecord(t)
	svc := newTestRSVPService(&fakeInvitationRepository{
		recs: map[string]*domain.InvitationRecord{rec.Slug: rec},
	}, &fakeRSVPRepository{})

	responses, err := svc.ListResponsesBySlug(context.Background(), rec.Slug)
	require.NoError(t, err)
	assert.NotNil(t, responses)
	assert.Empty(t, responses)
}

func TestListResponsesBySlug_not_found(t *testing.T) {
	svc := newTestRSVPService(&fakeInvitationRepository{recs: map[string]*domain.InvitationRecord{}}, &fakeRSVPRepository{})
	_, err := svc.ListResponsesBySlug(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
