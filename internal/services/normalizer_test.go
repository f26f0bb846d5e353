package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invitepages/internal/domain"
)

func validRecord(t *testing.T) *domain.InvitationRecord {
	t.Helper()
	content := map[string]any{
		"headline":    "Ana & Luis",
		"subtitle":    "We're getting married",
		"message":     "Join us to celebrate our wedding day.",
		"cover_image": "https://cdn.example.com/cover.jpg",
		"gallery":     []string{"a.jpg", "b.jpg", "c.jpg"},
		"quote":       "All you need is love",
		"couple":      map[string]string{"partner_one": "Ana", "partner_two": "Luis"},
		"logistics": map[string]any{
			"venue":      "Hacienda San Miguel",
			"event_date": "2027-06-12T17:00:00Z",
		},
		"features": map[string]any{
			"countdown": map[string]any{"visible": true, "options": map[string]any{"style": "flip"}},
			"rsvp":      map[string]any{"visible": true},
			"gallery":   map[string]any{"visible": true},
		},
		"skin_config": map[string]string{"accent_color": "#b76e79"},
	}
	raw, err := json.Marshal(content)
	require.NoError(t, err)
	owner := "owner-1"
	return &domain.InvitationRecord{
		ID:        "inv-1",
		Slug:      "ana-y-luis",
		Tier:      "pro",
		SkinID:    "botanical",
		EventType: "wedding",
		Language:  "es",
		OwnerID:   &owner,
		IsActive:  true,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Content:   raw,
	}
}

// recordWithContent returns validRecord with the content blob replaced by
// the given map after applying mutate.
func recordWithContent(t *testing.T, mutate func(map[string]any)) *domain.InvitationRecord {
	t.Helper()
	rec := validRecord(t)
	var content map[string]any
	require.NoError(t, json.Unmarshal(rec.Content, &content))
	mutate(content)
	raw, err := json.Marshal(content)
	require.NoError(t, err)
	rec.Content = raw
	return rec
}

func TestNormalizeRecord_success(t *testing.T) {
	rec := validRecord(t)
	schema, err := NormalizeRecord(rec)
	require.NoError(t, err)

	assert.Equal(t, "inv-1", schema.Metadata.ID)
	assert.Equal(t, "ana-y-luis", schema.Metadata.Slug)
	assert.Equal(t, domain.TierPro, schema.Metadata.Tier)
	assert.Equal(t, "botanical", schema.Metadata.SkinID)
	assert.Equal(t, domain.LanguageES, schema.Metadata.Language)
	assert.Equal(t, "owner-1", schema.Metadata.OwnerID)

	assert.Equal(t, "Ana & Luis", schema.Content.Headline)
	require.NotNil(t, schema.Content.Subtitle)
	assert.Equal(t, "We're getting married", *schema.Content.Subtitle)
	assert.Equal(t, "https://cdn.example.com/cover.jpg", schema.Content.CoverImage)
	assert.Len(t, schema.Content.Gallery, 3)
	require.NotNil(t, schema.Content.Couple)
	assert.Equal(t, "Ana", schema.Content.Couple.PartnerOne)

	assert.Equal(t, "Hacienda San Miguel", schema.Logistics["venue"])
	assert.True(t, schema.Features[domain.FeatureCountdown].Visible)
	assert.Equal(t, "flip", schema.Features[domain.FeatureCountdown].Options["style"])
	assert.Equal(t, "#b76e79", schema.SkinConfig["accent_color"])
}

func TestNormalizeRecord_round_trip(t *testing.T) {
	// Normalizing must not coerce tier or skin id.
	rec := validRecord(t)
	schema, err := NormalizeRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, rec.Tier, string(schema.Metadata.Tier))
	assert.Equal(t, rec.SkinID, schema.Metadata.SkinID)
	assert.Equal(t, rec.Language, string(schema.Metadata.Language))
}

func TestNormalizeRecord_missing_required_fields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing headline", func(c map[string]any) { delete(c, "headline") }},
		{"empty headline", func(c map[string]any) { c["headline"] = "   " }},
		{"missing message", func(c map[string]any) { delete(c, "message") }},
		{"missing logistics", func(c map[string]any) { delete(c, "logistics") }},
		{"missing features", func(c map[string]any) { delete(c, "features") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := recordWithContent(t, tt.mutate)
			_, err := NormalizeRecord(rec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMalformedContent))
		})
	}
}

func TestNormalizeRecord_invalid_blob(t *testing.T) {
	rec := validRecord(t)
	rec.Content = []byte("not json")
	_, err := NormalizeRecord(rec)
	assert.True(t, errors.Is(err, domain.ErrMalformedContent))
}

func TestNormalizeRecord_nil_record(t *testing.T) {
	_, err := NormalizeRecord(nil)
	assert.True(t, errors.Is(err, domain.ErrMalformedContent))
}

func TestNormalizeRecord_defaults(t *testing.T) {
	rec := recordWithContent(t, func(c map[string]any) {
		delete(c, "cover_image")
		delete(c, "subtitle")
		delete(c, "gallery")
		delete(c, "quote")
		delete(c, "couple")
		delete(c, "skin_config")
	})
	rec.OwnerID = nil

	schema, err := NormalizeRecord(rec)
	require.NoError(t, err)

	// cover_image is never absent; empty string is the "no image" sentinel.
	assert.Equal(t, "", schema.Content.CoverImage)
	assert.Equal(t, "", schema.Metadata.OwnerID)
	// Other optionals stay absent rather than defaulted.
	assert.Nil(t, schema.Content.Subtitle)
	assert.Nil(t, schema.Content.Gallery)
	assert.Nil(t, schema.Content.Quote)
	assert.Nil(t, schema.Content.Couple)
	assert.Nil(t, schema.SkinConfig)
}

func TestNormalizeRecord_unknown_tier(t *testing.T) {
	rec := validRecord(t)
	rec.Tier = "gold"
	_, err := NormalizeRecord(rec)
	assert.True(t, errors.Is(err, domain.ErrMalformedContent))
}

func TestNormalizeRecord_unknown_language(t *testing.T) {
	rec := validRecord(t)
	rec.Language = "fr"
	_, err := NormalizeRecord(rec)
	assert.True(t, errors.Is(err, domain.ErrMalformedContent))
}

func TestNormalizeRecord_unknown_skin_passes_through(t *testing.T) {
	// Skin ids are presentational; normalization keeps them as stored and
	// dispatch handles the fallback.
	rec := validRecord(t)
	rec.SkinID = "no-such-skin"
	schema, err := NormalizeRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, "no-such-skin", schema.Metadata.SkinID)
}
