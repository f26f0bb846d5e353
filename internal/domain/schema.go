package domain

import "time"

// InvitationSchema is the canonical, normalized form of an invitation.
// It is derived fresh on every read and never persisted.
type InvitationSchema struct {
	Metadata   SchemaMetadata                `json:"metadata"`
	Content    SchemaContent                 `json:"content"`
	Logistics  map[string]any                `json:"logistics"`
	Features   map[FeatureKey]FeatureSetting `json:"features"`
	SkinConfig map[string]string             `json:"skin_config,omitempty"`
}

// SchemaMetadata carries the record-level fields of the canonical schema.
type SchemaMetadata struct {
	ID        string     `json:"id"`
	Slug      string     `json:"slug"`
	Tier      Tier       `json:"tier"`
	SkinID    string     `json:"skin_id"`
	EventType string     `json:"event_type"`
	Language  Language   `json:"language"`
	OwnerID   string     `json:"owner_id"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// SchemaContent holds the display content of an invitation. CoverImage is
// never absent: the empty string is the explicit "no image" sentinel.
type SchemaContent struct {
	Headline   string      `json:"headline"`
	Subtitle   *string     `json:"subtitle,omitempty"`
	Message    string      `json:"message"`
	Couple     *CoupleInfo `json:"couple,omitempty"`
	Hosts      []HostInfo  `json:"hosts,omitempty"`
	CoverImage string      `json:"cover_image"`
	Gallery    []string    `json:"gallery,omitempty"`
	Quote      *string     `json:"quote,omitempty"`
}

// CoupleInfo names the two people an invitation celebrates.
type CoupleInfo struct {
	PartnerOne string `json:"partner_one"`
	PartnerTwo string `json:"partner_two"`
}

// HostInfo names a host of the event.
type HostInfo struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// FeatureSetting is the owner-controlled visibility flag and free-form
// configuration for one feature section (countdown style, music source,
// social-share metadata, and so on).
type FeatureSetting struct {
	Visible bool           `json:"visible"`
	Options map[string]any `json:"options,omitempty"`
}

// GateDecision is the outcome of evaluating a feature gate.
type GateDecision string

const (
	GateRender   GateDecision = "render"
	GateSuppress GateDecision = "suppress"
)

// SectionGate is the gating result for one feature section of a page.
// Fallback is only set for suppressed sections in preview mode.
type SectionGate struct {
	Decision GateDecision `json:"decision"`
	Fallback string       `json:"fallback,omitempty"`
}

// Countdown is the decomposed time remaining until the event: whole days,
// then remainder hours, minutes, and seconds.
type Countdown struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"is_expired"`
}

// PresentationVariant is one renderable skin. Template names the layout
// the presentation layer should use.
type PresentationVariant struct {
	SkinID   string `json:"skin_id"`
	Name     string `json:"name"`
	Template string `json:"template"`
	Tier     Tier   `json:"tier"`
}

// PreviewOverlay is the diagnostic overlay shown on preview renders only:
// the raw skin id as stored plus the human-readable tier label.
type PreviewOverlay struct {
	RawSkinID string `json:"raw_skin_id"`
	TierLabel string `json:"tier_label"`
}

// InvitationPage is the fully resolved view-model handed to the
// presentation layer: canonical schema content with tier limits applied,
// per-section gate decisions, the dispatched skin variant, and a
// countdown snapshot.
// swagger:model InvitationPage
type InvitationPage struct {
	Metadata   SchemaMetadata             `json:"metadata"`
	Content    SchemaContent              `json:"content"`
	Logistics  map[string]any             `json:"logistics"`
	Sections   map[FeatureKey]SectionGate `json:"sections"`
	Skin       PresentationVariant        `json:"skin"`
	SkinConfig map[string]string          `json:"skin_config,omitempty"`
	Countdown  *Countdown                 `json:"countdown,omitempty"`
	Preview    *PreviewOverlay            `json:"preview,omitempty"`
}
