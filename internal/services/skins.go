package services

import (
	"fmt"

	"invitepages/internal/domain"
)

// skinRegistry is the closed dispatch table from skin id to presentation
// variant. Built once at init and never mutated afterwards.
var skinRegistry = map[string]domain.PresentationVariant{
	domain.SkinClassic: {SkinID: domain.SkinClassic, Name: "Classic", Template: "skins/classic", Tier: domain.TierEssential},
	domain.SkinMinimal: {SkinID: domain.SkinMinimal, Name: "Minimal", Template: "skins/minimal", Tier: domain.TierEssential},
	domain.SkinSoft:    {SkinID: domain.SkinSoft, Name: "Soft", Template: "skins/soft", Tier: domain.TierEssential},

	domain.SkinBotanical: {SkinID: domain.SkinBotanical, Name: "Botanical", Template: "skins/botanical", Tier: domain.TierPro},
	domain.SkinElegant:   {SkinID: domain.SkinElegant, Name: "Elegant", Template: "skins/elegant", Tier: domain.TierPro},
	domain.SkinModern:    {SkinID: domain.SkinModern, Name: "Modern", Template: "skins/modern", Tier: domain.TierPro},

	domain.SkinLuxe:     {SkinID: domain.SkinLuxe, Name: "Luxe", Template: "skins/luxe", Tier: domain.TierPremium},
	domain.SkinMidnight: {SkinID: domain.SkinMidnight, Name: "Midnight", Template: "skins/midnight", Tier: domain.TierPremium},
	domain.SkinRomance:  {SkinID: domain.SkinRomance, Name: "Romance", Template: "skins/romance", Tier: domain.TierPremium},
}

// defaultSkinID is used for any unrecognized skin id. Rendering never
// fails because of an unknown skin.
const defaultSkinID = domain.SkinClassic

// ResolveSkin maps a skin id to its presentation variant. Unknown ids
// resolve to the classic essential variant, the same one every time.
func ResolveSkin(skinID string) domain.PresentationVariant {
	if v, ok := skinRegistry[skinID]; ok {
		return v
	}
	return skinRegistry[defaultSkinID]
}

// PreviewOverlayFor returns the diagnostic overlay for preview renders:
// the raw skin id as stored (which may be unknown) and the human-readable
// label of the resolved variant's tier band.
func PreviewOverlayFor(skinID string) domain.PreviewOverlay {
	variant := ResolveSkin(skinID)
	return domain.PreviewOverlay{
		RawSkinID: skinID,
		TierLabel: variant.Tier.Label(),
	}
}

// VerifySkinRegistry checks that every enumerated skin id has a registry
// entry mapping to a distinct variant, and that the fallback id is
// registered. Call once at startup to catch drift between the id
// enumeration and the dispatch table.
func VerifySkinRegistry() error {
	if _, ok := skinRegistry[defaultSkinID]; !ok {
		return fmt.Errorf("skin registry: fallback %q is not registered", defaultSkinID)
	}
	templates := make(map[string]string, len(domain.SkinIDs))
	for _, id := range domain.SkinIDs {
		v, ok := skinRegistry[id]
		if !ok {
			return fmt.Errorf("skin registry: no entry for skin %q", id)
		}
		if prev, dup := templates[v.Template]; dup {
			return fmt.Errorf("skin registry: %q and %q share template %q", prev, id, v.Template)
		}
		templates[v.Template] = id
	}
	return nil
}
