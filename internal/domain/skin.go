package domain

// Known skin identifiers, three per tier band. The dispatcher registry in
// the services package must cover every one of these; services.VerifySkinRegistry
// enforces that at startup. Any other skin id deterministically falls back
// to SkinClassic.
const (
	SkinClassic = "classic"
	SkinMinimal = "minimal"
	SkinSoft    = "soft"

	SkinBotanical = "botanical"
	SkinElegant   = "elegant"
	SkinModern    = "modern"

	SkinLuxe     = "luxe"
	SkinMidnight = "midnight"
	SkinRomance  = "romance"
)

// SkinIDs lists all known skin identifiers.
var SkinIDs = []string{
	SkinClassic, SkinMinimal, SkinSoft,
	SkinBotanical, SkinElegant, SkinModern,
	SkinLuxe, SkinMidnight, SkinRomance,
}
