package domain

import "fmt"

// Tier is a purchased service tier. Tiers are totally ordered:
// essential < pro < premium.
type Tier string

const (
	TierEssential Tier = "essential"
	TierPro       Tier = "pro"
	TierPremium   Tier = "premium"
)

// Tiers lists all tiers in ascending rank order.
var Tiers = []Tier{TierEssential, TierPro, TierPremium}

// Rank returns the ordinal position of the tier (essential=0, pro=1,
// premium=2). Unknown tiers rank below essential.
func (t Tier) Rank() int {
	switch t {
	case TierEssential:
		return 0
	case TierPro:
		return 1
	case TierPremium:
		return 2
	}
	return -1
}

// IsValid reports whether t is one of the three known tiers.
func (t Tier) IsValid() bool {
	return t.Rank() >= 0
}

// MeetsMinimum reports whether t is at least the required tier.
func (t Tier) MeetsMinimum(required Tier) bool {
	return t.Rank() >= required.Rank()
}

// Label returns the human-readable tier name used in preview overlays.
func (t Tier) Label() string {
	switch t {
	case TierEssential:
		return "Essential"
	case TierPro:
		return "Pro"
	case TierPremium:
		return "Premium"
	}
	return string(t)
}

// FeatureKey identifies a gateable invitation section.
type FeatureKey string

const (
	FeatureCountdown    FeatureKey = "countdown"
	FeatureRSVP         FeatureKey = "rsvp"
	FeatureDressCode    FeatureKey = "dress_code"
	FeatureGallery      FeatureKey = "gallery"
	FeatureMusic        FeatureKey = "music"
	FeatureQuote        FeatureKey = "quote"
	FeatureSocialShare  FeatureKey = "social_share"
	FeatureGiftRegistry FeatureKey = "gift_registry"
)

// FeatureKeys lists every known feature key. The tier matrix below must
// cover all of them at the premium tier; VerifyTierMatrix enforces this.
var FeatureKeys = []FeatureKey{
	FeatureCountdown,
	FeatureRSVP,
	FeatureDressCode,
	FeatureGallery,
	FeatureMusic,
	FeatureQuote,
	FeatureSocialShare,
	FeatureGiftRegistry,
}

// tierFeatures maps each tier to its enabled feature set. Sets are
// supersets going up the rank order: everything essential has, pro has;
// everything pro has, premium has.
var tierFeatures = map[Tier]map[FeatureKey]struct{}{
	TierEssential: featureSet(
		FeatureCountdown, FeatureRSVP, FeatureDressCode,
	),
	TierPro: featureSet(
		FeatureCountdown, FeatureRSVP, FeatureDressCode,
		FeatureGallery, FeatureMusic, FeatureQuote,
	),
	TierPremium: featureSet(
		FeatureCountdown, FeatureRSVP, FeatureDressCode,
		FeatureGallery, FeatureMusic, FeatureQuote,
		FeatureSocialShare, FeatureGiftRegistry,
	),
}

// galleryLimits caps how many gallery photos each tier may render. The
// stored array may hold more; the excess is never exposed.
var galleryLimits = map[Tier]int{
	TierEssential: 1,
	TierPro:       2,
	TierPremium:   15,
}

func featureSet(keys ...FeatureKey) map[FeatureKey]struct{} {
	set := make(map[FeatureKey]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// FeaturesFor returns the feature keys enabled for the tier, in the
// canonical FeatureKeys order. Unknown tiers get an empty set.
func FeaturesFor(tier Tier) []FeatureKey {
	set := tierFeatures[tier]
	keys := make([]FeatureKey, 0, len(set))
	for _, k := range FeatureKeys {
		if _, ok := set[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// HasFeature reports whether the tier's feature set contains key.
func HasFeature(tier Tier, key FeatureKey) bool {
	_, ok := tierFeatures[tier][key]
	return ok
}

// GalleryLimitFor returns the maximum number of gallery photos the tier
// may render. Unknown tiers get the essential limit.
func GalleryLimitFor(tier Tier) int {
	if n, ok := galleryLimits[tier]; ok {
		return n
	}
	return galleryLimits[TierEssential]
}

// MinimumTierFor returns the lowest-ranked tier whose set contains key.
// A key absent from every set resolves to premium; that only happens
// when FeatureKeys and the matrix drift apart, which VerifyTierMatrix
// catches at startup.
func MinimumTierFor(key FeatureKey) Tier {
	for _, t := range Tiers {
		if HasFeature(t, key) {
			return t
		}
	}
	return TierPremium
}

// MeetsMinimumTier reports whether current satisfies required by rank.
func MeetsMinimumTier(current, required Tier) bool {
	return current.MeetsMinimum(required)
}

// VerifyTierMatrix checks that the tier sets are rank-monotonic supersets
// and that every enumerated feature key is reachable at premium. Call it
// once at startup; a failure means the matrix and the key enumeration
// drifted apart.
func VerifyTierMatrix() error {
	for i := 1; i < len(Tiers); i++ {
		lower, higher := Tiers[i-1], Tiers[i]
		for k := range tierFeatures[lower] {
			if !HasFeature(higher, k) {
				return fmt.Errorf("tier matrix: %s has %q but %s does not", lower, k, higher)
			}
		}
	}
	for _, k := range FeatureKeys {
		if !HasFeature(TierPremium, k) {
			return fmt.Errorf("tier matrix: feature %q is unreachable at premium", k)
		}
	}
	return nil
}
