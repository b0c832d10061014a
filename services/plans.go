package services

import "strings"

const (
	TierFree = "free"
	TierPro  = "pro"
)

func IsValidTier(tier string) bool {
	t := strings.ToLower(tier)
	return t == TierFree || t == TierPro
}

// NormalizeTier lowercases a valid tier and falls back to free for empty or
// unknown values.
func NormalizeTier(tier string) string {
	if IsValidTier(tier) {
		return strings.ToLower(tier)
	}
	return TierFree
}
