package care

import "github.com/geoquest/GeoQuest_Go/internal/domain"

// RewardFor returns the XP awarded for a verification.
func RewardFor(hasTask bool) int {
	if hasTask {
		return XPRewardTaskComplete
	}
	return XPRewardDailyCheckin
}

// ActionFor returns the care log action for a verification.
func ActionFor(hasTask bool) domain.CareAction {
	if hasTask {
		return domain.CareActionTaskComplete
	}
	return domain.CareActionDailyCheckin
}
