package entities

const (
	// MinDay is the first day of a campaign or overland journey
	MinDay = 1
	// MinPartyXP is the lowest party experience track value
	MinPartyXP = 1
	// MinCharacterStat is the floor of per-character HP and XP
	MinCharacterStat = 0
)

// Adjust adds delta to value without ever dropping below floor
func Adjust(value, delta, floor int) int {
	next := value + delta
	if next < floor {
		return floor
	}
	return next
}
