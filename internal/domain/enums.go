package domain

// Priority represents the urgency of a task, ordered from low to
// extremely_important.
type Priority string

const (
	PriorityLow                Priority = "low"
	PriorityMedium             Priority = "medium"
	PriorityImportant          Priority = "important"
	PriorityVeryImportant      Priority = "very_important"
	PriorityExtremelyImportant Priority = "extremely_important"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityImportant,
		PriorityVeryImportant, PriorityExtremelyImportant:
		return true
	}
	return false
}

// Rank returns the position of the priority in the ordering, 0 for low.
// Unknown priorities rank below low.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMedium:
		return 1
	case PriorityImportant:
		return 2
	case PriorityVeryImportant:
		return 3
	case PriorityExtremelyImportant:
		return 4
	}
	return -1
}

// Frequency represents how often a recurring task template fires.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) String() string { return string(f) }

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// BadgeLevel represents a named badge tier, ordered by the karma range
// that unlocks it.
type BadgeLevel string

const (
	BadgeLevelBeginner     BadgeLevel = "beginner"
	BadgeLevelNovice       BadgeLevel = "novice"
	BadgeLevelIntermediate BadgeLevel = "intermediate"
	BadgeLevelProfessional BadgeLevel = "professional"
	BadgeLevelExpert       BadgeLevel = "expert"
	BadgeLevelMaster       BadgeLevel = "master"
	BadgeLevelGrandMaster  BadgeLevel = "grand_master"
	BadgeLevelEnlightened  BadgeLevel = "enlightened"
)

func (l BadgeLevel) String() string { return string(l) }

func (l BadgeLevel) IsValid() bool {
	switch l {
	case BadgeLevelBeginner, BadgeLevelNovice, BadgeLevelIntermediate,
		BadgeLevelProfessional, BadgeLevelExpert, BadgeLevelMaster,
		BadgeLevelGrandMaster, BadgeLevelEnlightened:
		return true
	}
	return false
}
