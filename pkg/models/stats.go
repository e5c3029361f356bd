package models

// Sport identifies which sport a stat line belongs to
type Sport string

const (
	SportBasketball Sport = "basketball"
	SportFootball   Sport = "football"
)

// StatType identifies a player prop stat category
type StatType string

const (
	StatPoints         StatType = "points"
	StatRebounds       StatType = "rebounds"
	StatAssists        StatType = "assists"
	StatThreePointers  StatType = "three_pointers"
	StatSteals         StatType = "steals"
	StatBlocks         StatType = "blocks"
	StatPassingYards   StatType = "passing_yards"
	StatRushingYards   StatType = "rushing_yards"
	StatReceivingYards StatType = "receiving_yards"
	StatReceptions     StatType = "receptions"
	StatTouchdowns     StatType = "touchdowns"
)

// statLabels maps stat types to human-readable labels for alert messages
var statLabels = map[StatType]string{
	StatPoints:         "points",
	StatRebounds:       "rebounds",
	StatAssists:        "assists",
	StatThreePointers:  "threes",
	StatSteals:         "steals",
	StatBlocks:         "blocks",
	StatPassingYards:   "passing yards",
	StatRushingYards:   "rushing yards",
	StatReceivingYards: "receiving yards",
	StatReceptions:     "receptions",
	StatTouchdowns:     "touchdowns",
}

// Label returns a human-readable label for the stat type
func (s StatType) Label() string {
	if label, ok := statLabels[s]; ok {
		return label
	}
	return string(s)
}
