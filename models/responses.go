package models

// MoodStatistics summarizes mood entries over a trailing window of days.
type MoodStatistics struct {
	TotalEntries       int            `json:"total_entries"`
	MoodDistribution   map[string]int `json:"mood_distribution"`
	EnergyDistribution map[string]int `json:"energy_distribution"`
	MostCommonMood     string         `json:"most_common_mood"`
	DaysAnalyzed       int            `json:"days_analyzed"`
	CurrentStreak      int            `json:"current_streak"`
}

// Quote is a motivational quote; falls back to a built-in list when the
// catalog has no matching entries.
type Quote struct {
	Text     string `json:"text"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Author   string `json:"author,omitempty"`
}
