package analytics

import (
	"encoding/json"
	"time"

	"tfi-timeline/internal/storage"
)

// DailyStats summarizes one day of assistant usage.
type DailyStats struct {
	Date           string `json:"date"`
	TotalMessages  int    `json:"total_messages"`
	TotalProposals int    `json:"total_proposals"`
	TotalTokens    int    `json:"total_tokens"`
	Fallbacks      int    `json:"fallbacks"`
}

// AnalyzeDailyLogs reduces the interaction log to stats for the target day.
func AnalyzeDailyLogs(interactions []storage.Interaction, targetDate time.Time) *DailyStats {
	startOfDay := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, targetDate.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	stats := &DailyStats{Date: startOfDay.Format("2006-01-02")}
	for _, it := range interactions {
		if it.Timestamp.Before(startOfDay) || !it.Timestamp.Before(endOfDay) {
			continue
		}
		if it.UserMessage == "" {
			continue
		}
		stats.TotalMessages++
		stats.TotalProposals += it.ProposalCount
		stats.TotalTokens += it.TotalTokens
		if it.Fallback {
			stats.Fallbacks++
		}
	}
	return stats
}

// ToJSON serializes the stats for detailed inspection.
func (ds *DailyStats) ToJSON() (string, error) {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
