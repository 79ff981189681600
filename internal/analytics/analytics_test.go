package analytics

import (
	"strings"
	"testing"
	"time"

	"tfi-timeline/internal/storage"
)

func TestAnalyzeDailyLogs(t *testing.T) {
	testDate := time.Date(2024, 8, 25, 0, 0, 0, 0, time.UTC)

	interactions := []storage.Interaction{
		{
			Timestamp:      testDate.Add(2 * time.Hour),
			UserMessage:    "any pushpa news?",
			AssistantReply: "Trailer on Nov 15 anna! 🔥",
			ProposalCount:  1,
			TotalTokens:    120,
		},
		{
			Timestamp:      testDate.Add(4 * time.Hour),
			UserMessage:    "trivia please",
			AssistantReply: "...",
			TotalTokens:    80,
		},
		{
			Timestamp:      testDate.Add(6 * time.Hour),
			UserMessage:    "hello",
			AssistantReply: "Orey! Something went wrong",
			Fallback:       true,
		},
		// next day, not counted
		{
			Timestamp:     testDate.AddDate(0, 0, 1),
			UserMessage:   "tomorrow",
			ProposalCount: 3,
		},
		// system record without a user message, not counted
		{
			Timestamp:      testDate.Add(8 * time.Hour),
			AssistantReply: "[system]",
		},
	}

	stats := AnalyzeDailyLogs(interactions, testDate)

	if stats.Date != "2024-08-25" {
		t.Errorf("Expected date '2024-08-25', got '%s'", stats.Date)
	}
	if stats.TotalMessages != 3 {
		t.Errorf("Expected 3 total messages, got %d", stats.TotalMessages)
	}
	if stats.TotalProposals != 1 {
		t.Errorf("Expected 1 proposal, got %d", stats.TotalProposals)
	}
	if stats.Fallbacks != 1 {
		t.Errorf("Expected 1 fallback, got %d", stats.Fallbacks)
	}
	if stats.TotalTokens != 200 {
		t.Errorf("Expected 200 total tokens, got %d", stats.TotalTokens)
	}
}

func TestToJSON(t *testing.T) {
	stats := &DailyStats{Date: "2024-08-25", TotalMessages: 3, TotalProposals: 1, TotalTokens: 200, Fallbacks: 1}

	out, err := stats.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if !strings.Contains(out, `"date": "2024-08-25"`) {
		t.Errorf("serialized stats missing date: %s", out)
	}
	if !strings.Contains(out, `"total_tokens": 200`) {
		t.Errorf("serialized stats missing token total: %s", out)
	}
}

func TestAnalyzeDailyLogsEmpty(t *testing.T) {
	stats := AnalyzeDailyLogs(nil, time.Date(2024, 8, 25, 0, 0, 0, 0, time.UTC))
	if stats.TotalMessages != 0 || stats.TotalProposals != 0 || stats.Fallbacks != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
}
