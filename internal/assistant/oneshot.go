package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"tfi-timeline/internal/chat"
	"tfi-timeline/internal/llm"
)

// FeedItem is one trending story in the live feed.
type FeedItem struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Source    string   `json:"source"`
	Summary   string   `json:"summary"`
	Link      string   `json:"link"`
	Hashtags  []string `json:"hashtags"`
	Timestamp string   `json:"timestamp"`
}

// Trivia asks for a single multiple-choice question about Telugu cinema.
// A nil result means the operation is unavailable right now, never a crash.
func (s *Session) Trivia(ctx context.Context, topic string) *chat.QuizQuestion {
	focus := "Focus on recent blockbusters, classic dialogues, or records."
	if topic != "" {
		focus = "Focus on: " + topic
	}
	prompt := fmt.Sprintf(`Generate a single multiple-choice trivia question about Telugu Cinema (Tollywood).
%s

Return ONLY valid JSON with this schema:
{
   "id": "string",
   "question": "string",
   "options": ["string", "string", "string", "string"],
   "correctAnswerIndex": 0,
   "explanation": "string (Short fun fact)"
}`, focus)

	text, ok := s.oneShot(ctx, prompt)
	if !ok {
		return nil
	}
	var q chat.QuizQuestion
	if err := json.Unmarshal([]byte(text), &q); err != nil {
		log.Printf("⚠️ trivia parse failed: %v", err)
		return nil
	}
	if q.Question == "" || len(q.Options) == 0 {
		return nil
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return &q
}

// Predict asks for a structured prediction about a topic. A nil result means
// "unavailable now".
func (s *Session) Predict(ctx context.Context, topic string) *chat.Prediction {
	if topic == "" {
		topic = "Upcoming Big Release or Star"
	}
	prompt := fmt.Sprintf(`Based on your knowledge of the Telugu Film Industry, make a fun prediction about: "%s".
Could be box office collection, release date, or combination.

Return ONLY valid JSON with this schema:
{
   "title": "string (Topic Title)",
   "type": "BOX_OFFICE" or "REVIEW" or "OTT",
   "prediction": "string (Short prediction statement)",
   "confidence": 0,
   "reasoning": "string (Why you think so)"
}
confidence is a number from 0 to 100.`, topic)

	text, ok := s.oneShot(ctx, prompt)
	if !ok {
		return nil
	}
	var p chat.Prediction
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		log.Printf("⚠️ prediction parse failed: %v", err)
		return nil
	}
	if p.Prediction == "" {
		return nil
	}
	return &p
}

// LiveFeed asks for the current trending stories. Failure degrades to an
// empty list.
func (s *Session) LiveFeed(ctx context.Context) []FeedItem {
	prompt := `Compile the top 8 trending stories, hashtags, or updates in Telugu Film Industry (Tollywood) right now.
Look for trailer drops, release announcements, box office updates, or fan buzz.

Return the results as a raw JSON array, without markdown formatting.
The objects must follow this schema:
[
  {
    "id": "unique_string",
    "title": "Headline string",
    "source": "Source Name",
    "summary": "Short summary",
    "link": "URL",
    "hashtags": ["#tag1", "#tag2"],
    "timestamp": "Time ago (e.g. 2h ago)"
  }
]`

	resp, err := s.client.Generate(ctx, []llm.Message{
		{Role: "system", Content: s.instruction},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		log.Printf("⚠️ live feed fetch failed: %v", err)
		return nil
	}

	raw := StripFences(resp.Content)
	if raw == "" {
		return nil
	}
	var items []FeedItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("⚠️ live feed parse failed: %v", err)
		return nil
	}
	return items
}

// oneShot sends a single strictly-JSON request outside the conversation.
func (s *Session) oneShot(ctx context.Context, prompt string) (string, bool) {
	client := s.jsonClient
	if client == nil {
		client = s.client
	}
	resp, err := client.Generate(ctx, []llm.Message{{Role: "user", Content: prompt}})
	if err != nil {
		log.Printf("⚠️ one-shot generation failed: %v", err)
		return "", false
	}
	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return "", false
	}
	return text, true
}
