package assistant

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"tfi-timeline/internal/event"
)

var (
	fencedArrayRe = regexp.MustCompile("```(?:json)?\\s*\\n?([\\s\\S]*?)```")
	bareArrayRe   = regexp.MustCompile(`\[\s*\{[\s\S]*\}\s*\]`)
)

// proposal is the loosely-typed shape the model is asked to emit. Anything
// beyond these fields is ignored.
type proposal struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Hero        string `json:"hero"`
	Link        string `json:"link"`
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ExtractProposals scans reply text for an embedded JSON array of event
// proposals, either inside a fenced code block or as a bare top-level array
// literal. Elements missing a title or a parseable date are skipped; a
// malformed array degrades to no proposals, never to a failed reply.
//
// Each accepted proposal gets a fresh random id: the model cannot know the
// user's id space, so ids in its output are never trusted.
func ExtractProposals(text string) []event.Event {
	raw := findArray(text)
	if raw == "" {
		return nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		return nil
	}

	var out []event.Event
	for _, el := range elements {
		var p proposal
		if err := json.Unmarshal(el, &p); err != nil {
			continue
		}
		if strings.TrimSpace(p.Title) == "" {
			continue
		}
		date, ok := parseDate(p.Date)
		if !ok {
			continue
		}
		out = append(out, event.Event{
			ID:          uuid.NewString(),
			Title:       p.Title,
			Date:        date,
			Category:    event.ParseCategory(p.Category),
			Description: p.Description,
			Hero:        p.Hero,
			Link:        p.Link,
			IsOfficial:  true,
		})
	}
	return out
}

func findArray(text string) string {
	if m := fencedArrayRe.FindStringSubmatch(text); m != nil {
		inner := strings.TrimSpace(m[1])
		if strings.HasPrefix(inner, "[") {
			return inner
		}
	}
	if m := bareArrayRe.FindString(text); m != "" {
		return m
	}
	return ""
}

// StripFences removes markdown code fencing and trims the text down to the
// outermost JSON array, the cleanup the live-feed one-shot needs before
// parsing.
func StripFences(text string) string {
	clean := strings.TrimSpace(text)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
		clean = strings.TrimSuffix(clean, "```")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
		clean = strings.TrimSuffix(clean, "```")
	}
	start := strings.Index(clean, "[")
	end := strings.LastIndex(clean, "]")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return clean[start : end+1]
}
