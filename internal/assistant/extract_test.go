package assistant

import (
	"testing"

	"tfi-timeline/internal/event"
)

func TestExtractProposalsFencedBlock(t *testing.T) {
	reply := "Mass update anna! 🔥 Adding to your calendar:\n```json\n[{\"title\": \"Pushpa 2 Trailer\", \"date\": \"2024-11-15\", \"category\": \"TRAILER\", \"hero\": \"Allu Arjun\"}]\n```\nDon't miss it!"

	got := ExtractProposals(reply)
	if len(got) != 1 {
		t.Fatalf("expected 1 proposal, got %d", len(got))
	}
	p := got[0]
	if p.Title != "Pushpa 2 Trailer" {
		t.Errorf("title = %q", p.Title)
	}
	if p.Category != event.CategoryTrailer {
		t.Errorf("category = %s", p.Category)
	}
	if p.Date.Format("2006-01-02") != "2024-11-15" {
		t.Errorf("date = %v", p.Date)
	}
	if p.ID == "" {
		t.Error("proposal must get a fresh id")
	}
}

func TestExtractProposalsBareArray(t *testing.T) {
	reply := `Here you go: [{"title": "Devara Song Drop", "date": "2024-09-01"}] enjoy!`

	got := ExtractProposals(reply)
	if len(got) != 1 {
		t.Fatalf("expected 1 proposal, got %d", len(got))
	}
	if got[0].Category != event.CategoryOther {
		t.Errorf("missing category must default to OTHER, got %s", got[0].Category)
	}
}

func TestExtractProposalsInvalidArray(t *testing.T) {
	reply := "Some text [{\"title\": \"broken\", ] more text"
	if got := ExtractProposals(reply); got != nil {
		t.Errorf("malformed array must degrade to no proposals, got %d", len(got))
	}
}

func TestExtractProposalsSkipsBadElements(t *testing.T) {
	reply := "```json\n[" +
		`{"title": "Good One", "date": "2024-10-23"},` +
		`{"date": "2024-10-24"},` +
		`{"title": "Bad Date", "date": "next friday"}` +
		"]\n```"

	got := ExtractProposals(reply)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 valid proposal, got %d", len(got))
	}
	if got[0].Title != "Good One" {
		t.Errorf("kept the wrong element: %q", got[0].Title)
	}
}

func TestExtractProposalsNoArray(t *testing.T) {
	if got := ExtractProposals("Just a normal chat reply, no events here anna."); got != nil {
		t.Errorf("plain text must yield no proposals, got %d", len(got))
	}
}

func TestExtractProposalsIgnoresModelIDs(t *testing.T) {
	reply := `[{"id": "model-made-this-up", "title": "Salaar 2", "date": "2025-01-01"}]`
	got := ExtractProposals(reply)
	if len(got) != 1 {
		t.Fatalf("expected 1 proposal, got %d", len(got))
	}
	if got[0].ID == "model-made-this-up" {
		t.Error("ids from model output must never be reused")
	}
}

func TestExtractProposalsDateFormats(t *testing.T) {
	reply := `[{"title": "A", "date": "2024-11-15T18:30:00Z"}, {"title": "B", "date": "2024-11-16"}]`
	got := ExtractProposals(reply)
	if len(got) != 2 {
		t.Fatalf("expected both date formats accepted, got %d", len(got))
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```json\n[1,2]\n```", "[1,2]"},
		{"```\n[1,2]\n```", "[1,2]"},
		{"noise before [1,2] noise after", "[1,2]"},
		{"no array at all", ""},
	}
	for _, c := range cases {
		if got := StripFences(c.in); got != c.want {
			t.Errorf("StripFences(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
