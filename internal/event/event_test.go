package event

import (
	"testing"
	"time"
)

func TestParseCategory(t *testing.T) {
	cases := map[string]Category{
		"TRAILER":       CategoryTrailer,
		"trailer":       CategoryTrailer,
		" ott_release ": CategoryOTTRelease,
		"box office":    CategoryBoxOffice,
		"BIRTHDAY":      CategoryBirthday,
		"":              CategoryOther,
		"SOMETHING":     CategoryOther,
	}

	for in, want := range cases {
		if got := ParseCategory(in); got != want {
			t.Errorf("ParseCategory(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestMatchesFilter(t *testing.T) {
	ev := Event{Hero: "Mahesh Babu", Tags: []string{"Classic", "NTR"}}

	if !ev.MatchesFilter("") {
		t.Error("empty filter should pass everything")
	}
	if !ev.MatchesFilter("mahesh") {
		t.Error("expected case-insensitive hero substring match")
	}
	if !ev.MatchesFilter("ntr") {
		t.Error("expected exact case-insensitive tag match")
	}
	if ev.MatchesFilter("class") {
		t.Error("tag match must be exact, not substring")
	}
	if ev.MatchesFilter("Prabhas") {
		t.Error("unrelated filter should not match")
	}
}

func TestReminderLead(t *testing.T) {
	if d, ok := Reminder1Day.Lead(); !ok || d != 24*time.Hour {
		t.Errorf("1_DAY lead = %v ok=%v", d, ok)
	}
	if d, ok := ReminderOnStart.Lead(); !ok || d != 0 {
		t.Errorf("ON_START lead = %v ok=%v", d, ok)
	}
	if _, ok := ReminderNone.Lead(); ok {
		t.Error("NONE must not produce a lead")
	}
	if _, ok := ReminderType("").Lead(); ok {
		t.Error("empty reminder must not produce a lead")
	}
}

func TestIsRecurring(t *testing.T) {
	if !CategoryBirthday.IsRecurring() {
		t.Error("BIRTHDAY should recur yearly")
	}
	if CategoryTrailer.IsRecurring() {
		t.Error("TRAILER should not recur")
	}
}
