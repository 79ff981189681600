package event

import (
	"strings"
	"time"
)

// UserTimelineID marks events authored by the user themselves, as opposed to
// events owned by a subscribed creator timeline.
const UserTimelineID = "user"

type Category string

const (
	// Releases
	CategoryRelease    Category = "RELEASE"
	CategoryOTTRelease Category = "OTT_RELEASE"
	CategoryReRelease  Category = "RE_RELEASE"

	// Promotions
	CategoryAudioLaunch Category = "AUDIO_LAUNCH"
	CategoryPreRelease  Category = "PRE_RELEASE"
	CategorySuccessMeet Category = "SUCCESS_MEET"
	CategoryTeaser      Category = "TEASER"
	CategoryTrailer     Category = "TRAILER"
	CategoryTitleReveal Category = "TITLE_REVEAL"
	CategoryFirstLook   Category = "FIRST_LOOK"

	// Production
	CategoryMovieAnnouncement Category = "MOVIE_ANNOUNCEMENT"
	CategoryShootingUpdate    Category = "SHOOTING_UPDATE"
	CategoryWrapUp            Category = "WRAP_UP"
	CategoryCensor            Category = "CENSOR"

	// Industry & stars
	CategoryBirthday         Category = "BIRTHDAY"
	CategoryAnniversary      Category = "ANNIVERSARY"
	CategoryDeathAnniversary Category = "DEATH_ANNIVERSARY"
	CategoryRumor            Category = "RUMOR"
	CategoryAward            Category = "AWARD"
	CategoryMeetup           Category = "MEETUP"
	CategoryFestival         Category = "FESTIVAL"
	CategoryBoxOffice        Category = "BOX_OFFICE"
	CategoryOther            Category = "OTHER"
)

var allCategories = map[Category]bool{
	CategoryRelease:           true,
	CategoryOTTRelease:        true,
	CategoryReRelease:         true,
	CategoryAudioLaunch:       true,
	CategoryPreRelease:        true,
	CategorySuccessMeet:       true,
	CategoryTeaser:            true,
	CategoryTrailer:           true,
	CategoryTitleReveal:       true,
	CategoryFirstLook:         true,
	CategoryMovieAnnouncement: true,
	CategoryShootingUpdate:    true,
	CategoryWrapUp:            true,
	CategoryCensor:            true,
	CategoryBirthday:          true,
	CategoryAnniversary:       true,
	CategoryDeathAnniversary:  true,
	CategoryRumor:             true,
	CategoryAward:             true,
	CategoryMeetup:            true,
	CategoryFestival:          true,
	CategoryBoxOffice:         true,
	CategoryOther:             true,
}

// ParseCategory normalizes loosely-cased input (model output, form values)
// to a known category. Unknown values fall back to OTHER.
func ParseCategory(s string) Category {
	c := Category(strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(s, " ", "_"))))
	if allCategories[c] {
		return c
	}
	return CategoryOther
}

// IsRecurring reports whether the category repeats yearly on the calendar.
func (c Category) IsRecurring() bool {
	switch c {
	case CategoryBirthday, CategoryAnniversary, CategoryDeathAnniversary:
		return true
	}
	return false
}

type OTTProvider string

const (
	OTTNetflix OTTProvider = "NETFLIX"
	OTTPrime   OTTProvider = "PRIME"
	OTTAha     OTTProvider = "AHA"
	OTTHotstar OTTProvider = "HOTSTAR"
	OTTZee5    OTTProvider = "ZEE5"
	OTTSonyLiv OTTProvider = "SONYLIV"
	OTTEtvWin  OTTProvider = "ETV_WIN"
)

// ReminderType is the lead time before an event at which a reminder fires.
type ReminderType string

const (
	Reminder1Day    ReminderType = "1_DAY"
	Reminder1Hour   ReminderType = "1_HOUR"
	ReminderOnStart ReminderType = "ON_START"
	ReminderNone    ReminderType = "NONE"
)

// Lead returns the reminder lead duration, or false for NONE/unknown.
func (r ReminderType) Lead() (time.Duration, bool) {
	switch r {
	case Reminder1Day:
		return 24 * time.Hour, true
	case Reminder1Hour:
		return time.Hour, true
	case ReminderOnStart:
		return 0, true
	}
	return 0, false
}

type CastMember struct {
	Name     string `json:"name"`
	Role     string `json:"role"` // Actor, Director, Music
	ImageURL string `json:"image_url,omitempty"`
}

type Comment struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Text        string `json:"text"`
	Timestamp   string `json:"timestamp"`
	Likes       int    `json:"likes"`
	AvatarColor string `json:"avatar_color,omitempty"`
}

// Event is a single dated entry on the timeline. ID is unique within the
// collection that holds the event; a user copy of an official event gets a
// fresh id, so uniqueness is not global.
type Event struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Category Category  `json:"category"`

	// Ownership: "user" for personally-authored events, otherwise the id of
	// the owning timeline.
	TimelineID string `json:"timeline_id"`

	Description string       `json:"description,omitempty"`
	Link        string       `json:"link,omitempty"`
	Hero        string       `json:"hero,omitempty"`
	ImageURL    string       `json:"image_url,omitempty"`
	IsOfficial  bool         `json:"is_official,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Rating      int          `json:"rating,omitempty"` // 1-5 stars, fan diary
	Location    string       `json:"location,omitempty"`
	OTTProvider OTTProvider  `json:"ott_provider,omitempty"` // meaningful for OTT_RELEASE only
	Reminder    ReminderType `json:"reminder,omitempty"`

	Cast       []CastMember `json:"cast,omitempty"`
	Runtime    string       `json:"runtime,omitempty"` // advisory, visual sizing only
	Production string       `json:"production,omitempty"`
	Media      []string     `json:"media,omitempty"`
	Comments   []Comment    `json:"comments,omitempty"`
}

// IsUserOwned reports whether the event belongs to the user's personal set.
func (e Event) IsUserOwned() bool {
	return e.TimelineID == UserTimelineID
}

// MatchesFilter reports whether the event passes a hero/tag filter string.
// The hero match is a case-insensitive substring; a tag must match exactly
// (case-insensitive). An empty filter passes everything.
func (e Event) MatchesFilter(filter string) bool {
	if filter == "" {
		return true
	}
	f := strings.ToLower(filter)
	if e.Hero != "" && strings.Contains(strings.ToLower(e.Hero), f) {
		return true
	}
	for _, t := range e.Tags {
		if strings.ToLower(t) == f {
			return true
		}
	}
	return false
}
