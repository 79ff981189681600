package timeline

import (
	"time"

	"tfi-timeline/internal/event"
)

func d(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// Seed returns the built-in channel set used when no timelines file is
// configured.
func Seed() []Timeline {
	return []Timeline{
		{
			ID:          "official_channels",
			Name:        "Official Channels",
			Handle:      "Production Houses",
			Description: "Updates from Mythri, Hombale, Gemini TV, etc.",
			Tags:        []string{"Official", "Industry"},
			Followers:   2500000,
			Color:       "blue",
			IsOfficial:  true,
			Events: []event.Event{
				{
					ID:         "off1",
					Title:      "Pushpa 2 Trailer",
					Date:       d("2024-11-15"),
					Category:   event.CategoryTeaser,
					Hero:       "Allu Arjun",
					TimelineID: "official_channels",
					IsOfficial: true,
					Link:       "https://youtube.com",
					Runtime:    "2m 34s",
					Production: "Mythri Movie Makers",
					Cast: []event.CastMember{
						{Name: "Allu Arjun", Role: "Actor"},
						{Name: "Rashmika", Role: "Actress"},
						{Name: "Sukumar", Role: "Director"},
						{Name: "DSP", Role: "Music"},
					},
				},
				{
					ID:         "off2",
					Title:      "Devara Song Drop",
					Date:       d("2024-09-01"),
					Category:   event.CategoryRelease,
					Hero:       "NTR",
					TimelineID: "official_channels",
					IsOfficial: true,
				},
				{
					ID:          "off3",
					Title:       "OG on Netflix",
					Date:        d("2024-12-25"),
					Category:    event.CategoryOTTRelease,
					Hero:        "Pawan Kalyan",
					TimelineID:  "official_channels",
					IsOfficial:  true,
					OTTProvider: event.OTTNetflix,
				},
			},
		},
		{
			ID:          "prabhas_core",
			Name:        "Prabhas Cults",
			Handle:      "@rebel_star_edits",
			Description: "Only for Rebel Star fans. Updates, birthdays, re-releases.",
			Tags:        []string{"Prabhas", "Fan"},
			Followers:   500000,
			Color:       "red",
			Events: []event.Event{
				{
					ID:          "p1",
					Title:       "Salaar 2 Update (Rumor)",
					Date:        d("2024-09-15"),
					Category:    event.CategoryRumor,
					Hero:        "Prabhas",
					Description: "Possible announcement from Hombale Films.",
					TimelineID:  "prabhas_core",
					Tags:        []string{"Prabhas"},
				},
				{
					ID:         "p2",
					Title:      "Prabhas Birthday",
					Date:       d("2024-10-23"),
					Category:   event.CategoryBirthday,
					Hero:       "Prabhas",
					TimelineID: "prabhas_core",
					Tags:       []string{"Prabhas"},
				},
			},
		},
		{
			ID:          "classics",
			Name:        "TFI Classics",
			Handle:      "@retro_telugu",
			Description: "Golden era milestones. NTR, ANR, Krishna.",
			Tags:        []string{"Classic", "History"},
			Followers:   80000,
			Color:       "slate",
			Events: []event.Event{
				{
					ID:         "cl1",
					Title:      "Mahanati Savitri Jayanthi",
					Date:       d("2024-12-06"),
					Category:   event.CategoryBirthday,
					Hero:       "Savitri",
					TimelineID: "classics",
					Tags:       []string{"Classic"},
				},
				{
					ID:         "cl2",
					Title:      "Dana Veera Soora Karna Release Anniv",
					Date:       d("2024-01-14"),
					Category:   event.CategoryAnniversary,
					Hero:       "NTR",
					TimelineID: "classics",
					Tags:       []string{"Classic", "NTR"},
				},
			},
		},
	}
}
