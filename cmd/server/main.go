package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"tfi-timeline/internal/api"
	"tfi-timeline/internal/assistant"
	"tfi-timeline/internal/chat"
	"tfi-timeline/internal/community"
	"tfi-timeline/internal/config"
	"tfi-timeline/internal/events"
	"tfi-timeline/internal/feed"
	"tfi-timeline/internal/gamification"
	"tfi-timeline/internal/llm"
	"tfi-timeline/internal/notify"
	"tfi-timeline/internal/prefs"
	"tfi-timeline/internal/scheduler"
	"tfi-timeline/internal/storage"
	"tfi-timeline/internal/subscription"
	"tfi-timeline/internal/timeline"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	registry := buildRegistry(cfg)

	var eventsRepo events.Repository
	if cfg.UserEventsFilePath != "" {
		repo, err := events.NewFileRepository(cfg.UserEventsFilePath)
		if err != nil {
			log.Printf("failed to init events repo: %v", err)
		} else {
			eventsRepo = repo
		}
	}
	userEvents := events.NewWithRepo(eventsRepo, nil)

	var subsRepo subscription.Repository
	if cfg.SubscriptionsFilePath != "" {
		repo, err := subscription.NewFileRepository(cfg.SubscriptionsFilePath)
		if err != nil {
			log.Printf("failed to init subscriptions repo: %v", err)
		} else {
			subsRepo = repo
		}
	}
	subscriptions := subscription.NewWithRepo(subsRepo, cfg.DefaultSubscriptions)

	var rec storage.Recorder
	if cfg.ChatLogFilePath != "" {
		fr, err := storage.NewFileRecorder(cfg.ChatLogFilePath)
		if err != nil {
			log.Printf("failed to init chat recorder: %v", err)
		} else {
			rec = fr
		}
	}

	factory := &llm.Factory{
		OpenaiAPIKey:       cfg.OpenAIAPIKey,
		OpenaiBaseURL:      cfg.OpenAIBaseURL,
		OpenRouterReferrer: cfg.OpenRouterReferrer,
		OpenRouterTitle:    cfg.OpenRouterTitle,
		YandexOAuthToken:   cfg.YandexOAuthToken,
		YandexFolderID:     cfg.YandexFolderID,
	}
	client, err := factory.CreateClient(string(cfg.LLMProvider), cfg.OpenAIModel)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}
	jsonClient, err := factory.CreateJSONClient(string(cfg.LLMProvider), cfg.OpenAIModel)
	if err != nil {
		log.Fatalf("failed to create json llm client: %v", err)
	}

	persona := readPersona(cfg.PersonaPromptPath)
	newSession := func(p *prefs.Preferences) *assistant.Session {
		return assistant.NewSession(client, jsonClient, persona, p)
	}

	preferences := prefs.NewService()
	transcript := chat.NewTranscript()
	notifications := notify.NewCenter()
	ledger := gamification.NewLedger()
	hub := community.NewHub()

	// daily reminder scan over the merged feed
	sched := scheduler.New()
	sched.SetScanFunction(func(ctx context.Context) error {
		visible := feed.Merge(userEvents.List(), registry, subscriptions.List())
		fired := notifications.ScanReminders(visible, time.Now())
		if len(fired) > 0 {
			log.Printf("🔔 fired %d reminder(s)", len(fired))
		}
		return nil
	})
	if err := sched.Start(cfg.ReminderCronSpec); err != nil {
		log.Printf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	server := api.NewServer(
		registry,
		userEvents,
		subscriptions,
		preferences,
		transcript,
		notifications,
		ledger,
		hub,
		rec,
		newSession,
	)

	log.Printf("🚀 TFI Timeline listening on %s", cfg.ListenAddr)
	if err := server.Router().Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func buildRegistry(cfg *config.Config) *timeline.Registry {
	if cfg.TimelinesFilePath != "" {
		reg, err := timeline.LoadRegistry(cfg.TimelinesFilePath)
		if err != nil {
			log.Printf("failed to load timelines from %s, using built-in seed: %v", cfg.TimelinesFilePath, err)
		} else {
			return reg
		}
	}
	return timeline.NewRegistry(timeline.Seed())
}

func readPersona(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("persona prompt file not found or unreadable at %s: %v", path, err)
		return ""
	}
	return string(data)
}
