package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	// HTTP server
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// Prompts
	PersonaPromptPath string `env:"PERSONA_PROMPT_PATH"`

	// Storage
	ChatLogFilePath       string `env:"CHAT_LOG_FILE_PATH" envDefault:"logs/chat.jsonl"`
	UserEventsFilePath    string `env:"USER_EVENTS_FILE_PATH" envDefault:"data/events.json"`
	SubscriptionsFilePath string `env:"SUBSCRIPTIONS_FILE_PATH" envDefault:"data/subscriptions.json"`
	TimelinesFilePath     string `env:"TIMELINES_FILE_PATH"`

	// Reminders
	ReminderCronSpec string `env:"REMINDER_CRON_SPEC" envDefault:"0 6 * * *"`

	// Initial subscriptions applied on first start
	DefaultSubscriptions []string `env:"DEFAULT_SUBSCRIPTIONS" envSeparator:":" envDefault:"official_channels"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
