package llm

import (
	"fmt"
	"strings"
)

const (
	ProviderOpenAI = "openai"
	ProviderYandex = "yandex"
)

// Factory creates LLM clients with consistent logic
type Factory struct {
	OpenaiAPIKey       string
	OpenaiBaseURL      string
	OpenRouterReferrer string
	OpenRouterTitle    string
	YandexOAuthToken   string
	YandexFolderID     string
}

func (f *Factory) CreateClient(provider, model string) (Client, error) {
	switch strings.ToLower(provider) {
	case ProviderOpenAI:
		return NewOpenAI(f.OpenaiAPIKey, f.OpenaiBaseURL, model, f.OpenRouterReferrer, f.OpenRouterTitle), nil
	case ProviderYandex:
		return NewYandex(f.YandexOAuthToken, f.YandexFolderID)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}

// CreateJSONClient returns a client tuned for strictly-JSON one-shot replies.
// YandexGPT has no JSON mode, so the prompt alone carries the contract there.
func (f *Factory) CreateJSONClient(provider, model string) (Client, error) {
	c, err := f.CreateClient(provider, model)
	if err != nil {
		return nil, err
	}
	if oc, ok := c.(*OpenAIClient); ok {
		return oc.WithJSONMode(), nil
	}
	return c, nil
}
