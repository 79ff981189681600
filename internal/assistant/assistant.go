package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"

	"tfi-timeline/internal/event"
	"tfi-timeline/internal/llm"
	"tfi-timeline/internal/prefs"
)

// FallbackReply is shown whenever the model service fails. The chat must
// always show something, so no error ever leaves the adapter.
const FallbackReply = "Orey! Something went wrong with the AI. Check internet connection mowa. 😵‍💫"

// emptyReply covers the rare case of a successful call with no text.
const emptyReply = "Network slow ga undi anna... (No text returned) 😅"

const basePersona = `You are "Chaitanya", the TFI (Telugu Film Industry) Intelligence.

**PERSONA:**
- You are a die-hard Tollywood fan but with the brain of a supercomputer.
- You speak in a mix of English and Telugu slang (e.g., "Mass", "Elevations", "Mental Mass", "Box Office Baddhalu", "Mowa", "Anna", "Thop").
- You are enthusiastic, knowledgeable, and always up-to-date.
- You respect the "Tier 1" heroes but love cinema as a whole.
- **Use emojis freely** to express excitement! (e.g., 🔥, 💥, 🎬, 🙏, 🚀).

**CAPABILITIES:**
- Suggest calendar events based on movie updates.
- Generate trivia questions to test user knowledge.
- Predict box office or OTT release dates based on industry trends.

**BEHAVIOR:**
- If suggesting calendar events, emit them as a JSON array of objects with
  "title", "date" (ISO format), "category", "description", "hero" and "link".
- Be concise but engaging. Don't be boring.
- When asked for a prediction, be fun but logical.`

// Session carries the persona instruction for one conversation. A new
// session picks up the user's preferences at creation time.
type Session struct {
	client      llm.Client
	jsonClient  llm.Client
	instruction string
}

// NewSession builds a session from the current preferences (possibly nil).
// persona overrides the built-in instruction when non-empty.
func NewSession(client, jsonClient llm.Client, persona string, p *prefs.Preferences) *Session {
	instruction := basePersona
	if persona != "" {
		instruction = persona
	}
	if p != nil {
		heroes := "general TFI stars"
		if len(p.FavoriteHeroes) > 0 {
			heroes = strings.Join(p.FavoriteHeroes, ", ")
		}
		interests := "movies"
		if len(p.Interests) > 0 {
			interests = strings.Join(p.Interests, ", ")
		}
		instruction += fmt.Sprintf("\n\n**USER CONTEXT:** The user is a die-hard fan of: %s. They are interested in: %s. Prioritize updates about these topics.", heroes, interests)
	}
	return &Session{client: client, jsonClient: jsonClient, instruction: instruction}
}

// Turn is the normalized outcome of one chat exchange: the reply text,
// extracted proposals, and the token accounting of the underlying call.
type Turn struct {
	Text             string
	Proposals        []event.Event
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Fallback         bool
}

// Send forwards a user message with the running history and normalizes the
// reply into a Turn. It never returns an error: any service failure resolves
// to the fallback reply and no proposals.
func (s *Session) Send(ctx context.Context, history []llm.Message, text string) Turn {
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: s.instruction})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: "user", Content: text})

	resp, err := s.client.Generate(ctx, messages)
	if err != nil {
		log.Printf("⚠️ assistant send failed: %v", err)
		return Turn{Text: FallbackReply, Fallback: true}
	}
	reply := resp.Content
	if strings.TrimSpace(reply) == "" {
		reply = emptyReply
	}

	proposals := ExtractProposals(reply)
	if len(proposals) > 0 {
		log.Printf("📅 assistant proposed %d event(s)", len(proposals))
	}
	return Turn{
		Text:             reply,
		Proposals:        proposals,
		Model:            resp.Model,
		PromptTokens:     resp.PromptTokens,
		CompletionTokens: resp.CompletionTokens,
		TotalTokens:      resp.TotalTokens,
	}
}
