package storage

import "time"

// Interaction is a single chat exchange: the user's message and the
// assistant's reply, plus how many calendar events the reply proposed and the
// token usage of the underlying call. Records are appended in chronological
// order.
type Interaction struct {
	Timestamp        time.Time `json:"timestamp"`
	UserMessage      string    `json:"user_message"`
	AssistantReply   string    `json:"assistant_reply"`
	ProposalCount    int       `json:"proposal_count"`
	Model            string    `json:"model,omitempty"`
	PromptTokens     int       `json:"prompt_tokens,omitempty"`
	CompletionTokens int       `json:"completion_tokens,omitempty"`
	TotalTokens      int       `json:"total_tokens,omitempty"`
	Fallback         bool      `json:"fallback,omitempty"`
}

// Recorder abstracts persistence of chat interactions.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendInteraction(it Interaction) error
	LoadInteractions() ([]Interaction, error)
}
