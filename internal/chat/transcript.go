package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"tfi-timeline/internal/event"
	"tfi-timeline/internal/llm"
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// QuizQuestion is a single multiple-choice trivia question.
type QuizQuestion struct {
	ID                 string   `json:"id"`
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
}

// Prediction is a structured box-office/review/OTT prediction card.
type Prediction struct {
	Title      string `json:"title"`
	Type       string `json:"type"` // BOX_OFFICE | REVIEW | OTT
	Prediction string `json:"prediction"`
	Confidence int    `json:"confidence"` // 0-100
	Reasoning  string `json:"reasoning"`
}

// Message is one turn of the conversation. At most one of the optional
// payloads is set.
type Message struct {
	ID        string        `json:"id"`
	Role      string        `json:"role"`
	Text      string        `json:"text"`
	Timestamp time.Time     `json:"timestamp"`
	Proposals []event.Event `json:"proposals,omitempty"`
	Trivia    *QuizQuestion `json:"trivia,omitempty"`
	Predicted *Prediction   `json:"prediction,omitempty"`
}

// Transcript is the append-only conversation record. Messages are never
// mutated or removed once appended.
type Transcript struct {
	mu       sync.RWMutex
	messages []Message
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

func (t *Transcript) AppendUser(text string) Message {
	return t.append(Message{Role: RoleUser, Text: text})
}

func (t *Transcript) AppendModel(text string, proposals []event.Event) Message {
	return t.append(Message{Role: RoleModel, Text: text, Proposals: proposals})
}

func (t *Transcript) AppendTrivia(q *QuizQuestion) Message {
	return t.append(Message{Role: RoleModel, Text: q.Question, Trivia: q})
}

func (t *Transcript) AppendPrediction(p *Prediction) Message {
	return t.append(Message{Role: RoleModel, Text: p.Prediction, Predicted: p})
}

func (t *Transcript) append(m Message) Message {
	m.ID = uuid.NewString()
	m.Timestamp = time.Now()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, m)
	return m
}

// Messages returns the full ordered transcript.
func (t *Transcript) Messages() []Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// History converts the transcript into LLM context messages. Trivia and
// prediction turns are one-shot cards, not conversation, and are skipped.
func (t *Transcript) History() []llm.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []llm.Message
	for _, m := range t.messages {
		if m.Trivia != nil || m.Predicted != nil {
			continue
		}
		role := "user"
		if m.Role == RoleModel {
			role = "assistant"
		}
		out = append(out, llm.Message{Role: role, Content: m.Text})
	}
	return out
}
