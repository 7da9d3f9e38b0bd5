package inference

import "context"

// Role tags a chat message.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged entry of a chat payload.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Client sends an ordered list of messages to a language model and returns
// the generated reply text.
// Implementations may call a local model server or return canned text (for tests).
type Client interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}
