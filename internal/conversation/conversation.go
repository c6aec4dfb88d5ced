package conversation

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in a call conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation is the ordered history of a call. It is never stored
// server-side; the caller round-trips it on every webhook.
type Conversation struct {
	Messages []Message `json:"messages"`
}

// AppendUser adds a user turn and returns the updated conversation.
func (c Conversation) AppendUser(content string) Conversation {
	c.Messages = append(c.Messages, Message{Role: RoleUser, Content: content})
	return c
}

// AppendAssistant adds an assistant turn and returns the updated conversation.
func (c Conversation) AppendAssistant(content string) Conversation {
	c.Messages = append(c.Messages, Message{Role: RoleAssistant, Content: content})
	return c
}

// IsEmpty reports whether the conversation has no turns yet.
func (c Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}
