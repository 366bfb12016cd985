package assistant

import (
	"time"

	"github.com/google/uuid"
)

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Message is one entry in the conversation log.
type Message struct {
	ID     string
	Sender string
	Reply  Reply
	At     time.Time
}

// Conversation is the append-only message log a screen renders. Messages
// are kept in arrival order and never mutated or removed.
type Conversation struct {
	messages []Message
}

// NewConversation starts a log seeded with the role's greeting.
func NewConversation(role string) *Conversation {
	c := &Conversation{}
	c.Append(SenderBot, Greeting(role))
	return c
}

// Append records a message and returns it.
func (c *Conversation) Append(sender string, reply Reply) Message {
	msg := Message{
		ID:     uuid.New().String(),
		Sender: sender,
		Reply:  reply,
		At:     time.Now(),
	}
	c.messages = append(c.messages, msg)
	return msg
}

// Messages returns the log in arrival order. The slice is a copy; the log
// itself stays append-only.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}
