package entities

import "time"

// Sender identifies who produced a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one line of a conversation transcript.
type ChatMessage struct {
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation holds per-conversation chat state. Continuation state (the
// last structured query and page cursor) is a field here rather than a shared
// process-wide slot, so simultaneous conversations cannot clobber each other.
type Conversation struct {
	ID         string        `json:"id"`
	Messages   []ChatMessage `json:"messages"`
	LastQuery  *ListingQuery `json:"-"`
	PageCursor int           `json:"-"`
	Location   *Location     `json:"-"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
