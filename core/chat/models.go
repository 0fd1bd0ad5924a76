package chat

import "time"

// Message is the value broadcast to every member of a room. It is built by
// the relay on each broadcast and only lives for the duration of the fan-out.
type Message struct {
	ID         string `json:"id"`
	Room       string `json:"room"`
	SenderID   string `json:"senderId,omitempty"`
	SenderName string `json:"senderName"`
	Text       string `json:"text"`
	Timestamp  string `json:"timestamp"` // ISO-8601, assigned at broadcast time
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
