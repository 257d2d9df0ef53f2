package chat

import (
	"time"

	"github.com/google/uuid"
)

// Message is immutable once created and belongs to exactly one conversation.
// The JSON tags describe the wire shape of the "new_message" payload and of
// the request/response surface; ConversationID stays internal.
type Message struct {
	ID             uuid.UUID `json:"id"`
	SenderID       string    `json:"sender_id"`
	ReceiverID     string    `json:"receiver_id"`
	ConversationID uuid.UUID `json:"-"`
	Body           string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

// Conversation groups the ordered message history between exactly two users.
// For any unordered pair of users at most one conversation exists; the
// resolver enforces this through the canonical pair key.
type Conversation struct {
	ID           uuid.UUID `json:"id"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
}

// Involves reports whether userID is one of the two participants.
func (c Conversation) Involves(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// PairKey builds the canonical, order-independent key for two participant
// ids: the sorted pair joined with a separator. Resolving a conversation is
// a single point lookup on this key instead of a scan over all
// conversations.
func PairKey(userA, userB string) string {
	if userB < userA {
		userA, userB = userB, userA
	}
	return userA + "|" + userB
}
