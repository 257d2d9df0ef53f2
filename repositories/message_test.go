package repositories

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"socialgram/domain/chat"
)

func storeN(t *testing.T, repo MessageRepository, conversationID uuid.UUID, n int) []chat.Message {
	t.Helper()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	messages := make([]chat.Message, 0, n)
	for i := 0; i < n; i++ {
		msg := chat.Message{
			ID:             uuid.New(),
			SenderID:       "alice",
			ReceiverID:     "bob",
			ConversationID: conversationID,
			Body:           fmt.Sprintf("message %d", i),
			CreatedAt:      base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.StoreMessage(msg))
		messages = append(messages, msg)
	}
	return messages
}

func TestMessageRepository_ChronologicalOrder(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(openTestDB(t), slog.Default(), nil)
	conversationID := uuid.New()

	stored := storeN(t, repo, conversationID, 5)

	// When reading the full history
	got, _, err := repo.GetMessages(conversationID, nil)
	req.NoError(err)

	// Then messages come back oldest first without any sort step
	req.Len(got, 5)
	for i, msg := range got {
		req.Equal(stored[i].ID, msg.ID)
		req.Equal(stored[i].Body, msg.Body)
	}
}

func TestMessageRepository_ScopedToConversation(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(openTestDB(t), slog.Default(), nil)

	mine := uuid.New()
	other := uuid.New()
	storeN(t, repo, mine, 3)
	storeN(t, repo, other, 2)

	got, _, err := repo.GetMessages(mine, nil)
	req.NoError(err)
	req.Len(got, 3)
}

func TestMessageRepository_LimitAndCursor(t *testing.T) {
	req := require.New(t)
	limit := 2
	repo := NewMessageRepository(openTestDB(t), slog.Default(), &limit)
	conversationID := uuid.New()

	stored := storeN(t, repo, conversationID, 5)

	// When paging through the history
	var all []chat.Message
	var cursor *string
	for i := 0; i < 3; i++ {
		page, next, err := repo.GetMessages(conversationID, cursor)
		req.NoError(err)
		all = append(all, page...)
		cursor = next
	}

	// Then every message shows up exactly once, in order
	req.Len(all, 5)
	for i, msg := range all {
		req.Equal(stored[i].ID, msg.ID)
	}
}

func TestMessageRepository_EmptyConversation(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(openTestDB(t), slog.Default(), nil)

	got, _, err := repo.GetMessages(uuid.New(), nil)
	req.NoError(err)
	req.Empty(got)
}
