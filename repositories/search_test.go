package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"socialgram/domain/chat"
)

func openTestIndex(t *testing.T) *MessageIndex {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewMessageIndex(writer, slog.Default())
}

func TestMessageIndex_SearchWithinConversation(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	mine := uuid.New()
	other := uuid.New()

	hit := chat.Message{
		ID:             uuid.New(),
		SenderID:       "alice",
		ReceiverID:     "bob",
		ConversationID: mine,
		Body:           "let's meet at the harbor tomorrow",
		CreatedAt:      time.Now().UTC().Truncate(time.Millisecond),
	}
	req.NoError(index.Index(hit))
	req.NoError(index.Index(chat.Message{
		ID:             uuid.New(),
		SenderID:       "alice",
		ReceiverID:     "bob",
		ConversationID: mine,
		Body:           "completely unrelated topic",
		CreatedAt:      time.Now().UTC(),
	}))
	// Same words, different conversation: must never leak into the results.
	req.NoError(index.Index(chat.Message{
		ID:             uuid.New(),
		SenderID:       "carol",
		ReceiverID:     "dan",
		ConversationID: other,
		Body:           "the harbor is beautiful",
		CreatedAt:      time.Now().UTC(),
	}))

	got, err := index.Search(context.Background(), "harbor", mine, 10)
	req.NoError(err)
	req.Len(got, 1)
	req.Equal(hit.ID, got[0].ID)
	req.Equal(hit.Body, got[0].Body)
	req.Equal(hit.SenderID, got[0].SenderID)
	req.Equal(mine, got[0].ConversationID)
}

func TestMessageIndex_NoMatch(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	conversationID := uuid.New()
	req.NoError(index.Index(chat.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Body:           "hello world",
		CreatedAt:      time.Now().UTC(),
	}))

	got, err := index.Search(context.Background(), "nonexistent", conversationID, 10)
	req.NoError(err)
	req.Empty(got)
}

func TestMessageIndex_ReindexSameIDReplaces(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	conversationID := uuid.New()
	msg := chat.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Body:           "first version",
		CreatedAt:      time.Now().UTC(),
	}
	req.NoError(index.Index(msg))

	msg.Body = "second version"
	req.NoError(index.Index(msg))

	got, err := index.Search(context.Background(), "version", conversationID, 10)
	req.NoError(err)
	req.Len(got, 1)
	req.Equal("second version", got[0].Body)
}
