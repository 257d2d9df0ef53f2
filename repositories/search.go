//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_message_index.go -package=mocks
package repositories

import (
	"context"
	"log/slog"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"

	"socialgram/domain/chat"
)

type IMessageIndex interface {
	Index(msg chat.Message) error
	Search(ctx context.Context, text string, conversationID uuid.UUID, limit int) ([]chat.Message, error)
}

// MessageIndex is the full-text side channel over conversation history.
// It is fed asynchronously by the event fanout: indexing lag or loss never
// affects the write path.
type MessageIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewMessageIndex(writer *bluge.Writer, log *slog.Logger) *MessageIndex {
	return &MessageIndex{writer: writer, log: log}
}

// Index upserts one message document. All fields are stored so search hits
// can be returned without a second trip to BadgerDB.
func (i *MessageIndex) Index(msg chat.Message) error {
	doc := bluge.NewDocument(msg.ID.String()).
		AddField(bluge.NewTextField("body", msg.Body).StoreValue()).
		AddField(bluge.NewKeywordField("conversation_id", msg.ConversationID.String()).StoreValue()).
		AddField(bluge.NewKeywordField("sender_id", msg.SenderID).StoreValue()).
		AddField(bluge.NewKeywordField("receiver_id", msg.ReceiverID).StoreValue()).
		AddField(bluge.NewKeywordField("created_at", msg.CreatedAt.UTC().Format(time.RFC3339Nano)).StoreValue())
	return i.writer.Update(doc.ID(), doc)
}

// Search matches text within a single conversation, best hits first.
func (i *MessageIndex) Search(ctx context.Context, text string, conversationID uuid.UUID, limit int) ([]chat.Message, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(text).SetField("body")).
		AddMust(bluge.NewTermQuery(conversationID.String()).SetField("conversation_id"))

	iter, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var hits []chat.Message
	for {
		match, err := iter.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}

		var msg chat.Message
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				msg.ID, _ = uuid.Parse(string(value))
			case "conversation_id":
				msg.ConversationID, _ = uuid.Parse(string(value))
			case "sender_id":
				msg.SenderID = string(value)
			case "receiver_id":
				msg.ReceiverID = string(value)
			case "body":
				msg.Body = string(value)
			case "created_at":
				msg.CreatedAt, _ = time.Parse(time.RFC3339Nano, string(value))
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		hits = append(hits, msg)
	}
	return hits, nil
}
