//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"socialgram/domain/chat"
)

type IMessageRepository interface {
	StoreMessage(msg chat.Message) error
	GetMessages(conversationID uuid.UUID, cursor *string) ([]chat.Message, *string, error)
}

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

type diskMessage struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	ReceiverID     string    `json:"receiver_id"`
	Body           string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

// StoreMessage persists a message in BadgerDB.
// The key is formatted as "msg:{conversation_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two
//     messages arrive at the same nanosecond.
func (m MessageRepository) StoreMessage(msg chat.Message) error {
	key := fmt.Sprintf("msg:%s:%019d:%s",
		msg.ConversationID,
		msg.CreatedAt.UnixNano(),
		msg.ID,
	)
	data, err := json.Marshal(fromMessage(msg))
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// GetMessages retrieves a conversation's history using a prefix scan.
// Thanks to the padded timestamp in the key, messages come back in
// creation-time order without sorting. When a limit is configured, the
// returned cursor resumes the scan after the last key of the page; a nil
// cursor starts from the oldest message.
func (m MessageRepository) GetMessages(conversationID uuid.UUID, cursor *string) ([]chat.Message, *string, error) {
	var rawMessages [][]byte
	var lastKey string

	prefixStr := fmt.Sprintf("msg:%s:", conversationID)
	prefix := []byte(prefixStr)

	err := m.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		seekKey := prefix
		if cursor != nil {
			seekKey = append([]byte(prefixStr), []byte(*cursor)...)
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) {
			// The cursor points at the last key already returned.
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(rawMessages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d messages reached", *m.limitMessages))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefixStr):])
			err := item.Value(func(val []byte) error {
				rawMessages = append(rawMessages, append([]byte(nil), val...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	messages := make([]chat.Message, 0, len(rawMessages))
	for _, raw := range rawMessages {
		var record diskMessage
		if err = json.Unmarshal(raw, &record); err != nil {
			return nil, nil, err
		}
		messages = append(messages, toMessage(record))
	}
	return messages, &lastKey, nil
}

func fromMessage(msg chat.Message) diskMessage {
	return diskMessage{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		ReceiverID:     msg.ReceiverID,
		Body:           msg.Body,
		CreatedAt:      msg.CreatedAt.UTC(),
	}
}

func toMessage(record diskMessage) chat.Message {
	return chat.Message{
		ID:             record.ID,
		ConversationID: record.ConversationID,
		SenderID:       record.SenderID,
		ReceiverID:     record.ReceiverID,
		Body:           record.Body,
		CreatedAt:      record.CreatedAt.UTC(),
	}
}
