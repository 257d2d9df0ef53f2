//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"socialgram/domain/chat"
	apperrors "socialgram/errors"
)

type IConversationRepository interface {
	GetByPair(userA, userB string) (chat.Conversation, error)
	Create(conv chat.Conversation) error
}

// ConversationRepository stores one record per unordered participant pair
// under "conv:{pairKey}". Keying by the canonical pair makes resolution a
// point lookup and turns a creation race into a detectable conflict.
type ConversationRepository struct {
	db *badger.DB
}

func NewConversationRepository(db *badger.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

func pairRecordKey(userA, userB string) []byte {
	return []byte("conv:" + chat.PairKey(userA, userB))
}

func (c ConversationRepository) GetByPair(userA, userB string) (chat.Conversation, error) {
	var conv chat.Conversation
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(pairRecordKey(userA, userB))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &conv)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return chat.Conversation{}, apperrors.ErrConversationNotFound
	}
	if err != nil {
		return chat.Conversation{}, err
	}
	return conv, nil
}

// Create persists the conversation, failing with ErrConversationExists when
// the pair already has one. The check and the write share one transaction,
// so concurrent creators cannot both win.
func (c ConversationRepository) Create(conv chat.Conversation) error {
	if len(conv.Participants) != 2 {
		return errors.New("conversation requires exactly two participants")
	}
	data, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	key := pairRecordKey(conv.Participants[0], conv.Participants[1])
	return c.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == nil {
			return apperrors.ErrConversationExists
		}
		return txn.Set(key, data)
	})
}
