//go:generate go run go.uber.org/mock/mockgen -source=conversation_resolver.go -destination=../mocks/mock_conversation_resolver.go -package=mocks
package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"socialgram/domain/chat"
	apperrors "socialgram/errors"
	"socialgram/observability"
	"socialgram/repositories"
)

type IConversationResolver interface {
	FindOrCreate(ctx context.Context, userA, userB string) (chat.Conversation, error)
}

// ConversationResolver finds or lazily creates the single conversation for
// an unordered pair of users. Creation for a given pair is serialized by a
// per-pair mutex; the storage layer's uniqueness check backs it up, so a
// lost race is retried against the winner's record instead of surfacing.
type ConversationResolver struct {
	log           *slog.Logger
	conversations repositories.IConversationRepository
	users         repositories.IUserRepository
	stats         *observability.MonitoringManager

	mu        sync.Mutex
	pairLocks map[string]*sync.Mutex
}

func NewConversationResolver(log *slog.Logger,
	conversations repositories.IConversationRepository,
	users repositories.IUserRepository,
	stats *observability.MonitoringManager) *ConversationResolver {
	return &ConversationResolver{
		log:           log,
		conversations: conversations,
		users:         users,
		stats:         stats,
		pairLocks:     make(map[string]*sync.Mutex),
	}
}

// FindOrCreate returns the pair's conversation, creating it on first
// contact. Symmetric in its arguments: (A,B) and (B,A) always resolve to
// the same conversation. The recipient must exist; the sender is trusted,
// it was authenticated upstream.
func (r *ConversationResolver) FindOrCreate(ctx context.Context, userA, userB string) (chat.Conversation, error) {
	// Fast path: point lookup on the canonical pair key, no locking.
	conv, err := r.conversations.GetByPair(userA, userB)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, apperrors.ErrConversationNotFound) {
		return chat.Conversation{}, err
	}

	pairLock := r.lockForPair(chat.PairKey(userA, userB))
	pairLock.Lock()
	defer pairLock.Unlock()

	// Re-check under the pair lock: a concurrent first-contact send may
	// have created the conversation while we waited.
	conv, err = r.conversations.GetByPair(userA, userB)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, apperrors.ErrConversationNotFound) {
		return chat.Conversation{}, err
	}

	exists, err := r.users.Exists(userB)
	if err != nil {
		return chat.Conversation{}, err
	}
	if !exists {
		return chat.Conversation{}, apperrors.ErrRecipientNotFound
	}

	conv = chat.Conversation{
		ID:           uuid.New(),
		Participants: []string{userA, userB},
		CreatedAt:    time.Now().UTC(),
	}
	if err := r.conversations.Create(conv); err != nil {
		if errors.Is(err, apperrors.ErrConversationExists) {
			// Lost a race we couldn't see (e.g. a writer outside this
			// process); the winner's record is the canonical one.
			r.log.Debug("Conversation create conflict, reusing existing record",
				"pair", chat.PairKey(userA, userB))
			return r.conversations.GetByPair(userA, userB)
		}
		return chat.Conversation{}, err
	}

	r.stats.IncrConversationsCreated()
	r.log.Info("Conversation created", "id", conv.ID, "pair", chat.PairKey(userA, userB))
	return conv, nil
}

// lockForPair returns the mutex guarding check-then-create for one pair.
// Locks are never removed; the map grows with the number of distinct pairs
// that ever raced on first contact, which stays small.
func (r *ConversationResolver) lockForPair(pairKey string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.pairLocks[pairKey]
	if !ok {
		lock = &sync.Mutex{}
		r.pairLocks[pairKey] = lock
	}
	return lock
}
