package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"socialgram/contract"
	"socialgram/domain/chat"
	"socialgram/domain/event"
	apperrors "socialgram/errors"
	"socialgram/moderation"
	"socialgram/observability"
	"socialgram/repositories"
)

type IChatService interface {
	SendMessage(ctx context.Context, senderID, receiverID, body string) (chat.Message, error)
	GetConversation(ctx context.Context, userID, receiverID string) ([]chat.Message, error)
	SearchMessages(ctx context.Context, userID, receiverID, query string) ([]chat.Message, error)
}

type ChatService struct {
	log           *slog.Logger
	resolver      IConversationResolver
	conversations repositories.IConversationRepository
	messages      repositories.IMessageRepository
	index         repositories.IMessageIndex
	moderator     *moderation.Moderator
	router        contract.IMessageRouter
	events        chan<- event.DomainEvent
	stats         *observability.MonitoringManager
	searchLimit   int
}

func NewChatService(log *slog.Logger,
	resolver IConversationResolver,
	conversations repositories.IConversationRepository,
	messages repositories.IMessageRepository,
	index repositories.IMessageIndex,
	moderator *moderation.Moderator,
	router contract.IMessageRouter,
	events chan<- event.DomainEvent,
	stats *observability.MonitoringManager,
	searchLimit int) *ChatService {
	return &ChatService{
		log:           log,
		resolver:      resolver,
		conversations: conversations,
		messages:      messages,
		index:         index,
		moderator:     moderator,
		router:        router,
		events:        events,
		stats:         stats,
		searchLimit:   searchLimit,
	}
}

// SendMessage resolves the conversation, persists the (censored) message,
// then pushes a new_message event to the receiver. The push is best-effort:
// by the time it runs the write already succeeded, so the sender gets a
// success response whether or not the receiver is online.
func (s *ChatService) SendMessage(ctx context.Context, senderID, receiverID, body string) (chat.Message, error) {
	censored, foundWords := s.moderator.Censor(body)

	conv, err := s.resolver.FindOrCreate(ctx, senderID, receiverID)
	if err != nil {
		return chat.Message{}, err
	}

	msg := chat.Message{
		ID:             uuid.New(),
		SenderID:       senderID,
		ReceiverID:     receiverID,
		ConversationID: conv.ID,
		Body:           censored,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.messages.StoreMessage(msg); err != nil {
		return chat.Message{}, err
	}
	s.stats.IncrMessagesSent()

	lang := moderation.DetectLanguage(body)
	if len(foundWords) > 0 {
		s.log.Info("Censored message content",
			"message", msg.ID, "words", len(foundWords), "lang", lang)
	}

	s.router.SendMessageEvent(ctx, receiverID, msg)
	s.publish(event.MessageSent{Message: msg, Lang: lang, CensoredWords: foundWords})
	return msg, nil
}

// GetConversation returns the full ordered history between the two users,
// or an empty slice when they never exchanged a message. Reads never create
// a conversation.
func (s *ChatService) GetConversation(ctx context.Context, userID, receiverID string) ([]chat.Message, error) {
	conv, err := s.conversations.GetByPair(userID, receiverID)
	if errors.Is(err, apperrors.ErrConversationNotFound) {
		return []chat.Message{}, nil
	}
	if err != nil {
		return nil, err
	}

	messages, _, err := s.messages.GetMessages(conv.ID, nil)
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// SearchMessages runs a full-text query scoped to the caller's conversation
// with receiverID. No conversation means no hits.
func (s *ChatService) SearchMessages(ctx context.Context, userID, receiverID, query string) ([]chat.Message, error) {
	conv, err := s.conversations.GetByPair(userID, receiverID)
	if errors.Is(err, apperrors.ErrConversationNotFound) {
		return []chat.Message{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.index.Search(ctx, query, conv.ID, s.searchLimit)
}

// publish hands a domain event to the fanout without ever blocking the
// request path; observability lag is acceptable, request latency is not.
func (s *ChatService) publish(e event.DomainEvent) {
	select {
	case s.events <- e:
	default:
		s.log.Debug("Domain event channel full, dropping event")
	}
}
