package services

import (
	"context"
	"errors"
	"log/slog"

	"socialgram/contract"
	"socialgram/domain"
	apperrors "socialgram/errors"
	"socialgram/observability"
	"socialgram/repositories"
)

type INotificationService interface {
	Notify(ctx context.Context, recipientID string, n domain.Notification) error
}

// NotificationService pushes social notifications (likes, comments,
// follows) originating from other subsystems. Those subsystems have already
// committed their own writes; delivery here is strictly best-effort and its
// outcome is never reported back to them.
type NotificationService struct {
	log    *slog.Logger
	users  repositories.IUserRepository
	router contract.IMessageRouter
	stats  *observability.MonitoringManager
}

func NewNotificationService(log *slog.Logger, users repositories.IUserRepository,
	router contract.IMessageRouter, stats *observability.MonitoringManager) *NotificationService {
	return &NotificationService{log: log, users: users, router: router, stats: stats}
}

// Notify enriches the payload with the acting user's details and routes it
// to the recipient. Only a missing type discriminator is an error; an
// offline recipient is not.
func (s *NotificationService) Notify(ctx context.Context, recipientID string, n domain.Notification) error {
	if n.Type == "" {
		return apperrors.ErrMissingEventType
	}

	if n.UserDetails == nil && n.UserID != "" {
		actor, err := s.users.GetUserByID(n.UserID)
		switch {
		case err == nil:
			details := actor.Details()
			n.UserDetails = &details
		case errors.Is(err, apperrors.ErrUserNotFound):
			s.log.Debug("Notification actor unknown, sending without details", "actor", n.UserID)
		default:
			return err
		}
	}

	s.router.SendNotification(ctx, recipientID, n)
	s.stats.IncrNotificationsSent()
	return nil
}
