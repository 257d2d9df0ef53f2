package errors

import "fmt"

var (
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrRecipientNotFound    = fmt.Errorf("recipient not found")
	ErrUserNotFound         = fmt.Errorf("user not found")
	ErrUserAlreadyExists    = fmt.Errorf("user already exists")
	ErrConversationNotFound = fmt.Errorf("no conversation for pair")
	ErrConversationExists   = fmt.Errorf("conversation already exists for pair")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrMissingEventType     = fmt.Errorf("notification requires a type discriminator")
	ErrSinkClosed           = fmt.Errorf("transport sink closed")
	ErrSlowConsumer         = fmt.Errorf("transport buffer full")
)
