package event

import (
	"socialgram/domain"
	"socialgram/domain/chat"
)

// Wire-level event kinds understood by connected clients.
const (
	KindOnlineUsers  = "online_users"
	KindNewMessage   = "new_message"
	KindNotification = "notification"
)

// Envelope is the tagged union sent over a transport:
// {"event": "...", "data": ...}. It is never persisted.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

func OnlineUsers(userIDs []string) Envelope {
	return Envelope{Event: KindOnlineUsers, Data: userIDs}
}

func NewMessage(msg chat.Message) Envelope {
	return Envelope{Event: KindNewMessage, Data: msg}
}

func Notification(n domain.Notification) Envelope {
	return Envelope{Event: KindNotification, Data: n}
}
