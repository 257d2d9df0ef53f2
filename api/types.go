package api

import "socialgram/domain/chat"

type SendMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type NotifyRequest struct {
	RecipientID string `json:"recipientId" validate:"required"`
	Type        string `json:"type" validate:"required"`
	UserID      string `json:"userId"`
	PostID      string `json:"postId"`
	Message     string `json:"message"`
}

type SendMessageResponse struct {
	Success    bool         `json:"success"`
	NewMessage chat.Message `json:"new_message"`
}

type MessagesResponse struct {
	Success  bool           `json:"success"`
	Messages []chat.Message `json:"messages"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	OnlineUsers int    `json:"online_users"`
}
