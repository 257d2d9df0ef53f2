package domain

// Notification is a social event (like, comment, follow...) pushed to a
// single recipient over the realtime channel. The shape is extensible per
// type, but Type must always be set so clients can dispatch on it.
type Notification struct {
	Type        string       `json:"type"`
	UserID      string       `json:"userId"`
	UserDetails *UserDetails `json:"userDetails,omitempty"`
	PostID      string       `json:"postId,omitempty"`
	Message     string       `json:"message,omitempty"`
}
