package domain

import "time"

// User is the slice of the account domain this core needs: enough to
// verify a recipient exists and to enrich notification payloads.
// Signup and profile editing live in an external service.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"user_name"`
	ProfilePicture string    `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserDetails is the embedded actor description carried by notifications.
type UserDetails struct {
	Username       string `json:"user_name"`
	ProfilePicture string `json:"profile_picture"`
}

func (u User) Details() UserDetails {
	return UserDetails{Username: u.Username, ProfilePicture: u.ProfilePicture}
}
