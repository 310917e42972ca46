package domain

import "time"

type User struct {
	ID            string
	Username      string
	Email         string
	FullName      string
	PasswordHash  string
	RefreshToken  string
	AvatarURL     string
	CoverImageURL string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Sanitized returns a copy with credential material stripped, safe to hand
// back to callers.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clean := *u
	clean.PasswordHash = ""
	clean.RefreshToken = ""
	return &clean
}
