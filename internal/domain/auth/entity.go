package auth

import "time"

// RefreshToken is the server-side record of an issued refresh token,
// identified by its JTI claim. Revoked tokens stay on file so reuse after
// logout is detectable.
type RefreshToken struct {
	ID        int64
	JTI       string
	UserID    int64
	Revoked   bool
	ExpiresAt time.Time
	CreatedAt time.Time
}
