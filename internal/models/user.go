package models

// UserProfile is a stored credential record. Exactly one record exists per
// username; records are created out-of-band (seeding), never through the site.
type UserProfile struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never expose the hash
}
