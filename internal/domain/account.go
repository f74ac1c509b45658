package domain

import "time"

// Account represents a registered principal of the system.
type Account struct {
	ID           int64
	Username     string
	Email        string
	FullName     string
	PasswordHash string
	Disabled     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
