package models

import "time"

// User is the identity root. PasswordHash is empty for federated accounts
// (signed in through an external identity provider), in which case Federated
// is set and password login is rejected.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Roles        []string  `json:"roles"`
	Federated    bool      `json:"federated"`
	CreatedAt    time.Time `json:"createdAt"`
}
