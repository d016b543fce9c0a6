package models

import "time"

// UserProperty relation kinds.
const (
	RelationFavorite = "favorite"
	RelationOwner    = "owner"
)

// UserProperty links a user to a property (favorites, ownership).
type UserProperty struct {
	UserID     string    `json:"userId"`
	PropertyID string    `json:"propertyId"`
	Relation   string    `json:"relation"`
	CreatedAt  time.Time `json:"createdAt"`
}
