// Package tokens declares the server-side repository contract for the
// single live token pair kept per user.
package tokens

import (
	"context"

	"github.com/dmitrijs2005/realtyhub/internal/server/models"
)

// Repository defines operations over stored token pairs. A user has at most
// one live pair; Save overwrites, which is what invalidates older pairs.
type Repository interface {
	// Save upserts the pair for userID, replacing any prior one.
	Save(ctx context.Context, userID, accessToken, refreshToken string) error

	// FindByPair returns the stored pair whose access AND refresh tokens
	// both exactly match, or common.ErrorNotFound. Partial matches do not
	// count.
	FindByPair(ctx context.Context, accessToken, refreshToken string) (*models.TokenPair, error)

	// DeleteMatchingPair removes the pair for userID only if both token
	// values still match, reporting whether a row was deleted. This is the
	// compare-and-swap guard used by refresh rotation.
	DeleteMatchingPair(ctx context.Context, userID, accessToken, refreshToken string) (bool, error)
}
