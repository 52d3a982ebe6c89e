package store

import (
	"context"
	"time"
)

// revokedToken is a logged-out session token id, kept until its
// expiry so the JWT can no longer be replayed.
type revokedToken struct {
	JTI       string    `json:"jti"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RevokeToken adds a token's JTI to the revocation list and drops
// revocations that have already expired.
func (s *Store) RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error {
	now := time.Now().UTC()
	return mutate(ctx, s, colRevokedTokens, func(tokens []revokedToken) ([]revokedToken, error) {
		kept := tokens[:0]
		for _, t := range tokens {
			if t.ExpiresAt.After(now) && t.JTI != jti {
				kept = append(kept, t)
			}
		}
		return append(kept, revokedToken{JTI: jti, ExpiresAt: expiresAt}), nil
	})
}

// IsTokenRevoked checks if a token's JTI has been revoked.
func (s *Store) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	tokens, err := readAll[revokedToken](ctx, s, colRevokedTokens)
	if err != nil {
		return false, err
	}
	for _, t := range tokens {
		if t.JTI == jti {
			return true, nil
		}
	}
	return false, nil
}
