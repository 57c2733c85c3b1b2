package db

import (
	"context"

	"github.com/sidereusnuntius/zblog/internal/domain"
)

type Account interface {
	// GetCredentialByUsername returns the stored credential for username,
	// digest included. ErrNotFound when no such user exists; the caller
	// decides how much of that to reveal.
	GetCredentialByUsername(ctx context.Context, username string) (domain.Credential, error)
	// ReplacePasswordDigest swaps the stored digest for username. The
	// digest is opaque at this layer; verification of the old password
	// happens above.
	ReplacePasswordDigest(ctx context.Context, username, digest string) error
}
