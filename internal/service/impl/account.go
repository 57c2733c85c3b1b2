package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sidereusnuntius/zblog/internal/auth"
	"github.com/sidereusnuntius/zblog/internal/db"
	"github.com/sidereusnuntius/zblog/internal/service"
	"github.com/sidereusnuntius/zblog/internal/validate"
)

// Login confirms the user's identity and returns a session token. The
// limiter is consulted before any verification work and the per-source lock
// is held across the whole check/verify/record sequence, so concurrent
// attempts from one source cannot race past the threshold.
func (s *AppService) Login(ctx context.Context, source, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if err := validate.Username(username); err != nil {
		return "", fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}
	if password == "" {
		return "", fmt.Errorf("%w: empty password", service.ErrInvalidInput)
	}

	unlock := s.LoginLimiter.Lock(source)
	defer unlock()

	if d := s.LoginLimiter.Check(source); !d.Allowed {
		return "", &service.RateLimitedError{RetryAfter: d.RetryAfter}
	}

	cred, err := s.DB.GetCredentialByUsername(ctx, username)
	switch {
	case errors.Is(err, db.ErrNotFound):
		// An unknown username burns an attempt like a wrong password,
		// and the response is identical for both.
		s.LoginLimiter.Record(source)
		return "", service.ErrUnauthorized
	case err != nil:
		return "", err
	}

	if !auth.VerifyPassword(password, cred.PasswordDigest) {
		s.LoginLimiter.Record(source)
		return "", service.ErrUnauthorized
	}

	s.LoginLimiter.Clear(source)
	return s.Tokens.Issue(cred.Username)
}

// VerifyToken checks the token and confirms the subject still exists, so a
// deleted account's outstanding tokens stop working.
func (s *AppService) VerifyToken(ctx context.Context, token string) (string, error) {
	subject, err := s.Tokens.Verify(token)
	if err != nil {
		return "", fmt.Errorf("%w: %s", service.ErrUnauthorized, err)
	}

	if _, err := s.DB.GetCredentialByUsername(ctx, subject); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", service.ErrUnauthorized
		}
		return "", err
	}
	return subject, nil
}

func (s *AppService) ChangePassword(ctx context.Context, subject, oldPassword, newPassword string) error {
	if err := validate.Password(newPassword); err != nil {
		return fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	cred, err := s.DB.GetCredentialByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return service.ErrUnauthorized
		}
		return err
	}

	if !auth.VerifyPassword(oldPassword, cred.PasswordDigest) {
		return fmt.Errorf("%w: current password is incorrect", service.ErrInvalidInput)
	}

	digest, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.DB.ReplacePasswordDigest(ctx, subject, digest)
}
