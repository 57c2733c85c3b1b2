package core

import (
	"github.com/sidereusnuntius/zblog/internal/auth"
	"github.com/sidereusnuntius/zblog/internal/config"
	"github.com/sidereusnuntius/zblog/internal/db"
	"github.com/sidereusnuntius/zblog/internal/ratelimit"
	"github.com/sidereusnuntius/zblog/internal/service"
	"github.com/sidereusnuntius/zblog/internal/state"
)

type AppService struct {
	Config config.Configuration
	DB     db.DB
	Tokens *auth.TokenIssuer

	// Two independent sliding windows keyed by source address: one counts
	// login failures, one counts comment submissions.
	LoginLimiter   *ratelimit.Limiter
	CommentLimiter *ratelimit.Limiter
}

func New(state *state.State, tokens *auth.TokenIssuer, login, comments *ratelimit.Limiter) service.Service {
	return &AppService{
		Config:         state.Config,
		DB:             state.DB,
		Tokens:         tokens,
		LoginLimiter:   login,
		CommentLimiter: comments,
	}
}

// clampPage normalizes 1-indexed pagination parameters against a default
// and a maximum page size.
func clampPage(page, size, defaultSize, maxSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}
	return page, size
}

func truncateRunes(s string, max int) string {
	if runes := []rune(s); len(runes) > max {
		return string(runes[:max])
	}
	return s
}
