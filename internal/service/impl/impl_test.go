package core

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sidereusnuntius/zblog/internal/auth"
	"github.com/sidereusnuntius/zblog/internal/config"
	mock_db "github.com/sidereusnuntius/zblog/internal/mocks"
	"github.com/sidereusnuntius/zblog/internal/ratelimit"
	"go.uber.org/mock/gomock"
)

var ctx = context.Background()

// fakeClock lets the tests move through limiter windows without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// newTestService wires an AppService over a mock store, a deterministic
// clock and the production limiter policies.
func newTestService(t *testing.T) (*AppService, *mock_db.MockDB, *fakeClock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	DB := mock_db.NewMockDB(ctrl)
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}

	svc := &AppService{
		Config:         config.Configuration{},
		DB:             DB,
		Tokens:         auth.NewTokenIssuer("test-secret", 2*time.Hour),
		LoginLimiter:   ratelimit.New(ratelimit.Policy{Max: 5, Window: 5 * time.Minute}, clock),
		CommentLimiter: ratelimit.New(ratelimit.Policy{Max: 5, Window: time.Minute}, clock),
	}
	return svc, DB, clock
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		name       string
		page, size int
		wantPage   int
		wantSize   int
	}{
		{name: "Defaults", page: 0, size: 0, wantPage: 1, wantSize: 10},
		{name: "Negative", page: -3, size: -1, wantPage: 1, wantSize: 10},
		{name: "WithinBounds", page: 2, size: 25, wantPage: 2, wantSize: 25},
		{name: "AboveMax", page: 1, size: 500, wantPage: 1, wantSize: 50},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			page, size := clampPage(c.page, c.size, 10, 50)
			if page != c.wantPage || size != c.wantSize {
				t.Errorf("clampPage(%d, %d) = (%d, %d), expected (%d, %d)",
					c.page, c.size, page, size, c.wantPage, c.wantSize)
			}
		})
	}
}
