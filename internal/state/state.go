package state

import (
	"github.com/sidereusnuntius/zblog/internal/config"
	"github.com/sidereusnuntius/zblog/internal/db"
)

type State struct {
	DB     db.DB
	Config config.Configuration
}
