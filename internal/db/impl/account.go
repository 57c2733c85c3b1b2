package impl

import (
	"context"
	"time"

	"github.com/sidereusnuntius/zblog/internal/db"
	"github.com/sidereusnuntius/zblog/internal/domain"
)

func (d *dbImpl) GetCredentialByUsername(ctx context.Context, username string) (domain.Credential, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at, updated_at
		 FROM users WHERE username = ?`, username)

	var c domain.Credential
	err := row.Scan(&c.ID, &c.Username, &c.PasswordDigest, &c.Created, &c.Updated)
	if err != nil {
		return domain.Credential{}, d.HandleError(err)
	}
	return c, nil
}

func (d *dbImpl) ReplacePasswordDigest(ctx context.Context, username, digest string) error {
	res, err := d.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE username = ?`,
		digest, time.Now().UTC(), username)
	if err != nil {
		return d.HandleError(err)
	}

	if n, err := res.RowsAffected(); err != nil {
		return d.HandleError(err)
	} else if n == 0 {
		return db.ErrNotFound
	}
	return nil
}
