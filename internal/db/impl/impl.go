package impl

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/zblog/internal/config"
	"github.com/sidereusnuntius/zblog/internal/db"
)

type dbImpl struct {
	Config config.Configuration
	db     *sql.DB
}

func New(config config.Configuration, d *sql.DB) db.DB {
	return &dbImpl{
		Config: config,
		db:     d,
	}
}

// HandleError takes a database error and returns a higher level error that
// hides the implementation details and can be handled by the calling
// functions without type assertions or driver error codes.
func (d *dbImpl) HandleError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return db.ErrNotFound
	}
	// Already mapped, e.g. by a callback running inside WithTx.
	if errors.Is(err, db.ErrNotFound) || errors.Is(err, db.ErrConflict) || errors.Is(err, db.ErrInternal) {
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %s", db.ErrConflict, err)
		}
	}

	log.Error().Err(err).Msg("storage failure")
	return fmt.Errorf("%w: %s", db.ErrInternal, err)
}

func (d *dbImpl) WithTx(ctx context.Context, f func(tx *sql.Tx) error) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return d.HandleError(err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		} else if err != nil {
			_ = tx.Rollback()
			err = d.HandleError(err)
		} else {
			err = d.HandleError(tx.Commit())
		}
	}()

	err = f(tx)
	return
}
