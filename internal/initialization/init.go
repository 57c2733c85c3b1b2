// The initialization package contains functions that set up required
// dependencies such as the SQLite database and the seed administrator.
package initialization

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/sqlite3"
	_ "github.com/golang-migrate/migrate/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/zblog/internal/auth"
	"github.com/sidereusnuntius/zblog/internal/config"
)

// SetupDB applies all remaining migrations to the database.
func SetupDB(db *sql.DB, folder, dbname string) error {
	log.Info().Msg("starting migrations")
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		log.Error().Err(err).Msg("failed to create sqlite3 migration driver")
		return err
	}

	mig, err := migrate.NewWithDatabaseInstance(
		"file://"+folder,
		dbname,
		driver,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create Migrate object")
		return err
	}

	err = mig.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Error().Err(err).Msg("failed to run migrations")
		return err
	}
	return nil
}

func OpenDB(connString string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", connString)
	if err != nil {
		log.Error().Err(err).Str("connection string", connString).Msg("failed to open database")
	}
	return db, err
}

// EnsureAdmin seeds the administrator credential when the users table is
// empty, so a fresh instance is reachable. The configured password is only
// consulted here; once a user row exists this is a no-op.
func EnsureAdmin(db *sql.DB, cfg *config.Configuration) error {
	row := db.QueryRow("SELECT COUNT(*) FROM users")
	var count int64
	if err := row.Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.AdminPassword == "" {
		return errors.New("no users exist and no admin_password is configured")
	}

	digest, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	log.Info().Str("username", cfg.AdminUsername).Msg("seeding administrator account")
	_, err = db.Exec(
		`INSERT INTO users (username, password_hash) VALUES (?, ?)`,
		cfg.AdminUsername, digest)
	if err != nil {
		log.Error().Err(err).Msg("insert failed")
	}
	return err
}
