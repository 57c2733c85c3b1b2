package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Configuration struct {
	// Addr is the address the HTTP server listens on.
	Addr string `mapstructure:"addr"`
	// DbUrl is the sqlite connection string.
	DbUrl string `mapstructure:"db_url"`
	// MigrationsFolder is the directory holding the SQL migration files.
	MigrationsFolder string `mapstructure:"migrations_folder"`
	// Debug, if true, will make the application log at debug level.
	Debug bool `mapstructure:"debug"`

	// TokenSecret signs session tokens. Rotating it invalidates every
	// outstanding token; that is the only revocation mechanism.
	TokenSecret string `mapstructure:"token_secret"`
	// TokenTTLMinutes bounds the lifetime of issued session tokens.
	TokenTTLMinutes int `mapstructure:"token_ttl_minutes"`

	// AdminUsername and AdminPassword seed the first credential when the
	// users table is empty.
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`

	// Login limiter policy: at most LoginMaxFailures failed attempts per
	// source address within LoginWindowSeconds.
	LoginMaxFailures   int `mapstructure:"login_max_failures"`
	LoginWindowSeconds int `mapstructure:"login_window_seconds"`
	// Comment limiter policy, independent of the login one.
	CommentMaxPerWindow  int `mapstructure:"comment_max_per_window"`
	CommentWindowSeconds int `mapstructure:"comment_window_seconds"`

	// TrustProxyHeaders enables reading the client address from
	// X-Forwarded-For. Only set this behind a proxy that overwrites the
	// header; the limiters key on the resulting address.
	TrustProxyHeaders bool `mapstructure:"trust_proxy_headers"`
}

func (c Configuration) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

func (c Configuration) LoginWindow() time.Duration {
	return time.Duration(c.LoginWindowSeconds) * time.Second
}

func (c Configuration) CommentWindow() time.Duration {
	return time.Duration(c.CommentWindowSeconds) * time.Second
}

// ReadConfig loads config.yaml from the working directory or /etc/zblog,
// applies ZBLOG_* environment overrides and falls back to defaults for
// everything else. A missing config file is not an error.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/zblog")
	v.SetEnvPrefix("zblog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("db_url", "file:zblog.db?_foreign_keys=on")
	v.SetDefault("migrations_folder", "migrations")
	v.SetDefault("debug", false)
	v.SetDefault("token_ttl_minutes", 120)
	// Empty defaults so environment-only values survive Unmarshal.
	v.SetDefault("token_secret", "")
	v.SetDefault("admin_username", "admin")
	v.SetDefault("admin_password", "")
	v.SetDefault("login_max_failures", 5)
	v.SetDefault("login_window_seconds", 300)
	v.SetDefault("comment_max_per_window", 5)
	v.SetDefault("comment_window_seconds", 60)
	v.SetDefault("trust_proxy_headers", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, err
		}
	}

	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return Configuration{}, err
	}
	return c, nil
}
