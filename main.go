package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/zblog/internal/auth"
	"github.com/sidereusnuntius/zblog/internal/config"
	db "github.com/sidereusnuntius/zblog/internal/db/impl"
	"github.com/sidereusnuntius/zblog/internal/initialization"
	"github.com/sidereusnuntius/zblog/internal/ratelimit"
	service "github.com/sidereusnuntius/zblog/internal/service/impl"
	"github.com/sidereusnuntius/zblog/internal/state"
	"github.com/sidereusnuntius/zblog/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config, err := config.ReadConfig()
	if err != nil {
		zero.Fatal().Err(err).Msg("failed to read configuration")
	}
	if config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if config.TokenSecret == "" {
		zero.Fatal().Msg("token_secret is not configured")
	}

	d, err := initialization.OpenDB(config.DbUrl)
	if err != nil {
		zero.Fatal().Err(err).Msg("failed to open database")
	}
	defer d.Close()
	zero.Info().Msg("database connection established")

	if os.Getenv("SETUP") != "" {
		if err := initialization.SetupDB(d, config.MigrationsFolder, "zblog"); err != nil {
			zero.Fatal().Err(err).Msg("migrations failed")
		}
	}

	if err := initialization.EnsureAdmin(d, &config); err != nil {
		zero.Fatal().Err(err).Msg("failed to ensure administrator account")
	}

	st := state.State{
		DB:     db.New(config, d),
		Config: config,
	}

	clock := ratelimit.SystemClock{}
	svc := service.New(
		&st,
		auth.NewTokenIssuer(config.TokenSecret, config.TokenTTL()),
		ratelimit.New(ratelimit.Policy{Max: config.LoginMaxFailures, Window: config.LoginWindow()}, clock),
		ratelimit.New(ratelimit.Policy{Max: config.CommentMaxPerWindow, Window: config.CommentWindow()}, clock),
	)

	router := chi.NewRouter()
	web.New(config, svc).Mount(router)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	s := &http.Server{
		Addr:         config.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zero.Info().Str("addr", config.Addr).Msg("started server")
		if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zero.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zero.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		zero.Error().Err(err).Msg("forced shutdown")
	}
}
