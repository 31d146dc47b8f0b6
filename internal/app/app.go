// Package app wires the database pool, config objects, router and
// middleware into one runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/minefield/minefield-server/internal/config"
	"github.com/minefield/minefield-server/internal/database"
	"github.com/minefield/minefield-server/internal/middleware"
	"github.com/minefield/minefield-server/internal/repository"
)

// staleSessionIdle is how long an unfinished anonymous game may sit
// untouched before the janitor removes it.
const staleSessionIdle = 24 * time.Hour

type App struct {
	logger  *slog.Logger
	db      *pgxpool.Pool
	cookies *config.Cookies
	jwt     *config.JWT
	ws      *config.WebSocket
}

func New(logger *slog.Logger) *App {
	return &App{logger: logger}
}

// janitor periodically deletes stale anonymous sessions until ctx is
// canceled.
func (a *App) janitor(ctx context.Context) error {
	repo := repository.New(a.db)
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := repo.DeleteStaleAnonymousSessions(ctx, staleSessionIdle)
			if err != nil {
				a.logger.Error("janitor sweep failed", slog.Any("error", err))
				continue
			}
			if n > 0 {
				a.logger.Info("removed stale sessions", slog.Int64("count", n))
			}
		}
	}
}

func (a *App) Start(ctx context.Context) error {
	db, err := database.ConnectAndMigrate(ctx)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	a.db = db
	defer db.Close()

	jwt, err := config.NewJWT()
	if err != nil {
		return fmt.Errorf("unable to load jwt keys: %w", err)
	}
	a.jwt = jwt

	cookies, err := config.NewCookies(jwt)
	if err != nil {
		return err
	}
	a.cookies = cookies

	ws, err := config.NewWebSocket()
	if err != nil {
		return err
	}
	a.ws = ws

	server := &http.Server{
		Addr: config.Addr(),
		Handler: middleware.Wrap(
			a.router(),
			middleware.Auth(cookies),
			middleware.Cors(),
			middleware.Logging(a.logger),
		),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return a.janitor(gCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	a.logger.Info("server listening", slog.String("addr", config.Addr()))
	return g.Wait()
}
