package app

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/lkphuong/api-homepage/config"
	httpapi "github.com/lkphuong/api-homepage/internal/api/http"
	"github.com/lkphuong/api-homepage/internal/apisrv/admin"
	"github.com/lkphuong/api-homepage/internal/apisrv/auth"
	"github.com/lkphuong/api-homepage/internal/content"
	"github.com/lkphuong/api-homepage/internal/entity"
	"github.com/lkphuong/api-homepage/internal/store"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   *store.MYSQLStore
	c    *config.Config
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting api-homepage")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to database",
			slog.String("err", err.Error()),
		)
		return err
	}

	files, err := a.c.Bucket.New()
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new bucket",
			slog.String("err", err.Error()),
		)
		return err
	}

	svc := content.New(a.c.Content, a.db, files)

	authS, err := auth.New(&a.c.Auth, svc)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new auth server",
			slog.String("err", err.Error()),
		)
		return err
	}

	adminS := admin.New(svc)

	// start API server
	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, a.db, adminS, authS); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	go func() {
		<-a.hs.Done()
		a.closeOnce()
	}()
	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown failed",
				slog.String("err", err.Error()),
			)
		}
		<-a.hs.Done()
	}
	if a.db != nil {
		a.db.Close()
	}
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() <-chan struct{} {
	return a.done
}

func (a *App) closeOnce() {
	select {
	case <-a.done:
	default:
		close(a.done)
	}
}

// CreateUser bootstraps an account outside the HTTP surface.
func CreateUser(ctx context.Context, c *config.Config, username, password string, permissions []string) error {
	db, err := store.New(ctx, c.DB)
	if err != nil {
		return fmt.Errorf("can't connect to database: %w", err)
	}
	defer db.Close()

	svc := content.New(c.Content, db, nil)
	u, err := svc.CreateUser(ctx, &entity.UserInput{
		Username:    username,
		Password:    password,
		Active:      true,
		Permissions: permissions,
	}, "system")
	if err != nil {
		return err
	}
	slog.Default().InfoContext(ctx, "user created",
		slog.String("id", u.Id),
		slog.String("username", u.Username),
	)
	return nil
}

// Migrate applies every pending migration and exits.
func Migrate(ctx context.Context, c *config.Config) error {
	c.DB.Automigrate = true
	db, err := store.New(ctx, c.DB)
	if err != nil {
		return fmt.Errorf("can't migrate database: %w", err)
	}
	db.Close()
	return nil
}
