package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/storefront/internal/client/cart"
	"github.com/dmitrijs2005/storefront/internal/client/cli"
	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/filex"
	"github.com/dmitrijs2005/storefront/internal/logging"

	_ "modernc.org/sqlite"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if s, ok := logger.(interface{ Sync() error }); ok {
		defer s.Sync()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPath, err := filex.EnsureDirFor(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	db, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	sess := session.NewManager(credentials.NewSQLiteRepository(db),
		session.WithCheckInterval(cfg.ExpirationCheckInterval),
		session.WithLogger(logger.With("component", "session")),
	)

	api := client.NewHTTPClient(client.Options{
		BaseURL:  cfg.BaseURL,
		Timeout:  cfg.RequestTimeout,
		RetryMax: cfg.RetryMax,
		Logger:   logger.With("component", "http"),
		Auth:     sess,
	})

	cs := cart.NewSynchronizer(api, sess, logger.With("component", "cart"))

	app := cli.NewApp(cli.Deps{
		Session: sess,
		Cart:    cs,
		Auth:    services.NewAuthService(api, sess),
		Catalog: services.NewCatalogService(api),
		Orders:  services.NewOrderService(api, cs, logger.With("component", "orders")),
		Admin:   services.NewAdminService(api, sess),
		Logger:  logger,
	})
	sess.SetNavigator(app)
	unsubscribe := sess.Subscribe(app.OnSessionEvent)

	if err := sess.Restore(ctx); err != nil {
		logger.Warn(ctx, "stored session discarded", "error", err)
	}

	// The REPL blocks on stdin, so a signal ends the process without waiting
	// for it to return.
	done := make(chan struct{})
	go func() {
		defer close(done)
		app.Run(ctx)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Info(context.Background(), "interrupted, shutting down")
	}

	unsubscribe()
	cs.Close()
	if err := sess.Close(); err != nil {
		logger.Error(context.Background(), "session close", "error", err)
	}
}
