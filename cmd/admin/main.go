package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/qradmin/internal/admin/cli"
	"github.com/dmitrijs2005/qradmin/internal/admin/client"
	"github.com/dmitrijs2005/qradmin/internal/admin/config"
	"github.com/dmitrijs2005/qradmin/internal/admin/session"
	"github.com/dmitrijs2005/qradmin/internal/admin/storage"
	"github.com/dmitrijs2005/qradmin/internal/buildinfo"
	"github.com/dmitrijs2005/qradmin/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	db, err := storage.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	// the client reads the token from the session, which needs the client
	var sess *session.Store
	api, err := client.New(cfg.BaseURL, cfg.RequestTimeout, client.TokenFunc(func() string { return sess.Token() }), logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	sess = session.New(api, storage.NewTokenStore(db), logger)
	api.OnUnauthorized(func(ctx context.Context) {
		if sess.Expire(ctx) {
			logger.Info(ctx, "session expired")
		}
	})

	app := cli.NewApp(cfg, sess, api, logger)
	app.Run(ctx)

}
