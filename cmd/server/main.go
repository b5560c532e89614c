package main

import (
	"fmt"
	"log/slog"
	"os"

	log "github.com/charmbracelet/log"
	infrarepo "github.com/novabank/accounts/infra/repository"
	"github.com/novabank/accounts/pkg/accountnumber"
	"github.com/novabank/accounts/pkg/config"
	accountssvc "github.com/novabank/accounts/pkg/service/accounts"
	infosvc "github.com/novabank/accounts/pkg/service/info"
	"github.com/novabank/accounts/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	db, err := infrarepo.NewDBConnection(cfg.DB.Url)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	uow := infrarepo.NewUoW(db)
	accountsSvc := accountssvc.New(uow, accountnumber.New(), logger)
	infoSvc := infosvc.New(cfg, logger)

	app := webapi.NewApp(accountsSvc, infoSvc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return app.Listen(addr)
}

func setupLogger(cfg *config.Log) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.Level(cfg.Level)}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
