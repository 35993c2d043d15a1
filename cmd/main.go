package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/saeidalz13/battleship-board/api"
	"github.com/saeidalz13/battleship-board/db"
	"github.com/saeidalz13/battleship-board/db/sqlc"
	"github.com/saeidalz13/battleship-board/internal/config"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
	"github.com/saeidalz13/battleship-board/models/layout"
	"go.uber.org/zap"
)

var fleetPath = flag.String("fleet", "", "YAML fleet layout used when a create game request carries no ships (overrides FLEET_PATH)")

func newLogger(cfg config.Config) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsProd() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if *fleetPath != "" {
		cfg.FleetPath = *fleetPath
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	opts := make([]api.Option, 0, 2)
	if cfg.FleetPath != "" {
		specs, err := layout.Load(cfg.FleetPath)
		if err != nil {
			logger.Fatal("failed to load fleet", zap.String("path", cfg.FleetPath), zap.Error(err))
		}
		opts = append(opts, api.WithFleet(specs))
	}

	if cfg.HasDatabase() {
		conn := db.MustConnectToDb(cfg.DatabaseURL, logger)
		defer conn.Close()

		hostIpNet, err := api.HostIpNet()
		if err != nil {
			logger.Fatal("failed to find host ip", zap.Error(err))
		}
		dbManager := sqlc.NewDbManager(sqlc.New(conn), hostIpNet)
		opts = append(opts, api.WithRecorder(dbManager.Records))
	}

	rp, err := api.NewRequestProcessor(mb.NewBattleshipGameManager(logger), logger, opts...)
	if err != nil {
		logger.Fatal("failed to start", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("reading requests from stdin", zap.String("stage", cfg.Stage))
	if err := rp.Process(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		logger.Error("processing stopped", zap.Error(err))
	}
}
