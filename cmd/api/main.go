package main

import (
	"context"

	"github.com/jpillora/overseer"
	"github.com/jpillora/overseer/fetcher"

	"github.com/somewherelostt/KaizenX/internal/app"
	"github.com/somewherelostt/KaizenX/internal/config"
	"github.com/somewherelostt/KaizenX/internal/infrastructure/cache"
	"github.com/somewherelostt/KaizenX/internal/infrastructure/db"
	"github.com/somewherelostt/KaizenX/internal/infrastructure/repository"
	"github.com/somewherelostt/KaizenX/internal/worker"
	"github.com/somewherelostt/KaizenX/pkg/graceful"
	"github.com/somewherelostt/KaizenX/pkg/logger"
)

func main() {
	debug := config.GetAppEnv() == "development"

	overseer.Run(overseer.Config{
		Program:       program,
		Address:       ":" + config.GetAppPort(),
		Fetcher:       &fetcher.File{Path: config.GetAppBinFile(), Interval: 5},
		Debug:         debug,
		RestartSignal: graceful.RestartSignal,
	})
}

func program(state overseer.State) {
	// Setup context with cancellation for graceful shutdown
	// This will be triggered by OS signal or overseer restarts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel() // prevent potential leak

	graceful.SetupGracefulShutdown(cancel)

	cfg := config.Load()

	// Logging
	logger.InitLogFile(cfg.App.LogFilePath)

	// DB Write
	dbWriteConn, err := db.ConnectDBWrite(cfg.DB)
	if err != nil {
		errorDetails := err.Error()
		logger.WriteLogToFile("failed", "db.ConnectDBWrite", map[string]any{
			"db_name": cfg.DB.DBWrite.Name,
			"db_host": cfg.DB.DBWrite.Host,
		}, &errorDetails)
		logger.Fatal("❌ Failed to connect database write: " + errorDetails)
	}
	logger.Infof("✅ Connected to database write: %s", cfg.DB.DBWrite.Name)

	// DB Read
	dbReadConn, err := db.ConnectDBRead(cfg.DB)
	if err != nil {
		errorDetails := err.Error()
		logger.WriteLogToFile("failed", "db.ConnectDBRead", map[string]any{
			"db_name": cfg.DB.DBRead.Name,
			"db_host": cfg.DB.DBRead.Host,
		}, &errorDetails)
		logger.Fatal("❌ Failed to connect database read: " + errorDetails)
	}
	logger.Infof("✅ Connected to database read: %s", cfg.DB.DBRead.Name)

	// Cache
	rdb, err := cache.ConnectRedis(ctx, *cfg.Redis)
	if err != nil {
		errorDetails := err.Error()
		logger.WriteLogToFile("failed", "cache.ConnectRedis", map[string]any{}, &errorDetails)
		logger.Fatal("❌ Failed to connect cache redis : " + errorDetails)
	}
	logger.Infof("✅ Connected to cache redis")

	// Ticket stream workers drain purchases into the DB
	ticketRepo := repository.NewTicketRepository(dbWriteConn, dbReadConn)
	eventRepo := repository.NewEventRepository(dbWriteConn, dbReadConn)
	streamWorker := worker.NewTicketStreamWorker(rdb, ticketRepo, eventRepo, nil)
	for i := 0; i < cfg.Worker.WorkerCount; i++ {
		go streamWorker.Run(ctx, worker.ConsumerName(cfg.App.Name, i))
	}

	// Start App
	application := app.NewApp(cfg, dbWriteConn, dbReadConn, rdb)
	go application.Start(state.Listener)

	// Block until terminated
	<-ctx.Done()

	// Graceful shutdown
	db.CloseDBWrite()
	db.CloseDBRead()
	rdb.Close()
	logger.Info("🛑 Shutting down gracefully...")
	logger.Info("✅ Cleanup done. Exiting.")
}
