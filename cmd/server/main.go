package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/scoutfriends/scout-server/internal/config"
	"github.com/scoutfriends/scout-server/internal/logger"
	"github.com/scoutfriends/scout-server/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	logger.Init()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.Warn("config load failed, using defaults", "path", *configPath, "err", err)
		cfg = config.Default()
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		logger.Log.Fatal("server init failed", "err", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Log.Info("shutting down...")
		srv.Shutdown()
		os.Exit(0)
	}()

	logger.Log.Info("🔭 scout server starting...")
	if err := srv.Start(); err != nil {
		logger.Log.Fatal("server failed", "err", err)
	}
}
