package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/simplyrugby/club-server/cmd/server"
	"github.com/simplyrugby/club-server/internal/adapters/config"
	"github.com/simplyrugby/club-server/pkg/logger"

	_ "time/tzdata"
)

func main() {
	cfg := config.Get()

	s, err := server.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	go func() {
		if err := s.Start(); err != nil {
			logger.Log.Errorf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Log.Errorf("shutdown: %v", err)
	}
}
