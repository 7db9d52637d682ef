package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/palmrow/storefront-backend/internal/app"
	"github.com/palmrow/storefront-backend/internal/config"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()

	var log *zap.Logger
	if cfg.Env == "prod" {
		log, _ = zap.NewProduction()
	} else {
		log, _ = zap.NewDevelopment()
	}
	defer log.Sync()

	application := app.NewApp(log, *cfg)

	go func() {
		application.MustRun()
	}()

	log.Info("starting server", zap.String("addr", cfg.HTTPServer.Address()))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", zap.Error(err))
	}

	log.Info("server stopped")
}
