package main

import (
	"errors"
	"log"
	"net/http"

	"go.uber.org/zap"

	"talentpipe-backend/internal/server"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Logger failed to initialize: %s", err)
	}
	defer func() { _ = logger.Sync() }()

	srv := server.NewServer(logger)
	logger.Info("starting pipeline API", zap.String("addr", srv.Addr))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
