package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"go.uber.org/zap"

	"talentpipe-backend/internal/store"
)

// Server holds the entity store and logger shared by every route
type Server struct {
	Store *store.Store
	Log   *zap.Logger
}

// NewServer constructs the HTTP server with a freshly seeded store
func NewServer(log *zap.Logger) *http.Server {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 {
		port = 8080
	}

	s := &Server{
		Store: store.New(),
		Log:   log,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
