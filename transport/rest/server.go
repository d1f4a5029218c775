package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - routes of the HTML view, the JSON API and the health check.
func NewRouter(h *Handlers) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/ping", h.Ping).Methods(http.MethodGet)

	router.HandleFunc("/", h.Index).Methods(http.MethodGet)
	router.HandleFunc("/play/{cell:[0-9]+}", h.PlayForm).Methods(http.MethodPost)
	router.HandleFunc("/jump/{move:[0-9]+}", h.JumpForm).Methods(http.MethodPost)
	router.HandleFunc("/restart", h.RestartForm).Methods(http.MethodPost)

	api := router.PathPrefix("/api/game").Subrouter()
	api.HandleFunc("", h.GetGame).Methods(http.MethodGet)
	api.HandleFunc("/play", h.Play).Methods(http.MethodPost)
	api.HandleFunc("/jump", h.Jump).Methods(http.MethodPost)
	api.HandleFunc("/restart", h.Restart).Methods(http.MethodPost)

	return router
}

// Start - serves until ctx is canceled.
func Start(ctx context.Context, logger *slog.Logger, port string, handler http.Handler) error {
	log := logger.With("component", "rest")

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
