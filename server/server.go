package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/adrianliechti/voicedesk/config"
	"github.com/adrianliechti/voicedesk/pkg/auth"
	"github.com/adrianliechti/voicedesk/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config
	http.Handler
}

func New(cfg *config.Config) (*Server, error) {
	handler, err := api.New(cfg.Pipeline, cfg.Speaker)

	if err != nil {
		return nil, err
	}

	mux := chi.NewMux()

	s := &Server{
		Config:  cfg,
		Handler: otelhttp.NewHandler(mux, "voicedesk"),
	}

	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(middleware.Recoverer)

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.Route("/api", func(r chi.Router) {
		r.Use(authorize(cfg.Authorizers))

		handler.Attach(r)
	})

	return s, nil
}

// ListenAndServe serves until ctx is canceled and then drains in-flight
// requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Address,
		Handler: s,

		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		slog.Info("server listening", "address", s.Address)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err

	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// authorize admits a request when any authorizer accepts it. Without
// authorizers every request is admitted.
func authorize(authorizers []auth.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(authorizers) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			var result error

			for _, a := range authorizers {
				ctx, err := a.Authenticate(r.Context(), r)

				if err == nil {
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}

				result = errors.Join(result, err)
			}

			slog.WarnContext(r.Context(), "unauthorized request", "path", r.URL.Path, "error", result)

			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		})
	}
}
