package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"ReferEarn/internal/config"
	"ReferEarn/internal/content"
	"ReferEarn/internal/handlers"
	"ReferEarn/internal/handlers/claim"
	"ReferEarn/internal/handlers/health"
	"ReferEarn/internal/handlers/landing"
	"ReferEarn/internal/middleware"
	"ReferEarn/internal/services"
	"ReferEarn/internal/view"
)

type Server struct {
	config   config.Config
	log      *zap.Logger
	services *services.Services
	http     *http.Server
}

func New(cfg config.Config, log *zap.Logger, svc *services.Services) *Server {
	s := &Server{
		config:   cfg,
		log:      log,
		services: svc,
	}
	s.http = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.createHandler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     zap.NewStdLog(log.Named("http")),
	}
	return s
}

func (s *Server) createHandler() http.Handler {
	mux := http.NewServeMux()

	fallback := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.Render(w, r, s.log, view.Fallback(), http.StatusOK)
	})

	home := newLazyRoute("landing", s.buildLanding, s.config.FallbackAfter, fallback, s.log)
	claimPage := newLazyRoute("claim", func() (http.Handler, error) {
		return claim.New(s.log), nil
	}, s.config.FallbackAfter, fallback, s.log)

	// Serve static files
	mux.Handle("GET /static/", http.StripPrefix("/static/",
		http.FileServer(http.Dir(s.config.StaticDir))))

	mux.Handle("GET /health", health.New(s.config.InstanceName))

	mux.Handle("GET /{$}", home)
	mux.Handle("POST "+view.SubmitPath, home)
	mux.Handle("POST "+view.ClosePath, home)
	mux.Handle("GET /claim", claimPage)

	return middleware.Chain(s.log, mux)
}

func (s *Server) buildLanding() (http.Handler, error) {
	return landing.New(landing.Deps{
		Log:        s.log,
		Sender:     s.services.Backend,
		Sessions:   s.services.Sessions,
		Journal:    s.services.Journal,
		Content:    content.Default(),
		CookieName: s.config.SessionCookie,
		CookieTTL:  s.config.SessionTTL,
	})
}

// Handler exposes the full middleware-wrapped route table.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe blocks until the server stops. After Shutdown it returns http.ErrServerClosed.
func (s *Server) ListenAndServe() error {
	s.log.Info("serving", zap.String("addr", s.http.Addr))
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
