package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"ReferEarn/internal/backend"
	"ReferEarn/internal/config"
	"ReferEarn/internal/db"
	"ReferEarn/internal/store"
)

// Services are the long-lived dependencies shared by the handlers.
type Services struct {
	Backend  *backend.Client
	Sessions store.Store
	Journal  db.Journal

	closers []func() error
}

// New wires the backend client and picks the session store and journal from cfg.
// Redis is used when REDIS_ADDR is set, otherwise sessions stay in memory.
// The journal is only enabled when DATABASE_URL is set.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*Services, error) {
	s := &Services{
		Backend: backend.NewClient(cfg.BackendURL, cfg.BackendTimeout),
		Journal: db.Nop{},
	}

	if cfg.BackendURL == "" {
		log.Warn("BACKEND_URL is not set; referrals will be posted to a relative path and fail",
			zap.String("url", s.Backend.URL()))
	}

	if cfg.RedisAddr != "" {
		r, err := store.Dial(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)
		if err != nil {
			return nil, err
		}
		s.Sessions = r
		s.closers = append(s.closers, r.Close)
		log.Info("using redis session store", zap.String("addr", cfg.RedisAddr))
	} else {
		s.Sessions = store.NewMemory(cfg.SessionTTL)
		log.Info("using in-memory session store")
	}

	if cfg.DatabaseURL != "" {
		pg, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.Journal = pg
		s.closers = append(s.closers, func() error { pg.Close(); return nil })
		log.Info("submission journal enabled")
	}

	return s, nil
}

// Close releases connections in reverse order of creation.
func (s *Services) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
