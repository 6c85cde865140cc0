package server

import (
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// lazyRoute builds its handler on first use. Concurrent first requests share
// one build; a failed build is retried by the next request.
type lazyRoute struct {
	name     string
	build    func() (http.Handler, error)
	after    time.Duration
	fallback http.Handler
	log      *zap.Logger

	handler atomic.Pointer[http.Handler]
	group   singleflight.Group
}

func newLazyRoute(name string, build func() (http.Handler, error), after time.Duration, fallback http.Handler, log *zap.Logger) *lazyRoute {
	return &lazyRoute{name: name, build: build, after: after, fallback: fallback, log: log}
}

func (l *lazyRoute) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h := l.handler.Load(); h != nil {
		(*h).ServeHTTP(w, r)
		return
	}

	ch := l.group.DoChan(l.name, l.load)

	// Only safe requests get the loading page; a form post waits so it is not lost.
	var timeout <-chan time.Time
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		timer := time.NewTimer(l.after)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case res := <-ch:
		if res.Err != nil {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		res.Val.(http.Handler).ServeHTTP(w, r)
	case <-timeout:
		w.Header().Set("Refresh", "1")
		w.Header().Set("Cache-Control", "no-store")
		l.fallback.ServeHTTP(w, r)
	case <-r.Context().Done():
	}
}

func (l *lazyRoute) load() (any, error) {
	if h := l.handler.Load(); h != nil {
		return *h, nil
	}
	start := time.Now()
	h, err := l.build()
	if err != nil {
		l.log.Error("failed to build route", zap.String("route", l.name), zap.Error(err))
		return nil, err
	}
	l.handler.Store(&h)
	l.log.Info("route ready", zap.String("route", l.name), zap.Duration("duration", time.Since(start)))
	return h, nil
}
