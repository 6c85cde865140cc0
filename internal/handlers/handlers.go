package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"ReferEarn/internal/middleware"
	"ReferEarn/internal/view"
)

// Render writes page with the given status through templ.
func Render(w http.ResponseWriter, r *http.Request, log *zap.Logger, page g.Node, status int) {
	templ.Handler(view.Component(page),
		templ.WithStatus(status),
		templ.WithContentType("text/html; charset=utf-8"),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			log.Error("failed to render page",
				zap.String("path", r.URL.Path),
				zap.String("request_id", middleware.RequestIDFrom(r.Context())),
				zap.Error(err),
			)
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}
