package claim

import (
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"ReferEarn/internal/handlers"
	"ReferEarn/internal/view"
)

// Params are read from the query string and shown as-is.
type Params struct {
	Referrer string
	Course   string
}

// ParseParams takes the first value of each parameter. Missing ones are empty.
func ParseParams(q url.Values) Params {
	return Params{
		Referrer: q.Get("referrer"),
		Course:   q.Get("course"),
	}
}

// New serves the claim page. claimed=1 renders the confirmation directly for
// visitors without JavaScript.
func New(log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		p := ParseParams(q)
		props := view.ClaimProps{
			Referrer: p.Referrer,
			Course:   p.Course,
			Claimed:  q.Get("claimed") == "1",
		}
		handlers.Render(w, r, log, view.ClaimPage(props), http.StatusOK)
	})
}
