package health

import (
	"encoding/json"
	"net/http"
)

type status struct {
	Status   string `json:"status"`
	Instance string `json:"instance"`
}

// New reports that the process is up.
func New(instance string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(status{Status: "ok", Instance: instance})
	})
}
