package handlers

import (
	"net/http"
)

// Home returns the static service descriptor. It never touches a provider.
func (a *App) Home(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"service": a.Service,
		"status":  "running",
		"endpoints": map[string]string{
			"/generate-ad": "POST - Generate ad copy and images",
			"/health":      "GET - Health check",
		},
	})
}

// Health reports liveness regardless of upstream provider availability.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "healthy", "service": a.Service})
}
