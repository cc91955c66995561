package handlers

import (
	"encoding/json"
	"net/http"

	"chitraleap/internal/providers/adcopy"
	"chitraleap/internal/providers/image"

	"github.com/rs/zerolog"
)

// App bundles the dependencies every handler needs. Providers are injected so
// tests can substitute stubs.
type App struct {
	Log     zerolog.Logger
	Copy    adcopy.Generator
	Images  image.Generator
	Service string
}

func NewApp(logger zerolog.Logger, copyGen adcopy.Generator, imageGen image.Generator, service string) *App {
	return &App{Log: logger, Copy: copyGen, Images: imageGen, Service: service}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"error": msg})
}

// NotFound answers unmatched routes.
func (a *App) NotFound(w http.ResponseWriter, r *http.Request) {
	a.error(w, http.StatusNotFound, "Endpoint not found")
}

// MethodNotAllowed answers known routes hit with the wrong verb.
func (a *App) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	a.error(w, http.StatusMethodNotAllowed, "Method not allowed")
}
