package httpapi

import (
	"net/http"

	"chitraleap/internal/http/handlers"
	"chitraleap/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func NewRouter(app *handlers.App, logger zerolog.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(logger),
		middleware.Recover(logger),
		middleware.CORS(allowedOrigins),
	)

	r.Get("/", app.Home)
	r.Get("/health", app.Health)
	r.Post("/generate-ad", app.GenerateAd)

	r.NotFound(app.NotFound)
	r.MethodNotAllowed(app.MethodNotAllowed)

	return r
}
