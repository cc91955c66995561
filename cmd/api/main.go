package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"chitraleap/internal/http/handlers"
	"chitraleap/internal/http/httpapi"
	"chitraleap/internal/infra"
	"chitraleap/internal/providers/adcopy"
	"chitraleap/internal/providers/image"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// Text-generation provider. A missing key is reported here but never
	// stops the process; requests fail at the provider call instead.
	var copyGen adcopy.Generator
	switch cfg.TextProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			logger.Error().Msg("GEMINI_API_KEY not found in environment variables")
		}
		copyGen = adcopy.NewGeminiGenerator(adcopy.GeminiOptions{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
			Market:  cfg.AdMarket,
		})
	default:
		if cfg.OpenAIAPIKey == "" {
			logger.Error().Msg("OPENAI_API_KEY not found in environment variables")
		}
		copyGen = adcopy.NewOpenAIGenerator(adcopy.OpenAIOptions{
			APIKey:       cfg.OpenAIAPIKey,
			Model:        cfg.OpenAIModel,
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrg,
			Market:       cfg.AdMarket,
		})
	}

	imageGen := image.NewOpenAIGenerator(image.OpenAIOptions{
		APIKey:       cfg.OpenAIAPIKey,
		BaseURL:      cfg.OpenAIBaseURL,
		Organization: cfg.OpenAIOrg,
	})

	app := handlers.NewApp(logger, copyGen, imageGen, cfg.ServiceName)
	router := httpapi.NewRouter(app, logger, cfg.CORSAllowedOrigins)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
