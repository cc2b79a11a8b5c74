package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/holidaze/holidaze-api/internal/config"
	"github.com/holidaze/holidaze-api/internal/domain/auth"
	"github.com/holidaze/holidaze-api/internal/domain/availability"
	"github.com/holidaze/holidaze-api/internal/domain/booking"
	"github.com/holidaze/holidaze-api/internal/domain/profile"
	"github.com/holidaze/holidaze-api/internal/domain/search"
	"github.com/holidaze/holidaze-api/internal/domain/venue"
	"github.com/holidaze/holidaze-api/internal/middleware"
	"github.com/holidaze/holidaze-api/internal/pkg/database"
	"github.com/holidaze/holidaze-api/internal/pkg/jwt"
	"github.com/holidaze/holidaze-api/internal/pkg/noroff"
	"github.com/holidaze/holidaze-api/internal/pkg/response"
	"github.com/holidaze/holidaze-api/internal/pkg/session"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Holidaze API")

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret)
	sessionStore := session.NewRedisStore(redis)

	noroffClient := noroff.NewClient(
		cfg.NoroffBaseURL,
		cfg.NoroffAPIKey,
		time.Duration(cfg.NoroffTimeoutSeconds)*time.Second,
		"holidaze-api/1.0",
	)

	// ---------- Services ----------
	venueCache := venue.NewRedisCache(redis, cfg.VenueCacheTTL, cfg.VenueDetailCacheTTL)
	venueService := venue.NewService(noroffClient, venueCache)
	authService := auth.NewService(noroffClient, sessionStore, jwtService, cfg.SessionTTL, cfg.SessionRememberTTL)
	bookingService := booking.NewService(noroffClient, venueService)
	profileService := profile.NewService(noroffClient)

	searchStore := search.NewStore(cfg.SearchSessionTTL)
	go searchStore.Run()
	defer searchStore.Close()

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	venueHandler := venue.NewHandler(venueService)
	availabilityHandler := availability.NewHandler(venueService)
	bookingHandler := booking.NewHandler(bookingService)
	profileHandler := profile.NewHandler(profileService)
	searchHandler := search.NewHandler(searchStore, venueService, noroffClient, search.Config{
		Debounce: cfg.SearchDebounce,
		Timeout:  cfg.SearchTimeout,
	}, cfg.AllowedOrigins)

	authMiddleware := middleware.Auth(jwtService, sessionStore)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes(authMiddleware))
		r.Mount("/venues", venueHandler.Routes(authMiddleware, availabilityHandler.GetMonth))
		r.Mount("/bookings", bookingHandler.Routes(authMiddleware))
		r.Mount("/profiles", profileHandler.Routes(authMiddleware))
		r.Mount("/search", searchHandler.Routes())
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
