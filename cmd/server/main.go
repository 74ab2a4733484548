package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/tuctuc-telu/shuttle-tracker/internal/auth"
	"github.com/tuctuc-telu/shuttle-tracker/internal/config"
	"github.com/tuctuc-telu/shuttle-tracker/internal/db"
	"github.com/tuctuc-telu/shuttle-tracker/internal/handlers"
	"github.com/tuctuc-telu/shuttle-tracker/internal/middleware"
	"github.com/tuctuc-telu/shuttle-tracker/internal/store"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg := config.Load()

	st, err := store.Open(cfg.DBFile, cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("Failed to open document store")
	}
	if err := st.EnsureAdmins(store.DefaultAdmins); err != nil {
		log.WithError(err).Fatal("Failed to reconcile admin accounts")
	}

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to create auth service")
	}

	repo := db.NewDocumentRepo(st)

	authHandler := handlers.NewAuthHandler(authService, repo)
	scheduleHandler := handlers.NewScheduleHandler(repo)
	vehicleHandler := handlers.NewVehicleHandler(repo)
	tripHandler := handlers.NewTripHandler(repo)
	adminHandler := handlers.NewAdminHandler(repo)
	halteHandler := handlers.NewHalteHandler()

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()

	router := httprouter.New()
	router.HandlerFunc(http.MethodPost, "/api/auth/register", authHandler.Register)
	router.HandlerFunc(http.MethodPost, "/api/auth/login", authHandler.Login)
	router.HandlerFunc(http.MethodGet, "/api/schedules", scheduleHandler.List)
	router.HandlerFunc(http.MethodGet, "/api/vehicles", vehicleHandler.List)
	router.PUT("/api/vehicles/:id", vehicleHandler.UpdatePosition)
	router.HandlerFunc(http.MethodPost, "/api/trips", tripHandler.Create)
	router.GET("/api/trips/:userId", tripHandler.ListByUser)
	router.Handler(http.MethodGet, "/api/admin/stats",
		authMiddleware.RequireAdmin(http.HandlerFunc(adminHandler.Stats)))
	router.HandlerFunc(http.MethodGet, "/api/halte", halteHandler.List)
	router.HandlerFunc(http.MethodGet, "/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	router.NotFound = http.HandlerFunc(handlers.NotFound)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigin,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	handler := middleware.RequestLogger(
		rateLimiter.RateLimit(300, 60)(
			corsHandler.Handler(router)))

	log.WithField("port", cfg.Port).Info("TucTuc Tel-U backend listening")
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
