package main

import (
	"database/sql"
	"net/http"
	"time"

	"smarak/internal/api"
	"smarak/internal/auth"
	"smarak/internal/config"
	"smarak/internal/db"
	"smarak/internal/logging"
	"smarak/internal/metrics"
	"smarak/internal/monuments"
	"smarak/internal/repository"
	"smarak/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL not set")
	}
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET not set")
	}

	database, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := database.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.RunMigrations(database); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	userRepo := repository.NewUserRepository(database)
	slotRepo := repository.NewSlotRepository(database)
	bookingRepo := repository.NewBookingRepository(database)
	parkingRepo := repository.NewParkingRepository(database)

	if err := parkingRepo.SeedSlots(monuments.ParkingMonuments); err != nil {
		log.Fatal().Err(err).Msg("parking slot seed failed")
	}

	sender := service.NewSenderService(log)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, log)
	bookingSvc := service.NewBookingService(bookingRepo, slotRepo, userRepo, sender, log)
	parkingSvc := service.NewParkingService(parkingRepo, sender, log)
	jobSvc := service.NewJobService(parkingRepo,
		time.Duration(cfg.PendingReservationTTLHours)*time.Hour, log)

	if err := authSvc.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}

	metrics.Register()

	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		jobSvc.PurgeStalePendingReservations()
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to schedule cleanup job")
	}
	c.Start()
	defer c.Stop()

	authHandler := api.NewAuthHandler(authSvc)
	monumentHandler := api.NewMonumentHandler()
	bookingHandler := api.NewBookingHandler(bookingSvc)
	parkingHandler := api.NewParkingHandler(parkingSvc)
	adminHandler := api.NewAdminHandler(bookingSvc, parkingSvc)
	mw := auth.NewMiddleware(cfg.JWTSecret)

	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	}).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	// Public endpoints
	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/monuments", monumentHandler.List).Methods("GET")
	r.HandleFunc("/api/monuments/{name}", monumentHandler.Get).Methods("GET")
	r.HandleFunc("/api/slots", bookingHandler.Availability).Methods("GET")
	r.HandleFunc("/api/bookings/quote", bookingHandler.Quote).Methods("POST")
	r.HandleFunc("/api/scan/{id}", bookingHandler.Scan).Methods("GET")
	r.HandleFunc("/api/parking/slots", parkingHandler.Slots).Methods("GET")
	r.HandleFunc("/api/parking/quote", parkingHandler.Quote).Methods("POST")

	// Authenticated endpoints
	user := r.PathPrefix("/api").Subrouter()
	user.Use(mw.RequireUser)
	user.HandleFunc("/bookings", bookingHandler.Create).Methods("POST")
	user.HandleFunc("/bookings", bookingHandler.List).Methods("GET")
	user.HandleFunc("/bookings/{id}", bookingHandler.Get).Methods("GET")
	user.HandleFunc("/parking/reservations", parkingHandler.Reserve).Methods("POST")
	user.HandleFunc("/parking/reservations", parkingHandler.List).Methods("GET")
	user.HandleFunc("/parking/reservations/{id}", parkingHandler.Get).Methods("GET")
	user.HandleFunc("/parking/reservations/{id}/payment", parkingHandler.Pay).Methods("POST")

	// Admin endpoints
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(mw.RequireAdmin)
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/reservations", adminHandler.ListReservations).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, cors(r)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
