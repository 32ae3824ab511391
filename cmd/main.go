package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/mariusjb/holidaze-gateway/internal/api/handlers/create_booking"
	createVenueHandler "github.com/mariusjb/holidaze-gateway/internal/api/handlers/create_venue"
	deleteBookingHandler "github.com/mariusjb/holidaze-gateway/internal/api/handlers/delete_booking"
	deleteVenueHandler "github.com/mariusjb/holidaze-gateway/internal/api/handlers/delete_venue"
	editVenueHandler "github.com/mariusjb/holidaze-gateway/internal/api/handlers/edit_venue"
	getManagerBookingsHandler "github.com/mariusjb/holidaze-gateway/internal/api/handlers/get_manager_bookings"
	getProfileHandler "github.com/mariusjb/holidaze-gateway/internal/api/handlers/get_profile"
	getUserBookingsHandler "github.com/mariusjb/holidaze-gateway/internal/api/handlers/get_user_bookings"
	getVenueHandler "github.com/mariusjb/holidaze-gateway/internal/api/handlers/get_venue"
	listVenuesHandler "github.com/mariusjb/holidaze-gateway/internal/api/handlers/list_venues"
	loginHandler "github.com/mariusjb/holidaze-gateway/internal/api/handlers/login"
	logoutHandler "github.com/mariusjb/holidaze-gateway/internal/api/handlers/logout"
	registerHandler "github.com/mariusjb/holidaze-gateway/internal/api/handlers/register"
	searchVenuesHandler "github.com/mariusjb/holidaze-gateway/internal/api/handlers/search_venues"
	updateAvatarHandler "github.com/mariusjb/holidaze-gateway/internal/api/handlers/update_avatar"
	updateBookingHandler "github.com/mariusjb/holidaze-gateway/internal/api/handlers/update_booking"
	"github.com/mariusjb/holidaze-gateway/internal/api/middleware"
	"github.com/mariusjb/holidaze-gateway/internal/config"
	"github.com/mariusjb/holidaze-gateway/internal/infra/state"
	holidazeClient "github.com/mariusjb/holidaze-gateway/internal/integrations/holidaze"
	"github.com/mariusjb/holidaze-gateway/internal/search"
	authService "github.com/mariusjb/holidaze-gateway/internal/service/auth"
	bookingsService "github.com/mariusjb/holidaze-gateway/internal/service/bookings"
	profileService "github.com/mariusjb/holidaze-gateway/internal/service/profile"
	venuesService "github.com/mariusjb/holidaze-gateway/internal/service/venues"
	"github.com/mariusjb/holidaze-gateway/internal/session"
	bookStayUC "github.com/mariusjb/holidaze-gateway/internal/usecase/book_stay"
	"github.com/mariusjb/holidaze-gateway/pkg/logger"
	"github.com/mariusjb/holidaze-gateway/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting holidaze-gateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент удаленного API - единственный источник бизнес-данных
	apiClient := holidazeClient.NewClient(
		cfg.Holidaze.URL,
		time.Duration(cfg.Holidaze.Timeout)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		apiClient = apiClient.WithMetrics(metricsCollector)
	}
	log.Info("Holidaze API client initialized (url=%s timeout=%ds)", cfg.Holidaze.URL, cfg.Holidaze.Timeout)

	// Локальное состояние: кэш venue, коллекции профиля, сессии
	venueCache := state.NewVenueCache()
	bookingList := state.NewBookingList()
	managedVenues := state.NewManagedVenues()
	sessions := session.NewManager()

	// Координатор поиска с политикой last request wins
	searchCoordinator := search.NewCoordinator(apiClient, log)
	if cfg.Metrics.Enabled {
		searchCoordinator = searchCoordinator.WithMetrics(metricsCollector)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(apiClient, sessions, log)
	venuesSvc := venuesService.NewService(apiClient, searchCoordinator, venueCache, managedVenues, log)
	bookingsSvc := bookingsService.NewService(apiClient, bookingList, venueCache, &bookingsService.RealTimeProvider{}, log)
	profileSvc := profileService.NewService(apiClient, log)

	// Инициализируем use cases
	bookStayUseCase := bookStayUC.NewUseCase(apiClient, venueCache, bookingList, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	register := registerHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	listVenues := listVenuesHandler.NewHandler(venuesSvc, log)
	searchVenues := searchVenuesHandler.NewHandler(venuesSvc, log)
	getVenue := getVenueHandler.NewHandler(venuesSvc, log)
	createVenue := createVenueHandler.NewHandler(venuesSvc, log)
	editVenue := editVenueHandler.NewHandler(venuesSvc, log)
	deleteVenue := deleteVenueHandler.NewHandler(venuesSvc, log)
	createBooking := createBookingHandler.NewHandler(bookStayUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(bookingsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	getManagerBookings := getManagerBookingsHandler.NewHandler(bookingsSvc, log)
	getProfile := getProfileHandler.NewHandler(profileSvc, log)
	updateAvatar := updateAvatarHandler.NewHandler(profileSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Аутентификация
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)

	// Каталог venue
	api.HandleFunc("/venues", listVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/search", searchVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}", getVenue.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют сессию)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessions))

	// Выход
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Управление venue (для менеджеров) ---
	protected.HandleFunc("/venues", createVenue.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/venues/{venueId}", editVenue.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/venues/{venueId}", deleteVenue.Handle).Methods(http.MethodDelete)

	// --- Профиль ---
	protected.HandleFunc("/profiles/me", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/profiles/me/avatar", updateAvatar.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/profiles/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/profiles/me/venues/bookings", getManagerBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
