package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_booking"
	createReviewHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_review"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_booking"
	getBusinessHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_business"
	getBusinessByHostHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_business_by_host"
	getBusinessBookingsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_business_bookings"
	getRatingsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_ratings"
	healthHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/health"
	listBusinessesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_businesses"
	listEmployeesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_employees"
	listReviewsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_reviews"
	listServicesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_services"
	manageEmployeesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/manage_employees"
	manageServicesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/manage_services"
	replyReviewHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/reply_review"
	updateBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_booking"
	updateBusinessHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_business"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/booking"
	businessRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/business"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	reviewRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/review"
	bookingsService "github.com/m04kA/SMC-SalonBooking/internal/service/bookings"
	businessesService "github.com/m04kA/SMC-SalonBooking/internal/service/businesses"
	catalogService "github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	reviewsService "github.com/m04kA/SMC-SalonBooking/internal/service/reviews"
	createBookingUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
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

	log.Info("Starting SMC-SalonBooking...")
	log.Info("Configuration loaded from config.toml (slot interval=%d min)", cfg.Slots.IntervalMinutes)

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Метрики: при выключенных метриках репозитории работают с *sql.DB напрямую
	var (
		executor      dbmetrics.DBExecutor = db
		httpObserver  middleware.HTTPObserver
		slotsObserver getAvailableSlotsUC.SlotsObserver
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		collector := metrics.New(cfg.Metrics.ServiceName)
		executor = dbmetrics.WrapWithDefault(db, collector, stopMetricsCh)
		httpObserver = collector
		slotsObserver = collector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(executor)
	businessRepository := businessRepo.NewRepository(executor)
	serviceRepository := catalogRepo.NewServiceRepository(executor)
	employeeRepository := catalogRepo.NewEmployeeRepository(executor)
	reviewRepository := reviewRepo.NewRepository(executor)

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	businessSvc := businessesService.NewService(businessRepository, reviewRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, employeeRepository, log)
	reviewSvc := reviewsService.NewService(reviewRepository, bookingRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		businessRepository,
		serviceRepository,
		employeeRepository,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		businessRepository,
		employeeRepository,
		bookingRepository,
		slotsObserver,
		cfg.Slots.IntervalMinutes,
		log,
	)

	// Handlers
	health := healthHandler.NewHandler(db, log)
	listBusinesses := listBusinessesHandler.NewHandler(businessSvc, log)
	getBusinessByHost := getBusinessByHostHandler.NewHandler(businessSvc, cfg.Site.RootDomain, log)
	getBusiness := getBusinessHandler.NewHandler(businessSvc, log)
	updateBusiness := updateBusinessHandler.NewHandler(businessSvc, log)
	publicServices := listServicesHandler.NewHandler(catalogSvc, true, log)
	adminServices := listServicesHandler.NewHandler(catalogSvc, false, log)
	publicEmployees := listEmployeesHandler.NewHandler(catalogSvc, true, log)
	adminEmployees := listEmployeesHandler.NewHandler(catalogSvc, false, log)
	manageServices := manageServicesHandler.NewHandler(catalogSvc, log)
	manageEmployees := manageEmployeesHandler.NewHandler(catalogSvc, log)
	listReviews := listReviewsHandler.NewHandler(reviewSvc, log)
	getRatings := getRatingsHandler.NewHandler(reviewSvc, log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	replyReview := replyReviewHandler.NewHandler(reviewSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBusinessBookings := getBusinessBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(httpObserver))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/api/health/check", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// ADMIN ROUTES (требуют X-User-ID header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)

	// --- Бронирования ---
	admin.HandleFunc("/businesses/{businessId}/bookings", getBusinessBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Профиль бизнеса ---
	admin.HandleFunc("/businesses/{businessId}", updateBusiness.Handle).Methods(http.MethodPut)

	// --- Услуги ---
	admin.HandleFunc("/businesses/{businessId}/services", adminServices.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/businesses/{businessId}/services", manageServices.Create).Methods(http.MethodPost)
	admin.HandleFunc("/businesses/{businessId}/services/{serviceId}", manageServices.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/businesses/{businessId}/services/{serviceId}", manageServices.Delete).Methods(http.MethodDelete)

	// --- Сотрудники ---
	admin.HandleFunc("/businesses/{businessId}/employees", adminEmployees.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/businesses/{businessId}/employees", manageEmployees.Create).Methods(http.MethodPost)
	admin.HandleFunc("/businesses/{businessId}/employees/{employeeId}", manageEmployees.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/businesses/{businessId}/employees/{employeeId}", manageEmployees.Delete).Methods(http.MethodDelete)

	// --- Отзывы ---
	admin.HandleFunc("/reviews/{reviewId}/reply", replyReview.Handle).Methods(http.MethodPost)

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, с ограничением частоты)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterOptions{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			Burst:             cfg.RateLimit.Burst,
			TrustForwardedFor: cfg.RateLimit.TrustForwardedFor,
			IdleTTL:           time.Duration(cfg.RateLimit.IdleTimeout) * time.Second,
		}, log)
		public.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %d req/min, burst=%d", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// --- Каталог ---
	public.HandleFunc("/businesses", listBusinesses.Handle).Methods(http.MethodGet)
	// by-host регистрируется до {slug}, иначе "by-host" будет принят за slug
	public.HandleFunc("/businesses/by-host", getBusinessByHost.Handle).Methods(http.MethodGet)
	public.HandleFunc("/businesses/{slug}", getBusiness.Handle).Methods(http.MethodGet)
	public.HandleFunc("/businesses/{businessId}/services", publicServices.Handle).Methods(http.MethodGet)
	public.HandleFunc("/businesses/{businessId}/employees", publicEmployees.Handle).Methods(http.MethodGet)
	public.HandleFunc("/businesses/{businessId}/reviews", listReviews.Handle).Methods(http.MethodGet)
	public.HandleFunc("/businesses/{businessId}/ratings", getRatings.Handle).Methods(http.MethodGet)

	// --- Слоты и бронирования ---
	public.HandleFunc("/businesses/{businessId}/employees/{employeeId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	public.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	public.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// --- Отзывы ---
	public.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
