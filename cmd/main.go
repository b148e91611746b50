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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/lumiere-studio/StudioBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/lumiere-studio/StudioBookingService/internal/api/handlers/create_booking"
	draftsHandler "github.com/lumiere-studio/StudioBookingService/internal/api/handlers/drafts"
	getAvailableSlotsHandler "github.com/lumiere-studio/StudioBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/lumiere-studio/StudioBookingService/internal/api/handlers/get_booking"
	getLocationHandler "github.com/lumiere-studio/StudioBookingService/internal/api/handlers/get_location"
	getLocationBookingsHandler "github.com/lumiere-studio/StudioBookingService/internal/api/handlers/get_location_bookings"
	getPaymentStatusHandler "github.com/lumiere-studio/StudioBookingService/internal/api/handlers/get_payment_status"
	getSettingsHandler "github.com/lumiere-studio/StudioBookingService/internal/api/handlers/get_settings"
	listLocationsHandler "github.com/lumiere-studio/StudioBookingService/internal/api/handlers/list_locations"
	listRentalItemsHandler "github.com/lumiere-studio/StudioBookingService/internal/api/handlers/list_rental_items"
	listServicesHandler "github.com/lumiere-studio/StudioBookingService/internal/api/handlers/list_services"
	paymentCallbackHandler "github.com/lumiere-studio/StudioBookingService/internal/api/handlers/payment_callback"
	quoteBookingHandler "github.com/lumiere-studio/StudioBookingService/internal/api/handlers/quote_booking"
	updateBookingStatusHandler "github.com/lumiere-studio/StudioBookingService/internal/api/handlers/update_booking_status"
	updateSettingsHandler "github.com/lumiere-studio/StudioBookingService/internal/api/handlers/update_settings"
	"github.com/lumiere-studio/StudioBookingService/internal/api/middleware"
	"github.com/lumiere-studio/StudioBookingService/internal/config"
	"github.com/lumiere-studio/StudioBookingService/internal/infra/cache"
	bookingRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/booking"
	catalogRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/catalog"
	paymentRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/payment"
	settingsRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/settings"
	"github.com/lumiere-studio/StudioBookingService/internal/integrations/liqpay"
	bookingsService "github.com/lumiere-studio/StudioBookingService/internal/service/bookings"
	catalogService "github.com/lumiere-studio/StudioBookingService/internal/service/catalog"
	settingsService "github.com/lumiere-studio/StudioBookingService/internal/service/settings"
	createBookingUC "github.com/lumiere-studio/StudioBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/lumiere-studio/StudioBookingService/internal/usecase/get_available_slots"
	processPaymentCallbackUC "github.com/lumiere-studio/StudioBookingService/internal/usecase/process_payment_callback"
	quoteBookingUC "github.com/lumiere-studio/StudioBookingService/internal/usecase/quote_booking"
	"github.com/lumiere-studio/StudioBookingService/pkg/dbmetrics"
	"github.com/lumiere-studio/StudioBookingService/pkg/logger"
	"github.com/lumiere-studio/StudioBookingService/pkg/metrics"
	"github.com/lumiere-studio/StudioBookingService/pkg/simpletxmanager"
	"github.com/lumiere-studio/StudioBookingService/pkg/txmanager"
)

// TxManager объединяет операции транзакций, нужные use case слою
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting StudioBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis: кэш каталога и черновики бронирований
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis is unavailable, cache misses will go to the database: %v", err)
	} else {
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	}
	cancelPing()

	catalogCache := cache.New(redisClient, time.Duration(cfg.Redis.CatalogTTL)*time.Second, metricsCollector)
	draftStore := cache.NewDraftStore(redisClient, time.Duration(cfg.Redis.DraftTTL)*time.Second)

	// Инициализируем платежный шлюз
	liqpayClient := liqpay.NewClient(liqpay.Config{
		PublicKey:   cfg.LiqPay.PublicKey,
		PrivateKey:  cfg.LiqPay.PrivateKey,
		CheckoutURL: cfg.LiqPay.CheckoutURL,
		ServerURL:   cfg.LiqPay.ServerURL,
		ResultURL:   cfg.LiqPay.ResultURL,
		Sandbox:     cfg.LiqPay.Sandbox,
	}, log)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		catalogRepository  *catalogRepo.Repository
		settingsRepository *settingsRepo.Repository
		paymentRepository  *paymentRepo.Repository
		txMgr              TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, paymentRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, catalogCache, log)
	settingsSvc := settingsService.NewService(settingsRepository, catalogCache, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		settingsSvc,
		log,
	)
	quoteBookingUseCase := quoteBookingUC.NewUseCase(catalogRepository, settingsSvc, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		paymentRepository,
		catalogRepository,
		settingsSvc,
		liqpayClient,
		txMgr,
		log,
	)
	processPaymentCallbackUseCase := processPaymentCallbackUC.NewUseCase(
		paymentRepository,
		bookingRepository,
		liqpayClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	listLocations := listLocationsHandler.NewHandler(catalogSvc, log)
	getLocation := getLocationHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listRentalItems := listRentalItemsHandler.NewHandler(catalogSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getPaymentStatus := getPaymentStatusHandler.NewHandler(bookingSvc, log)
	paymentCallback := paymentCallbackHandler.NewHandler(processPaymentCallbackUseCase, log)
	drafts := draftsHandler.NewHandler(draftStore, log)
	getLocationBookings := getLocationBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог
	api.HandleFunc("/locations", listLocations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations/{locationId}", getLocation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations/{locationId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rental-items", listRentalItems.Handle).Methods(http.MethodGet)

	// Настройки бронирования (публичная часть: цены, режим работы)
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// Чтение бронирований и платежей
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/payments/{paymentId}", getPaymentStatus.Handle).Methods(http.MethodGet)

	// Callback платежной системы (server-to-server)
	api.HandleFunc("/payments/callback", paymentCallback.Handle).Methods(http.MethodPost)

	// Черновики формы: чтение
	api.HandleFunc("/drafts/{draftId}", drafts.HandleGet).Methods(http.MethodGet)

	// ============================================================
	// PUBLIC WRITE ROUTES (с ограничением частоты запросов)
	// ============================================================

	writes := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, stopCh)
		writes.Use(rl.Handler)
		log.Info("Rate limiting enabled for public write routes (rps=%.1f, burst=%d)",
			cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	writes.HandleFunc("/bookings/quote", quoteBooking.Handle).Methods(http.MethodPost)
	writes.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	writes.HandleFunc("/drafts", drafts.HandleCreate).Methods(http.MethodPost)
	writes.HandleFunc("/drafts/{draftId}", drafts.HandleUpdate).Methods(http.MethodPut)
	writes.HandleFunc("/drafts/{draftId}", drafts.HandleDelete).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	admin.HandleFunc("/locations/{locationId}/bookings", getLocationBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

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

	// Останавливаем фоновые горутины метрик и rate limiter
	close(stopCh)

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
