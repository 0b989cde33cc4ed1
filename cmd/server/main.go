package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/ats-backend/internal/config"
	"github.com/ignatzorin/ats-backend/internal/db"
	httpHandlers "github.com/ignatzorin/ats-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/ats-backend/internal/http/router"
	"github.com/ignatzorin/ats-backend/internal/logger"
	"github.com/ignatzorin/ats-backend/internal/repository"
	"github.com/ignatzorin/ats-backend/internal/service"
	"github.com/ignatzorin/ats-backend/internal/ws"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
		logger.Init(logLevel)
		logger.SetTextFormatter()
	} else {
		logger.Init(logLevel)
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.RefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Репозитории.
	userRepo := repository.NewUserRepository(dbConn)
	companyRepo := repository.NewCompanyRepository(dbConn)
	jobOrderRepo := repository.NewJobOrderRepository(dbConn)
	candidateRepo := repository.NewCandidateRepository(dbConn)
	interviewRepo := repository.NewInterviewRepository(dbConn)
	offerRepo := repository.NewOfferRepository(dbConn)
	activityRepo := repository.NewActivityLogRepository(dbConn)
	notificationRepo := repository.NewNotificationRepository(dbConn)

	// Сервисы.
	authService := service.NewAuthService(userRepo, tokenManager)
	companyService := service.NewCompanyService(companyRepo, jobOrderRepo)
	jobOrderService := service.NewJobOrderService(jobOrderRepo, companyRepo, candidateRepo, userRepo)
	candidateService := service.NewCandidateService(candidateRepo, jobOrderRepo, activityRepo)
	interviewService := service.NewInterviewService(interviewRepo, candidateRepo, activityRepo)
	offerService := service.NewOfferService(offerRepo, candidateRepo, activityRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	statsService := service.NewStatsService(companyRepo, jobOrderRepo, candidateRepo)

	// Вебсокеты.
	hub := ws.NewHub(ctx)
	hub.SetNotificationSaver(ws.NewNotificationServiceAdapter(notificationService))
	go hub.Run()

	candidateService.SetNotifier(hub)

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService)
	userHandler := httpHandlers.NewUserHandler(authService)
	companyHandler := httpHandlers.NewCompanyHandler(companyService)
	jobOrderHandler := httpHandlers.NewJobOrderHandler(jobOrderService)
	candidateHandler := httpHandlers.NewCandidateHandler(candidateService)
	interviewHandler := httpHandlers.NewInterviewHandler(interviewService)
	offerHandler := httpHandlers.NewOfferHandler(offerService)
	statsHandler := httpHandlers.NewStatsHandler(statsService)
	notificationHandler := httpHandlers.NewNotificationHandler(notificationService)
	wsHandler := httpHandlers.NewWSHandler(hub, tokenManager)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)

	// Роутер.
	engine := httpRouter.SetupRouter(
		cfg,
		authHandler,
		userHandler,
		companyHandler,
		jobOrderHandler,
		candidateHandler,
		interviewHandler,
		offerHandler,
		statsHandler,
		notificationHandler,
		wsHandler,
		healthHandler,
		tokenManager,
	)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
