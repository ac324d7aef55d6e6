package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/buscart/buscart-backend/internal/config"
	"github.com/buscart/buscart-backend/internal/db"
	httpHandlers "github.com/buscart/buscart-backend/internal/http/handlers"
	httpRouter "github.com/buscart/buscart-backend/internal/http/router"
	"github.com/buscart/buscart-backend/internal/logger"
	"github.com/buscart/buscart-backend/internal/repository"
	"github.com/buscart/buscart-backend/internal/service"
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
	if cfg.Env == "development" {
		logger.Init("debug")
		logger.SetTextFormatter()
	} else {
		logger.Init("info")
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

	// Репозитории.
	hiringRepo := repository.NewHiringRepository(dbConn)
	reviewRepo := repository.NewReviewRepository(dbConn)
	artistRepo := repository.NewArtistRepository(dbConn)
	venueRepo := repository.NewVenueRepository(dbConn)
	categoryRepo := repository.NewCategoryRepository(dbConn)

	// Сервисы.
	hiringService := service.NewHiringService(hiringRepo)
	reviewService := service.NewReviewService(reviewRepo)
	catalogService := service.NewCatalogService(artistRepo, venueRepo, categoryRepo)

	// HTTP хэндлеры.
	healthHandler := httpHandlers.NewHealthHandler(dbConn)
	hiringHandler := httpHandlers.NewHiringHandler(hiringService)
	reviewHandler := httpHandlers.NewReviewHandler(reviewService)
	catalogHandler := httpHandlers.NewCatalogHandler(catalogService)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, healthHandler, hiringHandler, reviewHandler, catalogHandler)

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

	logger.Log.Infof("buscart backend запущен на порту %s", cfg.HTTPPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: ошибка http сервера: %v", err)
	}
}

// safeClose закрывает подключение к базе, логируя ошибку.
func safeClose(conn *sqlx.DB) {
	if err := conn.Close(); err != nil {
		log.Printf("main: ошибка закрытия подключения к базе: %v", err)
	}
}
