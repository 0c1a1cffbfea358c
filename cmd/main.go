package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/medbooking/doctor-booking/internal/config"
	"github.com/medbooking/doctor-booking/internal/db"
	"github.com/medbooking/doctor-booking/internal/model"
	"github.com/medbooking/doctor-booking/internal/repository"
	"github.com/medbooking/doctor-booking/internal/server"
	"github.com/medbooking/doctor-booking/internal/service"
)

func main() {
	// 1. .env, если есть; иначе чистое окружение.
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// 2. Конфиг БД и HTTP из env.
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("load db config: %v", err)
	}
	httpCfg := config.LoadHTTPConfig()

	// 3. Подключаемся к БД через GORM.
	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}

	// 4. Миграции моделей.
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	// 5. Репозитории (реализации на GORM).
	doctorRepo := repository.NewGormDoctorRepository(gormDB)
	ruleRepo := repository.NewGormRecurrenceRuleRepository(gormDB)
	slotRepo := repository.NewGormSlotRepository(gormDB)
	bookingRepo := repository.NewGormBookingRepository(gormDB)

	// 6. Сервисы ядра.
	doctorSvc := service.NewDoctorService(doctorRepo)
	slotSvc := service.NewSlotService(logger, doctorRepo, ruleRepo, slotRepo)
	bookingSvc := service.NewBookingService(logger, doctorRepo, bookingRepo)

	// 7. REST-сервер.
	srv := server.New(logger, httpCfg, doctorSvc, slotSvc, bookingSvc)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", httpCfg.Port),
		Handler: srv.Router(),
	}

	logger.Info().Int("port", httpCfg.Port).Msg("http server listening")

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http serve: %v", err)
		}
	}()

	// 8. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("shutting down http server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(httpCfg.ShutdownTimeoutSec)*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}
