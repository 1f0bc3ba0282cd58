package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newday-backend/config"
	"newday-backend/models"
	"newday-backend/routes"
	"newday-backend/services"
	"newday-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := config.OpenStore(cfg)
	if err != nil {
		logger.Fatal("open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer st.Close()

	app := services.NewApp(context.Background(), st, logger, services.Options{
		Business: models.Business{
			Name:     cfg.BusinessName,
			Phone:    cfg.BusinessPhone,
			Email:    cfg.BusinessEmail,
			TaxLabel: cfg.TaxLabel,
			TaxRate:  cfg.TaxRate,
		},
		Slots: services.SlotConfig{
			StartHour:   cfg.SlotStartHour,
			EndHour:     cfg.SlotEndHour,
			StepMinutes: cfg.SlotStepMinutes,
		},
	})

	var reminders *services.ReminderService
	if cfg.TwilioAccountSID != "" {
		sender := services.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
		reminders = services.NewReminderService(app, sender, logger)
		if err := reminders.Start(cfg.ReminderCron); err != nil {
			logger.Fatal("start reminders", zap.Error(err))
		}
		defer reminders.Stop()
	} else {
		logger.Info("TWILIO_ACCOUNT_SID not set, SMS reminders disabled")
	}

	r := routes.SetupRouter(app, reminders, cfg, logger)
	printRoutes(r, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server stopped gracefully")
}

func printRoutes(r *gin.Engine, logger *zap.Logger) {
	for _, route := range r.Routes() {
		logger.Debug("route", zap.String("method", route.Method), zap.String("path", route.Path))
	}
}
