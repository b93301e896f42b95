// File: barberbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberbook/config"
	"barberbook/cron"
	"barberbook/database"
	ledgerRepo "barberbook/database/repository/ledger"
	"barberbook/handlers"
	"barberbook/middleware"
	"barberbook/routes"
	"barberbook/services/booking"
	"barberbook/services/staff"
	"barberbook/services/tasks"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	ledger := ledgerRepo.NewMongoLedgerRepo()
	if err := ledgerRepo.EnsureLedgerIndexes(ledger); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure ledger indexes: %v", err)
	}

	// services.
	engine := &booking.DefaultSchedulingEngine{Repo: ledger}

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := booking.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	defer reminderClient.Close()
	reminderScheduler := &tasks.AsynqReminderScheduler{Client: reminderClient}

	bookingService := &booking.DefaultBookingFlowService{
		Store:         sessionStore,
		Engine:        engine,
		Reminders:     reminderScheduler,
		ClosedWeekday: time.Weekday(config.AppConfig.ClosedWeekday),
	}
	staffService := &staff.DefaultStaffService{Ledger: ledger}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	staffHandler := handlers.NewStaffHandler(staffService, logger)

	hb := &handlers.HandlerBundle{
		ListServicesHandler: bookingHandler.ListServices,
		ListStaffHandler:    bookingHandler.ListStaff,

		InitiateSession:    bookingHandler.InitiateSession,
		GetSession:         bookingHandler.GetSession,
		SelectService:      bookingHandler.SelectService,
		SelectStaff:        bookingHandler.SelectStaff,
		SelectDateTime:     bookingHandler.SelectDateTime,
		SetContactDetails:  bookingHandler.SetContactDetails,
		AdvanceSession:     bookingHandler.AdvanceSession,
		BackSession:        bookingHandler.BackSession,
		GetSlotGrid:        bookingHandler.GetSlotGrid,
		ConfirmBooking:     bookingHandler.ConfirmBooking,
		AcknowledgeOutcome: bookingHandler.AcknowledgeOutcome,
		CancelSession:      bookingHandler.CancelSession,

		StaffLoginHandler:     staffHandler.Login,
		StaffDashboardHandler: staffHandler.Dashboard,
	}

	routes.RegisterRoutes(router, hb)

	// Background reminder worker.
	cron.InitReminderWorker()

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
