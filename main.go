package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/cron"
	"doctorsportal/database"
	bookingRepoPkg "doctorsportal/database/repository/booking"
	doctorRepoPkg "doctorsportal/database/repository/doctor"
	paymentRepoPkg "doctorsportal/database/repository/payment"
	treatmentRepoPkg "doctorsportal/database/repository/treatment"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/availability"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/notification"
	"doctorsportal/services/payment"
	"doctorsportal/services/tasks"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, err := database.Connect()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			logger.Sugar().Warnf("main: failed to disconnect from MongoDB: %v", err)
		}
	}()
	db := client.Database(config.AppConfig.DatabaseName)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	treatmentRepo := treatmentRepoPkg.NewMongoTreatmentRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo(db)
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo(db)

	// notification plumbing.
	sender := notification.NewSendGridSender(notification.SendGridConfig{
		APIKey:    config.AppConfig.SendGridAPIKey,
		FromEmail: config.AppConfig.SendGridFromEmail,
		FromName:  config.AppConfig.SendGridFromName,
	})
	var notifService notification.NotificationService
	if sender != nil {
		svc, err := notification.NewDefaultNotificationService(sender)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
		}
		notifService = svc
	} else {
		logger.Sugar().Warn("main: no SendGrid API key configured, confirmation emails disabled")
	}

	var dispatcher notification.Dispatcher
	if notifService != nil {
		asynqClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		})
		defer asynqClient.Close()

		dispatcher = &tasks.AsynqDispatcher{Client: asynqClient, Fallback: notifService}
		cron.InitEmailWorker(notifService)
	}

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Treatments: treatmentRepo,
		Bookings:   bookingRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:       bookingRepo,
		Treatments: treatmentRepo,
		Dispatcher: dispatcher,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	doctorService := &doctor.DefaultDoctorService{
		Repo: doctorRepo,
	}
	paymentService := &payment.DefaultPaymentService{
		Bookings:   bookingRepo,
		Payments:   paymentRepo,
		Treatments: treatmentRepo,
		Gateway:    payment.StripeGateway{},
		Dispatcher: dispatcher,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	userHandler := handlers.NewUserHandler(userService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AdminCheck: userService.IsAdmin,

		// Availability endpoints.
		GetAppointmentOptionsHandler: availabilityHandler.GetAppointmentOptionsHandler,
		GetSpecialtiesHandler:        availabilityHandler.GetSpecialtiesHandler,

		// Booking endpoints.
		CreateBookingHandler:      bookingHandler.CreateBookingHandler,
		GetBookingsByEmailHandler: bookingHandler.GetBookingsByEmailHandler,
		GetBookingByIDHandler:     bookingHandler.GetBookingByIDHandler,

		// Payment endpoints.
		RecordPaymentHandler:       paymentHandler.RecordPaymentHandler,
		CreatePaymentIntentHandler: paymentHandler.CreatePaymentIntentHandler,

		// User endpoints.
		RegisterUserHandler: userHandler.RegisterUserHandler,
		GetAllUsersHandler:  userHandler.GetAllUsersHandler,
		IssueTokenHandler:   userHandler.IssueTokenHandler,
		CheckAdminHandler:   userHandler.CheckAdminHandler,
		GrantAdminHandler:   userHandler.GrantAdminHandler,

		// Doctor endpoints.
		AddDoctorHandler:    doctorHandler.AddDoctorHandler,
		GetDoctorsHandler:   doctorHandler.GetDoctorsHandler,
		DeleteDoctorHandler: doctorHandler.DeleteDoctorHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
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
