package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"beautystudio/internal/config"
	"beautystudio/internal/database"
	"beautystudio/internal/integrations/calendar"
	"beautystudio/internal/middleware"
	"beautystudio/internal/modules/admin"
	"beautystudio/internal/modules/availability"
	"beautystudio/internal/modules/booking"
	"beautystudio/internal/modules/catalog"
	"beautystudio/internal/modules/manage"
	"beautystudio/internal/modules/payment"
	"beautystudio/internal/notification"
	jwtsvc "beautystudio/internal/pkg/jwt"
	"beautystudio/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	serviceRepo := repository.NewServiceRepository(db)

	calClient := calendar.New(cfg.CalendarBaseURL, cfg.CalendarAPIKey, cfg.CalendarTimeout)
	notifier := notification.NewLogNotifier()
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	availabilityService := availability.NewService(scheduleRepo, bookingRepo, calClient)
	availabilityHandler := availability.NewHandler(availabilityService)

	catalogService := catalog.NewService(serviceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, serviceRepo, scheduleRepo, availabilityService)
	bookingHandler := booking.NewHandler(bookingService)

	// Scan order matters: shop orders, course orders, booking deposits.
	paymentService := payment.NewService([]payment.Reconcilable{
		payment.NewShopOrderTarget(orderRepo, notifier, log.Printf),
		payment.NewCourseOrderTarget(orderRepo, notifier, log.Printf),
		payment.NewBookingTarget(bookingRepo, notifier, log.Printf),
	}, log.Printf)
	paymentHandler := payment.NewHandler(paymentService)

	manageService := manage.NewService(bookingRepo, serviceRepo, availabilityService, notifier)
	manageHandler := manage.NewHandler(manageService)

	adminService := admin.NewService(scheduleRepo)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		availabilityHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
		paymentHandler.RegisterRoutes(v1)
		manageHandler.RegisterRoutes(v1)

		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.AdminAuth(j))
		{
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
