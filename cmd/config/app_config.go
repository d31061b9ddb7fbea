package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"Bar-Management-SaaS/internal/api/handlers"
	"Bar-Management-SaaS/internal/api/routes"
	"Bar-Management-SaaS/internal/middleware"
	"Bar-Management-SaaS/internal/utils"
	"Bar-Management-SaaS/internal/utils/storage"
	"Bar-Management-SaaS/pkg/audit"
	"Bar-Management-SaaS/pkg/auth"
	"Bar-Management-SaaS/pkg/billing"
	"Bar-Management-SaaS/pkg/employee"
	"Bar-Management-SaaS/pkg/goal"
	"Bar-Management-SaaS/pkg/invite"
	"Bar-Management-SaaS/pkg/jwt"
	"Bar-Management-SaaS/pkg/organization"
	"Bar-Management-SaaS/pkg/report"
	"Bar-Management-SaaS/pkg/scan"
	"Bar-Management-SaaS/pkg/store"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Tokyo",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	recognizer := scan.NewVisionRecognizer()
	scanner := scan.NewScanner(recognizer, s3)

	// Repository
	authRepository := auth.NewAuthRepository(db)
	organizationRepository := organization.NewOrganizationRepository(db)
	storeRepository := store.NewStoreRepository(db)
	employeeRepository := employee.NewEmployeeRepository(db)
	inviteRepository := invite.NewInviteRepository(db)
	reportRepository := report.NewReportRepository(db)
	goalRepository := goal.NewGoalRepository(db)
	scanRepository := scan.NewScanRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	auditService := audit.NewAuditService(db)
	authService := auth.NewAuthService(authRepository, jwtService)
	organizationService := organization.NewOrganizationService(organizationRepository)
	reportService := report.NewReportService(reportRepository)
	storeService := store.NewStoreService(storeRepository, reportRepository)
	employeeService := employee.NewEmployeeService(employeeRepository)
	inviteService := invite.NewInviteService(inviteRepository, jwtService)
	goalService := goal.NewGoalService(goalRepository, reportRepository)
	scanService := scan.NewScanService(scanRepository, reportRepository, scanner)
	billingService := billing.NewBillingService(organizationRepository)

	// Handler
	authHandler := handlers.NewAuthHandler(authService, auditService, validator)
	adminHandler := handlers.NewAdminHandler(organizationService, storeService, billingService, auditService, validator)
	storeHandler := handlers.NewStoreHandler(storeService, employeeService, validator)
	reportHandler := handlers.NewReportHandler(reportService, validator)
	scanHandler := handlers.NewScanHandler(scanService, authService, validator)
	inviteHandler := handlers.NewInviteHandler(inviteService, validator)
	goalHandler := handlers.NewGoalHandler(goalService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		AuthHandler:   authHandler,
		AdminHandler:  adminHandler,
		StoreHandler:  storeHandler,
		ReportHandler: reportHandler,
		ScanHandler:   scanHandler,
		InviteHandler: inviteHandler,
		GoalHandler:   goalHandler,
		Middleware:    middlewares,
		JWTService:    jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
