package routes

import (
	"github.com/gofiber/fiber/v2"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/internal/api/handlers"
	"Bar-Management-SaaS/internal/middleware"
	"Bar-Management-SaaS/pkg/jwt"
)

type Config struct {
	App           *fiber.App
	AuthHandler   handlers.AuthHandler
	AdminHandler  handlers.AdminHandler
	StoreHandler  handlers.StoreHandler
	ReportHandler handlers.ReportHandler
	ScanHandler   handlers.ScanHandler
	InviteHandler handlers.InviteHandler
	GoalHandler   handlers.GoalHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Admin()
	c.Stores()
	c.Reports()
	c.Scans()
	c.Invites()
	c.Goals()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/admin/login", c.AuthHandler.AdminLogin)
		auth.Post("/login", c.AuthHandler.EmployeeLogin)
		auth.Post("/register", c.AuthHandler.EmployeeRegister)
		auth.Post("/verify-store-code", c.AuthHandler.VerifyStoreCode)
		auth.Post("/invite", c.InviteHandler.UseInvite)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.AuthHandler.Me)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RequireAdmin(),
	)
	{
		admin.Get("/dashboard", c.AdminHandler.GetDashboard)
		admin.Post("/organizations", c.AdminHandler.CreateOrganization)
		admin.Get("/organizations", c.AdminHandler.GetOrganizations)
		admin.Get("/organizations/:id", c.AdminHandler.GetOrganization)
		admin.Post("/organizations/setup", c.AdminHandler.SetupOrganization)
		admin.Put("/organizations/:id/subscription", c.AdminHandler.UpdateSubscription)
		admin.Post("/organizations/checkout", c.AdminHandler.CreateCheckout)
		admin.Post("/stores", c.AdminHandler.CreateStore)
		admin.Patch("/stores/:id/toggle", c.AdminHandler.ToggleStore)
		admin.Get("/stores", c.StoreHandler.GetStores)
		admin.Get("/audit-logs", c.AdminHandler.GetAuditLogs)
	}
}

func (c *Config) Stores() {
	stores := c.App.Group("/api/v1/stores", c.Middleware.AuthMiddleware(c.JWTService))
	{
		stores.Get("/:id", c.StoreHandler.GetStore)
		stores.Get("/:id/dashboard", c.StoreHandler.GetStoreDashboard)
		stores.Get("/:id/employees", c.StoreHandler.GetStoreEmployees)
		stores.Post("/:id/employees",
			c.Middleware.RequireRole(domain.RoleManager),
			c.StoreHandler.CreateEmployee,
		)
	}
}

func (c *Config) Reports() {
	reports := c.App.Group("/api/v1/reports", c.Middleware.AuthMiddleware(c.JWTService))
	{
		reports.Post("", c.ReportHandler.CreateDailyReport)
		reports.Get("", c.ReportHandler.GetDailyReports)
		reports.Get("/:id", c.ReportHandler.GetDailyReport)
		reports.Patch("/:id/approve",
			c.Middleware.RequireRole(domain.RoleManager),
			c.ReportHandler.ApproveDailyReport,
		)
	}
}

func (c *Config) Scans() {
	scans := c.App.Group("/api/v1/scans", c.Middleware.AuthMiddleware(c.JWTService))
	{
		scans.Post("", c.ScanHandler.ScanReceipt)
		scans.Post("/confirm", c.ScanHandler.ConfirmScan)
		scans.Get("", c.ScanHandler.GetScanHistory)
		scans.Delete("/:id", c.ScanHandler.DeleteScan)
	}
}

func (c *Config) Invites() {
	invites := c.App.Group("/api/v1/invites",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RequireRole(domain.RoleManager),
	)
	{
		invites.Post("", c.InviteHandler.CreateInvite)
		invites.Get("", c.InviteHandler.GetInvites)
	}
}

func (c *Config) Goals() {
	goals := c.App.Group("/api/v1/goals", c.Middleware.AuthMiddleware(c.JWTService))
	{
		goals.Post("", c.GoalHandler.SetGoal)
		goals.Get("", c.GoalHandler.GetGoal)
		goals.Get("/history", c.GoalHandler.GetGoalHistory)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
