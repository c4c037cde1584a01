package main

import (
	"path/filepath"

	"deposit_tracker/internal/api"
	"deposit_tracker/internal/config"
	"deposit_tracker/internal/domain"
	"deposit_tracker/internal/middleware"
	"deposit_tracker/internal/repo"
	"deposit_tracker/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Bind the JSON collections and initialize them on first run
	customerCol := store.NewCollection[domain.Customer](filepath.Join(cfg.DataDir, "customers.json"))
	depositCol := store.NewCollection[domain.Deposit](filepath.Join(cfg.DataDir, "deposits.json"))
	userCol := store.NewCollection[domain.User](filepath.Join(cfg.DataDir, "users.json"))
	for _, ensure := range []func() error{customerCol.EnsureFile, depositCol.EnsureFile, userCol.EnsureFile} {
		if err := ensure(); err != nil {
			logrus.Fatalf("failed to initialize data files: %v", err)
		}
	}

	customers := repo.NewCustomers(customerCol, depositCol)
	deposits := repo.NewDeposits(depositCol, customerCol)
	users := repo.NewUsers(userCol)

	// Seed the default administrator so a fresh install can log in
	if err := users.EnsureAdmin(); err != nil {
		logrus.Fatalf("failed to seed administrator: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default()

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Cookie sessions signed with the configured secret
	r.Use(sessions.Sessions("deposit_tracker", cookie.NewStore([]byte(cfg.SessionSecret))))

	r.LoadHTMLGlob(cfg.TemplateGlob)
	r.Static("/static", "static")

	// Auth routes
	r.GET("/login", api.LoginFormHandler())
	r.POST("/login", api.LoginHandler(users))
	r.GET("/logout", api.LogoutHandler())

	// Protected routes (session required)
	protected := r.Group("/", middleware.SessionAuth())
	protected.GET("/", api.DashboardHandler(customers))

	protected.GET("/customers", api.CustomerListHandler(customers))
	protected.GET("/add_customer", api.AddCustomerFormHandler())
	protected.POST("/add_customer", api.AddCustomerHandler(customers))
	protected.GET("/edit_customer/:id", api.EditCustomerFormHandler(customers))
	protected.POST("/edit_customer/:id", api.EditCustomerHandler(customers))
	protected.POST("/delete_customer/:id", api.DeleteCustomerHandler(customers))

	protected.GET("/deposits", api.DepositListHandler(deposits))
	protected.GET("/add_deposit", api.AddDepositFormHandler(customers))
	protected.POST("/add_deposit", api.AddDepositHandler(deposits))

	protected.GET("/export_excel", api.ExportDepositsHandler(deposits))
	protected.GET("/customer_report/:id", api.CustomerReportHandler(customers, deposits))

	protected.GET("/import_customers", api.ImportCustomersFormHandler())
	protected.POST("/import_customers", api.ImportCustomersHandler(customers))

	protected.GET("/settings", api.SettingsFormHandler(cfg.UploadDir))
	protected.POST("/settings", api.SettingsHandler(cfg.UploadDir))

	// User administration (admin only)
	admin := protected.Group("/", middleware.AdminOnly(users))
	admin.GET("/users", api.UserListHandler(users))
	admin.GET("/add_user", api.AddUserFormHandler())
	admin.POST("/add_user", api.AddUserHandler(users))
	admin.GET("/edit_user/:id", api.EditUserFormHandler(users))
	admin.POST("/edit_user/:id", api.EditUserHandler(users))
	admin.POST("/delete_user/:id", api.DeleteUserHandler(users))

	logrus.Info("Server running on " + cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
