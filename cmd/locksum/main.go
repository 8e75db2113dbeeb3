package main

import (
	"os"

	"github.com/Thatonecodeguy/locksum-contractor-books/internal/api"
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/config"
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/constants"
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/logging"
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	checkEnvVars([]string{constants.EnvSessionSecret})

	// Load configuration file (required). Path may be provided via
	// LOCKSUM_CONFIG env var or defaults to ./locksum_config.json in the
	// current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./locksum_config.json"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid locksum configuration", err, logging.Fields{"config_path": configPath, "hint": "create a locksum_config.json with optional keys: server.address, database.path, token_ttl_minutes, cors_origins, invoice_number_prefix"})
	}

	// Allow the DB path to be configured via LOCKSUM_DB. Default comes
	// from the config file.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	handler := api.NewHandler(repo, cfg.InvoiceNumberPrefix)
	authHandler := api.NewAuthHandler(repo, cfg.TokenTTL)

	router := gin.Default()
	router.Use(api.CORS(cfg.CORSOrigins))

	router.GET(constants.RouteStatusPage, api.StatusPage)

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.GET(constants.RouteHealth, api.Health(repo))
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteAuthPing, authHandler.Ping)
		apiRoutes.POST(constants.RouteAuthRegister, authHandler.Register)
		apiRoutes.POST(constants.RouteAuthLogin, authHandler.Login)
		apiRoutes.POST(constants.RouteAuthGoogleCallBack, authHandler.GoogleOAuthCallback)

		// Authenticated endpoints
		protected := apiRoutes.Group("")
		protected.Use(api.AuthRequired(repo))

		protected.GET(constants.RouteAuthMe, authHandler.Me)

		protected.GET(constants.RouteCustomers, handler.ListCustomers)
		protected.POST(constants.RouteCustomers, handler.CreateCustomer)
		protected.GET(constants.RouteCustomerByID, handler.GetCustomer)
		protected.PUT(constants.RouteCustomerByID, handler.UpdateCustomer)
		protected.DELETE(constants.RouteCustomerByID, handler.DeleteCustomer)

		protected.GET(constants.RouteItems, handler.ListItems)
		protected.POST(constants.RouteItems, handler.CreateItem)
		protected.GET(constants.RouteItemByID, handler.GetItem)
		protected.PUT(constants.RouteItemByID, handler.UpdateItem)
		protected.DELETE(constants.RouteItemByID, handler.DeleteItem)

		protected.GET(constants.RouteInvoices, handler.ListInvoices)
		protected.POST(constants.RouteInvoices, handler.CreateInvoice)
		protected.GET(constants.RouteInvoiceByID, handler.GetInvoice)
		protected.PUT(constants.RouteInvoiceByID, handler.UpdateInvoice)
		protected.DELETE(constants.RouteInvoiceByID, handler.DeleteInvoice)
		protected.POST(constants.RouteInvoiceLines, handler.AddInvoiceLine)
		protected.DELETE(constants.RouteInvoiceLineByID, handler.DeleteInvoiceLine)
		protected.POST(constants.RouteInvoiceSetStatus, handler.SetInvoiceStatus)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}

func checkEnvVars(vars []string) {
	for _, v := range vars {
		if os.Getenv(v) == "" {
			logging.Fatal("Required environment variable not set", nil, logging.Fields{"var": v})
		}
	}
}
