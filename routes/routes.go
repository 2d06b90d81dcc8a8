package routes

import (
	"storepos-backend/config"
	"storepos-backend/controllers"
	"storepos-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter(ledger *services.Ledger, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger(log))

	r.SetFuncMap(controllers.TemplateFuncs())
	r.LoadHTMLGlob("templates/*.tmpl")

	inventory := controllers.NewInventoryController(ledger)
	customer := controllers.NewCustomerController(ledger)
	sale := controllers.NewSaleController(ledger)
	dashboard := controllers.NewDashboardController(ledger)
	profile := controllers.NewStoreProfileController(ledger)
	views := controllers.NewViewsController(ledger)

	api := r.Group("/api")
	{
		// Inventory routes
		items := api.Group("/inventory")
		{
			items.GET("", inventory.GetItems)
			items.POST("", inventory.CreateItem)
			items.DELETE("/:id", inventory.DeleteItem)
		}

		// Customer routes
		customers := api.Group("/customers")
		{
			customers.GET("", customer.GetCustomers)
			customers.POST("", customer.CreateCustomer)
			customers.DELETE("/:id", customer.DeleteCustomer)
		}

		// Sale routes: append-only, no update or delete
		sales := api.Group("/sales")
		{
			sales.GET("", sale.GetSales)
			sales.POST("", sale.CreateSale)
			sales.GET("/options", sale.GetSaleOptions)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboard.GetDashboardOverview)

		// Store profile routes
		api.GET("/store", profile.GetStoreProfile)
		api.PUT("/store", profile.UpdateStoreName)
	}

	// HTML views: full page plus per-section fragments
	r.GET("/", views.Index)
	v := r.Group("/views")
	{
		v.GET("/dashboard", views.Dashboard)
		v.GET("/inventory", views.Inventory)
		v.GET("/sales", views.Sales)
		v.GET("/customers", views.Customers)
	}

	return r
}
