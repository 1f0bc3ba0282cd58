package routes

import (
	"time"

	"newday-backend/config"
	"newday-backend/controllers"
	"newday-backend/services"
	"newday-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter wires every handler. reminders may be nil when SMS is disabled.
func SetupRouter(app *services.App, reminders *services.ReminderService, cfg config.Config, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))

	r.Use(config.PerformanceLogger(logger))
	r.Use(utils.NewRateLimiter(cfg.MaxRequestsPerMin).Middleware())

	customerController := controllers.NewCustomerController(app)
	jobController := controllers.NewJobController(app)
	ticketController := controllers.NewTicketController(app)
	calendarController := controllers.NewCalendarController(app)
	chemicalController := controllers.NewChemicalController(app)
	exportController := controllers.NewExportController(app)
	dashboardController := controllers.NewDashboardController(app)
	reminderController := controllers.NewReminderController(reminders)

	api := r.Group("/api")
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("", customerController.GetCustomers)
			customers.GET("/search", customerController.SearchCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
		}

		// Job routes
		jobs := api.Group("/jobs")
		{
			jobs.POST("", jobController.CreateJob)
			jobs.GET("", jobController.GetJobs)
			jobs.GET("/:id", jobController.GetJob)
			jobs.PUT("/:id", jobController.UpdateJob)
			jobs.DELETE("/:id", jobController.DeleteJob)
			jobs.GET("/:id/receipt", jobController.GetReceipt)
		}

		api.POST("/tickets", ticketController.SaveTicket)

		// Calendar routes
		calendar := api.Group("/calendar")
		{
			calendar.GET("", calendarController.GetCalendar)
			calendar.GET("/upcoming", calendarController.GetUpcoming)
		}

		// Chemical library
		chemicals := api.Group("/chemicals")
		{
			chemicals.GET("", chemicalController.GetChemicals)
			chemicals.POST("", chemicalController.CreateChemical)
			chemicals.DELETE("/:id", chemicalController.DeleteChemical)
		}
		api.GET("/catalog", chemicalController.GetCatalog)

		// Backup and health
		api.GET("/export", exportController.Export)
		api.POST("/import", exportController.Import)
		api.GET("/status", exportController.Status)

		api.GET("/dashboard", dashboardController.GetDashboardOverview)
		api.POST("/reminders/run", reminderController.RunReminders)
	}

	return r
}
