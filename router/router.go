package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ratemybandeco/backend/config"
	"github.com/ratemybandeco/backend/controllers"
	"github.com/ratemybandeco/backend/middlewares"
	"github.com/ratemybandeco/backend/services"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, mailer services.Mailer, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	controllers.RegisterValidators()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	stats := services.NewStatsService(db)

	authCtrl := controllers.NewAuthController(db, mailer, cfg.BaseURL)
	menuCtrl := controllers.NewMenuController(db, stats)
	reviewCtrl := controllers.NewReviewController(db)
	reportCtrl := controllers.NewReportController(db)
	adminCtrl := controllers.NewAdminController(db, stats)
	restaurantCtrl := controllers.NewRestaurantController(db, stats)
	profileCtrl := controllers.NewProfileController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", authCtrl.Register)
		public.POST("/login", authCtrl.Login)
	}

	r.GET("/confirm-email/:token", authCtrl.ConfirmEmail)
	r.GET("/restaurants/:restaurant_id/menu", menuCtrl.GetCurrentMenu)
	r.GET("/api/restaurants", restaurantCtrl.ListRestaurants)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/logout", authCtrl.Logout)
		auth.POST("/restaurants/:restaurant_id/menus/:menu_id/reviews", reviewCtrl.SubmitReview)
		auth.POST("/reviews/:review_id/reports", reportCtrl.CreateReport)

		student := auth.Group("/")
		student.Use(middlewares.StudentOnly())
		{
			student.GET("/home", restaurantCtrl.Home)
			student.GET("/profile", profileCtrl.GetProfile)
			student.PATCH("/profile", profileCtrl.UpdateProfile)
		}

		admin := auth.Group("/admin")
		admin.Use(middlewares.AdminOnly())
		{
			admin.GET("/panel", adminCtrl.GetPanel)
			admin.GET("/reports", reportCtrl.ListPendingReports)
			admin.POST("/reports/:report_id/moderate", reportCtrl.ModerateReport)
			admin.GET("/restaurants/:restaurant_id/dashboard", adminCtrl.GetRestaurantDashboard)
			admin.POST("/restaurants/:restaurant_id/menus", menuCtrl.CreateMenu)
		}
	}

	return r
}
