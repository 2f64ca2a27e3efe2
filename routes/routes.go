package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sproutly/cache"
	"sproutly/controllers"
	"sproutly/middlewares"
	"sproutly/services"
)

// SetupRouter wires every service and controller and returns the engine.
func SetupRouter(db, localDB *gorm.DB, log *zap.Logger) *gin.Engine {
	vision := services.NewVisionService()
	foods := services.NewFoodService(vision)
	meals := services.NewMealService(db, foods)
	water := services.NewWaterService(db)
	hub := services.NewProgressHub()
	push := services.NewPushService(db, log)
	localStore := services.NewLocalStatsStore(localDB)
	remoteStore := services.NewRemoteStatsStore(db, localStore, log)
	progress := services.NewProgressService(remoteStore, localStore, meals, water, hub, push, log)
	rec := services.NewRecService()

	authCtrl := controllers.NewAuthController()
	userCtrl := controllers.NewUserController(log)
	programCtrl := controllers.NewProgramController(rec)
	mealCtrl := controllers.NewMealController(meals, foods, progress, log)
	foodCtrl := controllers.NewFoodController(foods)
	progressCtrl := controllers.NewProgressController(progress)
	waterCtrl := controllers.NewWaterController(water, progress, log)
	deviceCtrl := controllers.NewDeviceController(push)
	realtimeCtrl := controllers.NewRealtimeController(hub, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestMetrics(log))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/guest", authCtrl.GuestSession)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		user := api.Group("/user")
		{
			user.GET("/profile", userCtrl.GetProfile)
			user.PUT("/metrics", userCtrl.UpdateMetrics)
			user.PUT("/goals", userCtrl.UpdateGoals)
			user.POST("/weekly-summary", userCtrl.SendWeeklySummary(progress))
		}

		programs := api.Group("/programs")
		{
			// The catalog is immutable, cache the full listing.
			programs.GET("", cache.CacheGET(10*time.Minute), programCtrl.List)
			programs.GET("/recommendations", programCtrl.Recommendations)
			programs.GET("/selected", programCtrl.Selected)
			programs.POST("/select", programCtrl.Select)
		}

		mealsGroup := api.Group("/meals")
		{
			mealsGroup.POST("", mealCtrl.AddMeal)
			mealsGroup.GET("", mealCtrl.ListMeals)
			mealsGroup.GET("/:id", mealCtrl.GetMeal)
			mealsGroup.PUT("/:id", mealCtrl.UpdateMeal)
			mealsGroup.DELETE("/:id", mealCtrl.DeleteMeal)
			mealsGroup.POST("/photo", mealCtrl.LogMealPhoto)
		}

		food := api.Group("/food")
		{
			food.GET("/search", foodCtrl.Search)
			food.POST("/recognize", foodCtrl.Recognize)
		}

		api.POST("/water", waterCtrl.UpdateWater)

		prog := api.Group("/progress")
		{
			prog.POST("/refresh", progressCtrl.Refresh)
			prog.GET("", progressCtrl.Get)
			prog.GET("/weekly", progressCtrl.Weekly)
			prog.GET("/monthly", progressCtrl.Monthly)
		}

		devices := api.Group("/devices")
		{
			devices.POST("", deviceCtrl.Register)
			devices.PUT("/notifications", deviceCtrl.ToggleNotifications)
		}

		api.GET("/ws/progress", realtimeCtrl.ProgressWS)
	}

	return r
}
