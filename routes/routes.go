package routes

import (
	"log"

	"github.com/dev-callsign-hawk/diet-wise/config"
	"github.com/dev-callsign-hawk/diet-wise/controllers"
	"github.com/dev-callsign-hawk/diet-wise/middlewares"
	"github.com/dev-callsign-hawk/diet-wise/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable: %v", err)
	}
	services.InitAlertDeps(config.DB, hub, push)

	planSvc := services.NewPlanService(services.PlanConfigFromEnv())
	goalSvc := services.NewGoalService(planSvc)

	gc := controllers.NewGoalController(goalSvc)
	pc := controllers.NewPlanController(goalSvc)
	rc := controllers.NewRealtimeController(hub)
	dc := controllers.NewDeviceController(push)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("", controllers.DeleteAccount)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
	}

	goals := r.Group("/goals")
	goals.Use(middlewares.AuthMiddleware())
	{
		goals.POST("", gc.CreateGoal)
		goals.GET("/active", gc.GetActiveGoal)
		goals.DELETE("/:id", gc.DeleteGoal)
		goals.GET("/:id/plan", pc.GetPlan)
		goals.POST("/:id/plan/regenerate", pc.RegeneratePlan)
	}

	weights := r.Group("/weights")
	weights.Use(middlewares.AuthMiddleware())
	{
		weights.POST("", controllers.LogWeight)
		weights.GET("", controllers.GetWeightHistory)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/progress", controllers.GetProgress)
		protected.GET("/notifications", controllers.ListAlerts)
		protected.POST("/devices", dc.Register)
		protected.GET("/ws/alerts", rc.AlertsWS)
	}

	return r
}
