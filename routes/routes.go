package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itz-Mayank/Environmental-Sustainability/controllers"
	"github.com/itz-Mayank/Environmental-Sustainability/middlewares"
	"github.com/itz-Mayank/Environmental-Sustainability/services"
	"github.com/itz-Mayank/Environmental-Sustainability/storage"
)

func SetupRouter(store storage.Store, hub *services.RealtimeHub) *gin.Engine {
	snapshots := services.NewSnapshotService()

	authCtl := controllers.NewAuthController(services.NewUserService(store))
	alertCtl := controllers.NewAlertController(services.NewAlertService(store))
	envCtl := controllers.NewEnvironmentalController(snapshots)
	rtCtl := controllers.NewRealtimeController(hub)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/api/health", controllers.HealthCheck)

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.GET("/me", middlewares.AuthMiddleware(store), authCtl.Me)
	}

	// Public environmental readings
	env := r.Group("/api/environmental")
	{
		env.GET("/stream", middlewares.AuthMiddleware(store), rtCtl.Stream)
		env.GET("/:category", envCtl.GetSnapshot)
	}

	// Protected alert routes
	alerts := r.Group("/api/alerts")
	alerts.Use(middlewares.AuthMiddleware(store))
	{
		alerts.POST("", alertCtl.CreateAlert)
		alerts.GET("", alertCtl.ListAlerts)
	}

	return r
}
