package routes

import (
	"localnews/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterHealthRoutes(router *gin.Engine, healthController *controllers.HealthController) {
	router.GET("/", healthController.Health)
	router.GET("/health", healthController.Health)
}
