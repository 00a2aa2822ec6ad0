package routes

import (
	"localnews/internal/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterNewsRoutes mounts the public read endpoints and the mutating
// endpoints guarded by requireAuth. :key is an article id or, for the
// legacy routes, its slug.
func RegisterNewsRoutes(router *gin.Engine, newsController *controllers.NewsController, requireAuth gin.HandlerFunc) {
	newsRoutes := router.Group("/news")
	{
		newsRoutes.GET("", newsController.ListNews)
		newsRoutes.GET("/search", newsController.SearchNews)
		newsRoutes.GET("/count", newsController.CountNews)
		newsRoutes.GET("/slug/:slug", newsController.GetNewsBySlug)
		newsRoutes.GET("/:key", newsController.GetNewsByID)

		newsRoutes.POST("", requireAuth, newsController.CreateNews)
		newsRoutes.PUT("/:key", requireAuth, newsController.UpdateNews)
		newsRoutes.DELETE("/:key", requireAuth, newsController.DeleteNews)
	}
}
