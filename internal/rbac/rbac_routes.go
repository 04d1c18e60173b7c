package rbac

import (
	"github.com/gin-gonic/gin"

	"hris-onboarding/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("/check", handler.Check)
	}
}
