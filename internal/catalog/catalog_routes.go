package catalog

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hris-onboarding/internal/domain"
	"hris-onboarding/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	g := r.Group("/onboarding")
	g.Use(middleware.AuthMiddleware())
	g.Use(middleware.ContextLogger(logger))
	{
		g.GET("/catalog",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, domain.ResourceOnboardingCatalog, domain.ActionRead),
			handler.GetCatalog,
		)

		g.GET("/workflows",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceOnboardingCatalog, domain.ActionRead),
			handler.ListWorkflows,
		)

		g.GET("/workflows/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceOnboardingCatalog, domain.ActionRead),
			handler.GetWorkflow,
		)

		g.POST("/workflows",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceOnboardingCatalog, domain.ActionManage),
			handler.CreateWorkflow,
		)

		g.PUT("/workflows/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceOnboardingCatalog, domain.ActionManage),
			handler.UpdateWorkflow,
		)
	}
}
