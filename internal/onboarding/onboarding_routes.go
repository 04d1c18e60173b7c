package onboarding

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hris-onboarding/internal/domain"
	"hris-onboarding/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	g := r.Group("/onboarding")
	g.Use(middleware.AuthMiddleware())
	g.Use(middleware.ContextLogger(logger))
	{
		g.GET("/employees",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, domain.ResourceOnboarding, domain.ActionRead),
			handler.List,
		)

		g.GET("/employees/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceOnboarding, domain.ActionRead),
			handler.Export,
		)

		g.GET("/employees/:employeeId",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, domain.ResourceOnboarding, domain.ActionRead),
			handler.GetStatus,
		)

		g.GET("/employees/:employeeId/hard-gates",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, domain.ResourceOnboarding, domain.ActionRead),
			handler.CheckHardGates,
		)

		g.POST("/employees/:employeeId/start",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceOnboarding, domain.ActionManage),
			handler.Start,
		)

		g.PUT("/employees/:employeeId/file-complete",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceOnboarding, domain.ActionManage),
			handler.MarkFileComplete,
		)

		g.POST("/employees/:employeeId/activate",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceOnboarding, domain.ActionActivate),
			handler.Activate,
		)

		g.POST("/employees/:employeeId/refresh-documents",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceOnboarding, domain.ActionManage),
			handler.RefreshDocuments,
		)

		g.PUT("/documents/:documentId/verify",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceOnboarding, domain.ActionVerify),
			handler.VerifyDocument,
		)

		g.PUT("/documents/:documentId/reject",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceOnboarding, domain.ActionVerify),
			handler.RejectDocument,
		)

		g.POST("/bulk/assign-documents",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceOnboarding, domain.ActionManage),
			middleware.Idempotency(rdb),
			handler.BulkAssign,
		)

		g.POST("/bulk/start",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceOnboarding, domain.ActionManage),
			middleware.Idempotency(rdb),
			handler.BulkStart,
		)
	}

	me := r.Group("/me/onboarding")
	me.Use(middleware.AuthMiddleware())
	me.Use(middleware.ContextLogger(logger))
	{
		me.GET("",
			middleware.RateLimitByUser(5, 20),
			handler.GetMine,
		)
		me.POST("/documents/:documentId/upload",
			middleware.RateLimitByUser(1, 5),
			handler.UploadMine,
		)
		me.POST("/documents/:documentId/sign",
			middleware.RateLimitByUser(1, 5),
			handler.SignMine,
		)
		me.POST("/documents/:documentId/acknowledge",
			middleware.RateLimitByUser(1, 5),
			handler.AcknowledgeMine,
		)
	}
}
