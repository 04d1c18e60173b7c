package rbac

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hris-onboarding/internal/domain"
	"hris-onboarding/internal/shared/apperror"
	"hris-onboarding/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Check answers whether the caller may perform ?action= on ?resource=.
// The UI uses it to decide which onboarding buttons to show.
func (h *Handler) Check(c *gin.Context) {
	var req domain.EnforceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	req.EmployeeID = c.GetString("employee_id")
	req.CompanyID = c.GetString("company_id")

	allowed, err := h.service.Enforce(c.Request.Context(), req)
	if err != nil {
		zap.L().Named("rbac.handler").Error("rbac check failed", zap.Error(err))
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{
		Resource: req.Resource,
		Action:   req.Action,
		Allowed:  allowed,
	}, nil)
}
