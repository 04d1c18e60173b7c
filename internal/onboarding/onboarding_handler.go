package onboarding

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hris-onboarding/internal/middleware"
	onboardingerrors "hris-onboarding/internal/onboarding/errors"
	"hris-onboarding/internal/shared/apperror"
	"hris-onboarding/internal/shared/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BulkService interface {
	BulkAssign(ctx context.Context, companyID string, req BulkAssignRequest) (BulkAssignResult, error)
	BulkStartOnboarding(ctx context.Context, companyID, actorID string, req BulkStartRequest) (BulkStartResult, error)
}

type Handler struct {
	service Service
	bulk    BulkService
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, bulk BulkService, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("onboarding.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.handler")
	}
	return &Handler{service: service, bulk: bulk, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("onboarding request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) List(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, total, err := h.service.ListOnboarding(c.Request.Context(), c.GetString("company_id"), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, filter.Page, filter.PageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) Export(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	filter.Page, filter.PageSize = 0, 0

	items, _, err := h.service.ListOnboarding(c.Request.Context(), c.GetString("company_id"), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	buf, err := BuildRosterWorkbook(items)
	if err != nil {
		h.logger.Error("build roster workbook failed", zap.Error(err))
		h.writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("onboarding-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *Handler) GetStatus(c *gin.Context) {
	resp, err := h.service.GetStatus(c.Request.Context(), c.GetString("company_id"), c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CheckHardGates(c *gin.Context) {
	resp, err := h.service.CheckHardGates(c.Request.Context(), c.GetString("company_id"), c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Start(c *gin.Context) {
	var req StartOnboardingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
	}

	resp, err := h.service.StartOnboarding(c.Request.Context(),
		c.GetString("company_id"), c.Param("employeeId"), req.WorkflowID, c.GetString("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) MarkFileComplete(c *gin.Context) {
	resp, err := h.service.MarkFileComplete(c.Request.Context(),
		c.GetString("company_id"), c.Param("employeeId"), c.GetString("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Activate(c *gin.Context) {
	resp, err := h.service.Activate(c.Request.Context(),
		c.GetString("company_id"), c.Param("employeeId"), c.GetString("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RefreshDocuments(c *gin.Context) {
	resp, err := h.service.RefreshDocuments(c.Request.Context(), c.GetString("company_id"), c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) VerifyDocument(c *gin.Context) {
	resp, err := h.service.VerifyDocument(c.Request.Context(),
		c.GetString("company_id"), c.Param("documentId"), c.GetString("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RejectDocument(c *gin.Context) {
	var req RejectDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.RejectDocument(c.Request.Context(),
		c.GetString("company_id"), c.Param("documentId"), c.GetString("employee_id"), req.Reason)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) BulkAssign(c *gin.Context) {
	var req BulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.CompleteIdempotent(c, h.rdb, nil)
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.bulk.BulkAssign(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		middleware.CompleteIdempotent(c, h.rdb, nil)
		h.writeServiceError(c, err)
		return
	}

	middleware.CompleteIdempotent(c, h.rdb, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) BulkStart(c *gin.Context) {
	var req BulkStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.CompleteIdempotent(c, h.rdb, nil)
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.bulk.BulkStartOnboarding(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), req)
	if err != nil {
		middleware.CompleteIdempotent(c, h.rdb, nil)
		h.writeServiceError(c, err)
		return
	}

	middleware.CompleteIdempotent(c, h.rdb, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

// GetMine is the self-service status view for the authenticated employee.
func (h *Handler) GetMine(c *gin.Context) {
	resp, err := h.service.GetMyOnboarding(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UploadMine(c *gin.Context) {
	var req UploadDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UploadDocument(c.Request.Context(),
		c.GetString("company_id"), c.GetString("employee_id"), c.Param("documentId"), req.FileReference)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SignMine(c *gin.Context) {
	resp, err := h.service.SignDocument(c.Request.Context(),
		c.GetString("company_id"), c.GetString("employee_id"), c.Param("documentId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AcknowledgeMine(c *gin.Context) {
	resp, err := h.service.AcknowledgeDocument(c.Request.Context(),
		c.GetString("company_id"), c.GetString("employee_id"), c.Param("documentId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func parseListFilter(c *gin.Context) (ListFilter, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filter := ListFilter{
		Status:   OverallStatus(strings.TrimSpace(c.Query("status"))),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := strings.TrimSpace(c.Query("phase")); raw != "" {
		phase, err := strconv.Atoi(raw)
		if err != nil {
			return ListFilter{}, onboardingerrors.ErrInvalidPhaseFilter
		}
		filter.Phase = phase
	}
	return filter, nil
}
