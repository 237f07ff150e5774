package reminder

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carebridge/eldercare-api/internal/handler"
	"github.com/carebridge/eldercare-api/internal/middleware"
	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/service/access"
	reminderService "github.com/carebridge/eldercare-api/internal/service/reminder"
	apperrors "github.com/carebridge/eldercare-api/pkg/errors"
)

type Handler struct {
	service *reminderService.Service
	access  *access.Service
}

func NewHandler(service *reminderService.Service, access *access.Service) *Handler {
	return &Handler{service: service, access: access}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.PUT("/reminders/:id", h.UpdateCompleted)
}

func (h *Handler) UpdateCompleted(c *gin.Context) {
	id, err := handler.ParseID(c, "id")
	if err != nil {
		handler.Error(c, err)
		return
	}

	var req model.UpdateCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.Validation("completed is required"))
		return
	}

	existing, err := h.service.GetReminder(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	accountID, ok := middleware.AccountID(c)
	if !ok {
		handler.Error(c, apperrors.Authorization("invalid token"))
		return
	}
	if err := h.access.Authorize(c.Request.Context(), accountID, existing.PatientID); err != nil {
		handler.Error(c, err)
		return
	}

	reminder, err := h.service.UpdateCompleted(c.Request.Context(), id, *req.Completed)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, reminder)
}
