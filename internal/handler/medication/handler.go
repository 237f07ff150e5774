package medication

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carebridge/eldercare-api/internal/handler"
	"github.com/carebridge/eldercare-api/internal/middleware"
	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/service/access"
	medicationService "github.com/carebridge/eldercare-api/internal/service/medication"
	apperrors "github.com/carebridge/eldercare-api/pkg/errors"
)

type Handler struct {
	service *medicationService.Service
	access  *access.Service
}

func NewHandler(service *medicationService.Service, access *access.Service) *Handler {
	return &Handler{service: service, access: access}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/medications/:id/log", h.LogTaken)
}

// LogTaken records a dose against the medication's patient. The body is
// optional; an empty one logs the dose as taken now.
func (h *Handler) LogTaken(c *gin.Context) {
	id, err := handler.ParseID(c, "id")
	if err != nil {
		handler.Error(c, err)
		return
	}

	var req model.LogMedicationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			handler.Error(c, handler.BindingError(err))
			return
		}
	}

	med, err := h.service.GetMedication(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	accountID, ok := middleware.AccountID(c)
	if !ok {
		handler.Error(c, apperrors.Authorization("invalid token"))
		return
	}
	if err := h.access.Authorize(c.Request.Context(), accountID, med.PatientID); err != nil {
		handler.Error(c, err)
		return
	}

	log, err := h.service.LogTaken(c.Request.Context(), id, &req, &accountID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}
