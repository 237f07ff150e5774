package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/carebridge/eldercare-api/internal/handler"
	"github.com/carebridge/eldercare-api/internal/middleware"
	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/service/access"
	appointmentService "github.com/carebridge/eldercare-api/internal/service/appointment"
	apperrors "github.com/carebridge/eldercare-api/pkg/errors"
)

type Handler struct {
	service *appointmentService.Service
	access  *access.Service
}

func NewHandler(service *appointmentService.Service, access *access.Service) *Handler {
	return &Handler{service: service, access: access}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.Create)
		appointments.PUT("/:id", h.Update)
		appointments.PATCH("/:id/cancel", h.Cancel)
		appointments.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, handler.BindingError(err))
		return
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		handler.Error(c, apperrors.Validation("invalid patient_id"))
		return
	}

	if !h.authorize(c, patientID) {
		return
	}

	appt, err := h.service.CreateAppointment(c.Request.Context(), patientID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.resolve(c)
	if !ok {
		return
	}

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, handler.BindingError(err))
		return
	}

	appt, err := h.service.UpdateAppointment(c.Request.Context(), id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := h.resolve(c)
	if !ok {
		return
	}

	appt, err := h.service.CancelAppointment(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.resolve(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), id); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// resolve parses the id, loads the appointment and checks the principal
// may access its patient. 404 for missing ids comes before 403 here since
// the record is needed to know which patient to authorize against.
func (h *Handler) resolve(c *gin.Context) (uuid.UUID, bool) {
	id, err := handler.ParseID(c, "id")
	if err != nil {
		handler.Error(c, err)
		return uuid.Nil, false
	}

	appt, err := h.service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return uuid.Nil, false
	}

	if !h.authorize(c, appt.PatientID) {
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) authorize(c *gin.Context, patientID uuid.UUID) bool {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		handler.Error(c, apperrors.Authorization("invalid token"))
		return false
	}
	if err := h.access.Authorize(c.Request.Context(), accountID, patientID); err != nil {
		handler.Error(c, err)
		return false
	}
	return true
}
