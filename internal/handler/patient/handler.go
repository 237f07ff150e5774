package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/carebridge/eldercare-api/internal/handler"
	"github.com/carebridge/eldercare-api/internal/middleware"
	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/service/access"
	activityService "github.com/carebridge/eldercare-api/internal/service/activity"
	appointmentService "github.com/carebridge/eldercare-api/internal/service/appointment"
	medicationService "github.com/carebridge/eldercare-api/internal/service/medication"
	recordService "github.com/carebridge/eldercare-api/internal/service/record"
	reminderService "github.com/carebridge/eldercare-api/internal/service/reminder"
	apperrors "github.com/carebridge/eldercare-api/pkg/errors"
)

// Handler serves the per-patient collection reads. Every route follows the
// same shape: normalize the patient id, check the principal may access that
// patient, run one query, return the raw array.
type Handler struct {
	access       *access.Service
	records      *recordService.Service
	medications  *medicationService.Service
	appointments *appointmentService.Service
	activities   *activityService.Service
	reminders    *reminderService.Service
}

func NewHandler(
	access *access.Service,
	records *recordService.Service,
	medications *medicationService.Service,
	appointments *appointmentService.Service,
	activities *activityService.Service,
	reminders *reminderService.Service,
) *Handler {
	return &Handler{
		access:       access,
		records:      records,
		medications:  medications,
		appointments: appointments,
		activities:   activities,
		reminders:    reminders,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.GET("/:patientId/medications", h.ListMedications)
		patients.GET("/:patientId/appointments", h.ListAppointments)
		patients.GET("/:patientId/vitals", h.ListVitals)
		patients.GET("/:patientId/emergency-contacts", h.ListEmergencyContacts)
		patients.GET("/:patientId/checkins", h.ListCheckIns)
		patients.GET("/:patientId/messages", h.ListMessages)
		patients.GET("/:patientId/documents", h.ListDocuments)
		patients.GET("/:patientId/activities", h.ListActivities)
		patients.GET("/:patientId/reminders", h.ListReminders)
		patients.GET("/:patientId/invoices", h.ListInvoices)
		patients.POST("/:patientId/access", h.GrantAccess)
	}
}

// GrantAccess shares a patient with another account. Only a principal who
// already has access to the patient may extend it.
func (h *Handler) GrantAccess(c *gin.Context) {
	patientID, ok := h.scope(c)
	if !ok {
		return
	}

	var req model.GrantAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, handler.BindingError(err))
		return
	}

	granteeID, err := uuid.Parse(req.AccountID)
	if err != nil {
		handler.Error(c, apperrors.Validation("invalid accountId"))
		return
	}

	if err := h.access.Grant(c.Request.Context(), granteeID, patientID); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"granted": true})
}

// scope resolves the patient id and enforces the principal's access to it.
func (h *Handler) scope(c *gin.Context) (uuid.UUID, bool) {
	patientID, err := handler.ParseID(c, "patientId")
	if err != nil {
		handler.Error(c, err)
		return uuid.Nil, false
	}

	accountID, ok := middleware.AccountID(c)
	if !ok {
		handler.Error(c, apperrors.Authorization("invalid token"))
		return uuid.Nil, false
	}

	if err := h.access.Authorize(c.Request.Context(), accountID, patientID); err != nil {
		handler.Error(c, err)
		return uuid.Nil, false
	}
	return patientID, true
}

func (h *Handler) ListMedications(c *gin.Context) {
	patientID, ok := h.scope(c)
	if !ok {
		return
	}
	meds, err := h.medications.ListMedications(c.Request.Context(), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	handler.List(c, meds)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	patientID, ok := h.scope(c)
	if !ok {
		return
	}
	appts, err := h.appointments.ListAppointments(c.Request.Context(), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	handler.List(c, appts)
}

func (h *Handler) ListVitals(c *gin.Context) {
	patientID, ok := h.scope(c)
	if !ok {
		return
	}
	vitals, err := h.records.ListVitals(c.Request.Context(), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	handler.List(c, vitals)
}

func (h *Handler) ListEmergencyContacts(c *gin.Context) {
	patientID, ok := h.scope(c)
	if !ok {
		return
	}
	contacts, err := h.records.ListEmergencyContacts(c.Request.Context(), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	handler.List(c, contacts)
}

func (h *Handler) ListCheckIns(c *gin.Context) {
	patientID, ok := h.scope(c)
	if !ok {
		return
	}
	checkins, err := h.records.ListCheckIns(c.Request.Context(), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	handler.List(c, checkins)
}

func (h *Handler) ListMessages(c *gin.Context) {
	patientID, ok := h.scope(c)
	if !ok {
		return
	}
	messages, err := h.records.ListMessages(c.Request.Context(), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	handler.List(c, messages)
}

func (h *Handler) ListDocuments(c *gin.Context) {
	patientID, ok := h.scope(c)
	if !ok {
		return
	}
	docs, err := h.records.ListDocuments(c.Request.Context(), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	handler.List(c, docs)
}

func (h *Handler) ListActivities(c *gin.Context) {
	patientID, ok := h.scope(c)
	if !ok {
		return
	}
	activities, err := h.activities.ListActivities(c.Request.Context(), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	handler.List(c, activities)
}

func (h *Handler) ListReminders(c *gin.Context) {
	patientID, ok := h.scope(c)
	if !ok {
		return
	}
	reminders, err := h.reminders.ListReminders(c.Request.Context(), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	handler.List(c, reminders)
}

func (h *Handler) ListInvoices(c *gin.Context) {
	patientID, ok := h.scope(c)
	if !ok {
		return
	}
	invoices, err := h.records.ListInvoices(c.Request.Context(), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	handler.List(c, invoices)
}
