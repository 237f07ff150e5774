package patient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge/eldercare-api/internal/middleware"
	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/service/access"
	activityService "github.com/carebridge/eldercare-api/internal/service/activity"
	appointmentService "github.com/carebridge/eldercare-api/internal/service/appointment"
	medicationService "github.com/carebridge/eldercare-api/internal/service/medication"
	recordService "github.com/carebridge/eldercare-api/internal/service/record"
	reminderService "github.com/carebridge/eldercare-api/internal/service/reminder"
)

type stubGrantRepo struct {
	patients map[uuid.UUID][]uuid.UUID
}

func (s *stubGrantRepo) ListPatientIDs(_ context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	return s.patients[accountID], nil
}

func (s *stubGrantRepo) Grant(_ context.Context, accountID, patientID uuid.UUID) error {
	s.patients[accountID] = append(s.patients[accountID], patientID)
	return nil
}

type stubVitalRepo struct {
	vitals []*model.Vital
}

func (s *stubVitalRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit int) ([]*model.Vital, error) {
	var out []*model.Vital
	for _, v := range s.vitals {
		if v.PatientID == patientID && len(out) < limit {
			out = append(out, v)
		}
	}
	return out, nil
}

type stubMedicationRepo struct {
	medications []*model.Medication
}

func (s *stubMedicationRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*model.Medication, error) {
	var out []*model.Medication
	for _, m := range s.medications {
		if m.PatientID == patientID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubMedicationRepo) Get(_ context.Context, id uuid.UUID) (*model.Medication, error) {
	for _, m := range s.medications {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (s *stubMedicationRepo) CreateLog(_ context.Context, _ *model.MedicationLog) error {
	return nil
}

type emptyContactRepo struct{}

func (emptyContactRepo) ListByPatient(_ context.Context, _ uuid.UUID) ([]*model.EmergencyContact, error) {
	return nil, nil
}

type emptyCheckInRepo struct{}

func (emptyCheckInRepo) ListByPatient(_ context.Context, _ uuid.UUID, _ int) ([]*model.CheckIn, error) {
	return nil, nil
}

type emptyMessageRepo struct{}

func (emptyMessageRepo) ListByPatient(_ context.Context, _ uuid.UUID) ([]*model.Message, error) {
	return nil, nil
}

type emptyDocumentRepo struct{}

func (emptyDocumentRepo) ListByPatient(_ context.Context, _ uuid.UUID) ([]*model.Document, error) {
	return nil, nil
}

type emptyInvoiceRepo struct{}

func (emptyInvoiceRepo) ListByPatient(_ context.Context, _ uuid.UUID) ([]*model.Invoice, error) {
	return nil, nil
}

type emptyAppointmentRepo struct{}

func (emptyAppointmentRepo) ListByPatient(_ context.Context, _ uuid.UUID) ([]*model.Appointment, error) {
	return nil, nil
}
func (emptyAppointmentRepo) Get(_ context.Context, _ uuid.UUID) (*model.Appointment, error) {
	return nil, nil
}
func (emptyAppointmentRepo) Create(_ context.Context, _ *model.Appointment) error { return nil }
func (emptyAppointmentRepo) Update(_ context.Context, _ *model.Appointment) error { return nil }
func (emptyAppointmentRepo) Delete(_ context.Context, _ uuid.UUID) error          { return nil }

type emptyActivityRepo struct{}

func (emptyActivityRepo) ListByPatient(_ context.Context, _ uuid.UUID) ([]*model.Activity, error) {
	return nil, nil
}
func (emptyActivityRepo) Get(_ context.Context, _ uuid.UUID) (*model.Activity, error) {
	return nil, nil
}
func (emptyActivityRepo) UpdateCompleted(_ context.Context, _ uuid.UUID, _ bool) (*model.Activity, error) {
	return nil, nil
}

type emptyReminderRepo struct{}

func (emptyReminderRepo) ListByPatient(_ context.Context, _ uuid.UUID) ([]*model.Reminder, error) {
	return nil, nil
}
func (emptyReminderRepo) Get(_ context.Context, _ uuid.UUID) (*model.Reminder, error) {
	return nil, nil
}
func (emptyReminderRepo) UpdateCompleted(_ context.Context, _ uuid.UUID, _ bool) (*model.Reminder, error) {
	return nil, nil
}

type fixture struct {
	engine    *gin.Engine
	access    *access.Service
	accountID uuid.UUID
	patientID uuid.UUID
}

func newFixture(t *testing.T, vitals []*model.Vital, medications []*model.Medication) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	accountID := uuid.New()
	patientID := uuid.New()

	grants := &stubGrantRepo{patients: map[uuid.UUID][]uuid.UUID{accountID: {patientID}}}
	accessSvc := access.NewService(grants)

	h := NewHandler(
		accessSvc,
		recordService.NewService(
			&stubVitalRepo{vitals: vitals},
			emptyContactRepo{},
			emptyCheckInRepo{},
			emptyMessageRepo{},
			emptyDocumentRepo{},
			emptyInvoiceRepo{},
		),
		medicationService.NewService(&stubMedicationRepo{medications: medications}, nil),
		appointmentService.NewService(emptyAppointmentRepo{}, nil),
		activityService.NewService(emptyActivityRepo{}, nil),
		reminderService.NewService(emptyReminderRepo{}, nil),
	)

	engine := gin.New()
	api := engine.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Set(middleware.ContextAccountID, accountID)
		c.Next()
	})
	h.RegisterRoutes(api)

	return &fixture{engine: engine, access: accessSvc, accountID: accountID, patientID: patientID}
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	f.engine.ServeHTTP(w, req)
	return w
}

func (f *fixture) post(path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.engine.ServeHTTP(w, req)
	return w
}

func TestListVitals_ReturnsPatientRows(t *testing.T) {
	vitals := []*model.Vital{
		{ID: uuid.New(), Type: "heart_rate", Value: "72", Unit: "bpm", RecordedAt: time.Now()},
		{ID: uuid.New(), Type: "blood_pressure", Value: "120/80", Unit: "mmHg", RecordedAt: time.Now()},
	}
	f := newFixture(t, vitals, nil)
	// The fixture picks the patient id, so stamp the rows afterwards.
	for _, v := range vitals {
		v.PatientID = f.patientID
	}

	w := f.get("/api/patients/" + f.patientID.String() + "/vitals")

	require.Equal(t, http.StatusOK, w.Code)
	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestListVitals_DeniesUnlinkedPatient(t *testing.T) {
	f := newFixture(t, nil, nil)

	w := f.get("/api/patients/" + uuid.NewString() + "/vitals")

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": "no access to this patient"}`, w.Body.String())
}

func TestListVitals_RejectsMalformedPatientID(t *testing.T) {
	f := newFixture(t, nil, nil)

	w := f.get("/api/patients/not-a-uuid/vitals")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "invalid patientId"}`, w.Body.String())
}

func TestListMedications_EmptyCollectionIsArray(t *testing.T) {
	f := newFixture(t, nil, nil)

	w := f.get("/api/patients/" + f.patientID.String() + "/medications")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGrantAccess_ExtendsCareTeam(t *testing.T) {
	f := newFixture(t, nil, nil)
	grantee := uuid.New()

	w := f.post("/api/patients/"+f.patientID.String()+"/access",
		`{"accountId": "`+grantee.String()+`"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"granted": true}`, w.Body.String())
	assert.NoError(t, f.access.Authorize(context.Background(), grantee, f.patientID))
}

func TestGrantAccess_DeniesUnlinkedPatient(t *testing.T) {
	f := newFixture(t, nil, nil)

	w := f.post("/api/patients/"+uuid.NewString()+"/access",
		`{"accountId": "`+uuid.NewString()+`"}`)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": "no access to this patient"}`, w.Body.String())
}

func TestGrantAccess_RejectsMalformedAccountID(t *testing.T) {
	f := newFixture(t, nil, nil)

	w := f.post("/api/patients/"+f.patientID.String()+"/access",
		`{"accountId": "not-a-uuid"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "invalid accountId"}`, w.Body.String())
}

func TestListRoutes_AllCollectionsRespond(t *testing.T) {
	f := newFixture(t, nil, nil)

	paths := []string{
		"medications", "appointments", "vitals", "emergency-contacts",
		"checkins", "messages", "documents", "activities", "reminders", "invoices",
	}
	for _, p := range paths {
		w := f.get("/api/patients/" + f.patientID.String() + "/" + p)
		assert.Equal(t, http.StatusOK, w.Code, "collection %s", p)
		assert.Equal(t, "[]", w.Body.String(), "collection %s", p)
	}
}
