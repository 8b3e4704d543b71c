package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	appUC "github.com/trannb/jobtrackr/internal/application/usecase/application"
	appdomain "github.com/trannb/jobtrackr/internal/domain/application"
	"github.com/trannb/jobtrackr/pkg/logger"
)

// newCreateTestRouter wires only the create route. The use case gets no
// repository; every test here must fail validation before storage is
// touched.
func newCreateTestRouter(userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	createUC := appUC.NewCreateApplicationUseCase(nil, nil, logger.NewNop())
	handler := &ApplicationHandler{createUseCase: createUC}

	router := gin.New()
	router.Use(ErrorMiddleware(logger.NewNop()))
	router.Use(func(c *gin.Context) {
		c.Set(GinContextKeyUserID, userID)
	})
	router.POST("/applications", handler.Create)
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCreateApplication_BadDateFormatIs400(t *testing.T) {
	router := newCreateTestRouter(uuid.New())

	rr := postJSON(router, "/applications", gin.H{
		"job_role":         "Backend Engineer",
		"company":          "Acme",
		"job_type":         "Remote",
		"status":           "Applied",
		"application_date": "10/02/2026",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "applicationDate")
}

func TestCreateApplication_FutureDateIs400(t *testing.T) {
	router := newCreateTestRouter(uuid.New())

	future := time.Now().UTC().AddDate(0, 0, 3).Format(appdomain.DateLayout)
	rr := postJSON(router, "/applications", gin.H{
		"job_role":         "Backend Engineer",
		"company":          "Acme",
		"job_type":         "Remote",
		"status":           "Applied",
		"application_date": future,
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Date cannot be in the future.")
}

func TestCreateApplication_UnknownEnumsAre400(t *testing.T) {
	router := newCreateTestRouter(uuid.New())

	rr := postJSON(router, "/applications", gin.H{
		"job_role":         "Backend Engineer",
		"company":          "Acme",
		"job_type":         "Freelance",
		"status":           "Ghosted",
		"application_date": "2026-02-10",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "jobType")
	assert.Contains(t, rr.Body.String(), "status")
}

func TestCreateApplication_MissingRequiredBindingIs400(t *testing.T) {
	router := newCreateTestRouter(uuid.New())

	rr := postJSON(router, "/applications", gin.H{
		"company": "Acme",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateRequest_ToPatchParsesDate(t *testing.T) {
	date := "2026-02-10"
	req := UpdateApplicationRequest{ApplicationDate: &date}

	patch, err := req.ToPatch()

	assert.NoError(t, err)
	assert.NotNil(t, patch.ApplicationDate)
	assert.Equal(t, date, patch.ApplicationDate.Format(appdomain.DateLayout))
	assert.Nil(t, patch.JobRole)
}

func TestUpdateRequest_ToPatchRejectsBadDate(t *testing.T) {
	date := "February 10th"
	req := UpdateApplicationRequest{ApplicationDate: &date}

	_, err := req.ToPatch()

	assert.Error(t, err)
}
