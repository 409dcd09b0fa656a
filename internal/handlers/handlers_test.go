package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirebridge/hirebridge/internal/repository/jsonfile"
	"github.com/hirebridge/hirebridge/internal/services"
	"github.com/hirebridge/hirebridge/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	jobsRepo := jsonfile.NewJobs(s)
	appsRepo := jsonfile.NewApplications(s)
	usersRepo := jsonfile.NewUsers(s)

	r := gin.New()
	RegisterRoutes(r,
		NewJobHandler(services.NewJobService(jobsRepo, usersRepo)),
		NewApplicationHandler(services.NewApplicationService(appsRepo, jobsRepo)),
		NewUserHandler(services.NewUserService(usersRepo)),
	)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func jobBody(title string) map[string]any {
	return map[string]any{
		"title":       title,
		"description": []map[string]any{{"insert": "Build and run services."}},
		"category":    "Programming",
		"location":    "Bangalore",
		"level":       "Senior",
		"salary":      120000,
	}
}

func TestRootAndHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"API Working"}`, w.Body.String())

	w = doRequest(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())
}

// With no jobs file on disk yet, the listing is an empty array, not an
// error and not null.
func TestGetJobsEmpty(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/jobs", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestJobLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/jobs", jobBody("Backend Engineer"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Message string         `json:"message"`
		Job     map[string]any `json:"job"`
	}
	decodeBody(t, w, &created)
	id, _ := created.Job["_id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, true, created.Job["visible"])

	// Visibility toggle through the generic update route.
	w = doRequest(t, r, http.MethodPut, "/api/jobs/"+id, map[string]any{"visible": false})
	require.Equal(t, http.StatusOK, w.Code)
	var updated struct {
		Job map[string]any `json:"job"`
	}
	decodeBody(t, w, &updated)
	assert.Equal(t, false, updated.Job["visible"])

	w = doRequest(t, r, http.MethodGet, "/api/jobs/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/api/jobs/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/jobs/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateJobValidation(t *testing.T) {
	r := newTestRouter(t)

	body := jobBody("")
	w := doRequest(t, r, http.MethodPost, "/api/jobs", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = jobBody("Backend Engineer")
	body["description"] = []map[string]any{}
	w = doRequest(t, r, http.MethodPost, "/api/jobs", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/jobs", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestApplicationSubmissionScenario(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/jobs", jobBody("Backend Engineer"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Job map[string]any `json:"job"`
	}
	decodeBody(t, w, &created)
	jobID := created.Job["_id"].(string)

	appBody := map[string]any{"jobId": jobID, "applicantEmail": "a@x.com", "applicantName": "Alice"}

	w = doRequest(t, r, http.MethodPost, "/api/applications", appBody)
	require.Equal(t, http.StatusCreated, w.Code)
	var submitted struct {
		Message     string         `json:"message"`
		Application map[string]any `json:"application"`
	}
	decodeBody(t, w, &submitted)
	assert.Equal(t, "Pending", submitted.Application["status"])
	// Snapshot denormalized from the posting.
	assert.Equal(t, "Backend Engineer", submitted.Application["jobTitle"])

	// Second identical submission is rejected and nothing else is stored.
	w = doRequest(t, r, http.MethodPost, "/api/applications", appBody)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already applied")

	w = doRequest(t, r, http.MethodGet, "/api/applications?jobId="+jobID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var apps []map[string]any
	decodeBody(t, w, &apps)
	assert.Len(t, apps, 1)
}

func TestCreateApplicationMissingFields(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/applications", map[string]any{"applicantName": "Alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/applications", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUpdateApplicationStatus(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/applications", map[string]any{"jobId": "j1", "applicantEmail": "a@x.com"})
	require.Equal(t, http.StatusCreated, w.Code)
	var submitted struct {
		Application map[string]any `json:"application"`
	}
	decodeBody(t, w, &submitted)
	id := submitted.Application["_id"].(string)

	w = doRequest(t, r, http.MethodPut, "/api/applications/"+id, map[string]any{"status": "Accepted"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated struct {
		Application map[string]any `json:"application"`
	}
	decodeBody(t, w, &updated)
	assert.Equal(t, "Accepted", updated.Application["status"])
}

func TestUpdateApplicationNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPut, "/api/applications/missing", map[string]any{"status": "Accepted"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/applications", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDeleteApplication(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/applications", map[string]any{"jobId": "j1", "applicantEmail": "a@x.com"})
	require.Equal(t, http.StatusCreated, w.Code)
	var submitted struct {
		Application map[string]any `json:"application"`
	}
	decodeBody(t, w, &submitted)
	id := submitted.Application["_id"].(string)

	w = doRequest(t, r, http.MethodDelete, "/api/applications/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/api/applications/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateUserAndDuplicate(t *testing.T) {
	r := newTestRouter(t)

	body := map[string]any{"name": "Acme", "email": "hr@acme.com", "role": "recruiter"}
	w := doRequest(t, r, http.MethodPost, "/api/users", body)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		User map[string]any `json:"user"`
	}
	decodeBody(t, w, &created)
	id := created.User["_id"].(string)

	w = doRequest(t, r, http.MethodPost, "/api/users", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/users/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
