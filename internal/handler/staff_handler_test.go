package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"go-clinic-staff/internal/model"
	"go-clinic-staff/internal/repository"
	"go-clinic-staff/internal/service"
	"go-clinic-staff/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) (*fiber.App, *repository.MemoryPatientRepo) {
	t.Helper()
	patients := repository.NewMemoryPatientRepo(model.DemoPatients()...)
	svc := service.NewStaffService(repository.NewMemoryStaffRepo(), patients, nil, logger.Discard())

	app := fiber.New()
	RegisterRoutes(app, NewStaffHandler(svc), NewPositionHandler(), nil)
	return app, patients
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}, string) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor", "front-desk")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out, resp.Header.Get("Location")
}

func createAnn(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, body, _ := doJSON(t, app, "POST", "/api/v1/staff", map[string]interface{}{
		"first_name":  "Ann",
		"last_name":   "Lee",
		"position":    "Dental Hygienist",
		"hire_date":   "2022-09-12",
		"email":       "ann@clinic.test",
		"phone":       "",
		"login_email": "ann",
		"password":    "hunter22",
	})
	require.Equal(t, 201, status, body)
	return body["data"].(map[string]interface{})["id"].(string)
}

func TestCreateStaff(t *testing.T) {
	app, _ := setupApp(t)
	status, body, location := doJSON(t, app, "POST", "/api/v1/staff", map[string]interface{}{
		"first_name": "Ann",
		"last_name":  "Lee",
		"position":   "Dentist",
		"hire_date":  "2022-09-12",
		"phone":      "  ",
	})
	require.Equal(t, 201, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Active", data["status"])
	assert.Nil(t, data["phone"])
	assert.Equal(t, "front-desk", data["created_by"])
	assert.Equal(t, "/staff/"+data["id"].(string), location)
	assert.Equal(t, location, body["location"])
	assert.NotContains(t, data, "password")
}

func TestCreateStaff_Validation(t *testing.T) {
	app, _ := setupApp(t)
	status, body, _ := doJSON(t, app, "POST", "/api/v1/staff", map[string]interface{}{
		"first_name": "Ann",
		"last_name":  "Lee",
		"position":   "Wizard",
		"hire_date":  "2022-09-12",
	})
	assert.Equal(t, 400, status)
	assert.Contains(t, body["error"], "staff_position")

	status, _, _ = doJSON(t, app, "POST", "/api/v1/staff", map[string]interface{}{
		"first_name": "Ann",
		"last_name":  "Lee",
		"position":   "Dentist",
		"hire_date":  "12.09.2022",
	})
	assert.Equal(t, 400, status)
}

func TestGetStaff_FilterAndEmptyStates(t *testing.T) {
	app, _ := setupApp(t)

	_, body, _ := doJSON(t, app, "GET", "/api/v1/staff", nil)
	assert.Equal(t, "no_staff", body["empty_state"])

	createAnn(t, app)

	_, body, _ = doJSON(t, app, "GET", "/api/v1/staff?search=ANN%40clinic", nil)
	assert.EqualValues(t, 1, body["total"])

	_, body, _ = doJSON(t, app, "GET", "/api/v1/staff?position=Dentist", nil)
	assert.EqualValues(t, 0, body["total"])
	assert.EqualValues(t, 1, body["total_staff"])
	assert.Equal(t, "no_matches", body["empty_state"])
}

func TestGetStaffMember_NotFound(t *testing.T) {
	app, _ := setupApp(t)
	status, body, _ := doJSON(t, app, "GET", "/api/v1/staff/"+uuid.NewString(), nil)
	assert.Equal(t, 404, status)
	assert.Equal(t, "Staff member not found", body["error"])
	assert.Equal(t, "/staff", body["back"])

	status, _, _ = doJSON(t, app, "GET", "/api/v1/staff/not-a-uuid", nil)
	assert.Equal(t, 400, status)
}

func TestUpdateStaff_AssignsPatients(t *testing.T) {
	app, patients := setupApp(t)
	id := createAnn(t, app)
	all, err := patients.FindAll()
	require.NoError(t, err)

	status, body, _ := doJSON(t, app, "PUT", "/api/v1/staff/"+id, map[string]interface{}{
		"first_name":           "Ann",
		"last_name":            "Lee",
		"position":             "Dental Hygienist",
		"status":               "On leave",
		"hire_date":            "2022-09-12",
		"email":                "",
		"new_password":         "",
		"assigned_patient_ids": []string{all[2].ID.String(), all[0].ID.String()},
	})
	require.Equal(t, 200, status, body)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "On leave", data["status"])
	assert.Nil(t, data["email"])
	assert.Equal(t, true, data["has_password"])

	_, body, _ = doJSON(t, app, "GET", "/api/v1/staff/"+id+"/patients", nil)
	assert.EqualValues(t, 2, body["total"])
	first := body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, all[2].FirstName, first["first_name"])
}

func TestDeleteStaff(t *testing.T) {
	app, _ := setupApp(t)
	id := createAnn(t, app)

	status, body, _ := doJSON(t, app, "DELETE", "/api/v1/staff/"+id, nil)
	assert.Equal(t, 200, status)
	assert.Equal(t, "/staff", body["location"])

	status, _, _ = doJSON(t, app, "DELETE", "/api/v1/staff/"+id, nil)
	assert.Equal(t, 404, status)
}

func TestGetPositions(t *testing.T) {
	app, _ := setupApp(t)
	status, body, _ := doJSON(t, app, "GET", "/api/v1/positions", nil)
	require.Equal(t, 200, status)
	assert.Len(t, body["groups"], 4)
	assert.Len(t, body["positions"], 18)
	assert.Contains(t, body["assignable_patient_positions"], "Dental Hygienist")
	assert.NotContains(t, body["chart_delete_positions"], "Dental Hygienist")
	assert.Equal(t, []interface{}{"Active", "On leave", "Inactive"}, body["statuses"])
}
