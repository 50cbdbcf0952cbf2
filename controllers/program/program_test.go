package programController

import (
	"bytes"
	"edusite/config"
	"edusite/database"
	"edusite/models"
	registrationValidator "edusite/validators/registration"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/programs", ListPrograms)
	app.Get("/programs/:id/register", RegistrationForm)
	app.Post("/programs/:id/register", registrationValidator.Register(), Register)
	app.Post("/verify-payment", VerifyPayment)
	return app, db
}

func createProgram(t *testing.T, db *gorm.DB) models.Program {
	t.Helper()
	program := models.Program{
		Title:               "Coding Bootcamp",
		Description:         "Learn to code",
		PriceOnline6Weeks:   100,
		PriceOnline12Weeks:  180,
		PriceOffline6Weeks:  150,
		PriceOffline12Weeks: 250,
		IsActive:            true,
	}
	require.NoError(t, db.Create(&program).Error)
	return program
}

func validRegistration() map[string]interface{} {
	return map[string]interface{}{
		"first_name": "Ada",
		"last_name":  "Obi",
		"email":      "ada@example.com",
		"phone":      "08012345678",
		"mode":       models.ModeOffline,
		"duration":   models.Duration6Weeks,
	}
}

type initiateResponse struct {
	RegistrationID uint   `json:"registration_id"`
	Email          string `json:"email"`
	Amount         int64  `json:"amount"`
}

func postRegistration(t *testing.T, app *fiber.App, programID uint, payload map[string]interface{}) (*http.Response, []byte) {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", fmt.Sprintf("/programs/%d/register", programID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, raw
}

func TestRegisterOfflineWithoutBranchPersists(t *testing.T) {
	app, db := setupApp(t)
	program := createProgram(t, db)

	resp, raw := postRegistration(t, app, program.ID, validRegistration())
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed initiateResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "ada@example.com", parsed.Email)
	assert.Equal(t, int64(15000), parsed.Amount) // 150 x 1 participant, in minor units

	var registration models.ProgramRegistration
	require.NoError(t, db.First(&registration, parsed.RegistrationID).Error)
	assert.Nil(t, registration.BranchID)
	assert.Equal(t, models.PaymentStatusPending, registration.PaymentStatus)
	assert.Equal(t, 150.0, registration.TotalPrice)
}

func TestRegisterOnlineIgnoresSuppliedBranch(t *testing.T) {
	app, db := setupApp(t)
	program := createProgram(t, db)

	branch := models.Branch{Name: "Ikeja", Address: "12 Allen Ave", IsActive: true}
	require.NoError(t, db.Create(&branch).Error)

	payload := validRegistration()
	payload["mode"] = models.ModeOnline
	payload["branch"] = branch.ID

	resp, raw := postRegistration(t, app, program.ID, payload)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed initiateResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))

	var registration models.ProgramRegistration
	require.NoError(t, db.First(&registration, parsed.RegistrationID).Error)
	assert.Nil(t, registration.BranchID)
	assert.Equal(t, 100.0, registration.TotalPrice) // online/6weeks price
}

func TestRegisterTotalScalesWithParticipants(t *testing.T) {
	app, db := setupApp(t)
	program := createProgram(t, db)

	payload := validRegistration()
	payload["mode"] = models.ModeOnline
	payload["duration"] = models.Duration12Weeks
	payload["participants"] = 100

	resp, raw := postRegistration(t, app, program.ID, payload)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed initiateResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, int64(1800000), parsed.Amount) // 180 x 100, in minor units

	var registration models.ProgramRegistration
	require.NoError(t, db.First(&registration, parsed.RegistrationID).Error)
	assert.Equal(t, 18000.0, registration.TotalPrice)
	assert.Equal(t, uint(100), registration.Participants)
}

// Minor-unit conversion must round: many two-decimal prices (1.13,
// 0.29, ...) multiply to a float a hair under price x 100, and
// truncation would quote one unit short.
func TestRegisterFractionalPriceAmountExact(t *testing.T) {
	app, db := setupApp(t)

	program := models.Program{
		Title:               "Weekend Club",
		PriceOnline6Weeks:   1.13,
		PriceOnline12Weeks:  0.29,
		PriceOffline6Weeks:  10.57,
		PriceOffline12Weeks: 99.99,
		IsActive:            true,
	}
	require.NoError(t, db.Create(&program).Error)

	payload := validRegistration()
	payload["mode"] = models.ModeOnline
	payload["duration"] = models.Duration6Weeks

	resp, raw := postRegistration(t, app, program.ID, payload)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed initiateResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, int64(113), parsed.Amount)

	payload["duration"] = models.Duration12Weeks
	payload["participants"] = 3
	resp, raw = postRegistration(t, app, program.ID, payload)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, int64(87), parsed.Amount) // 0.29 x 3 = 0.87
}

func TestRegisterUnknownProgramNotFound(t *testing.T) {
	app, db := setupApp(t)
	createProgram(t, db)

	resp, _ := postRegistration(t, app, 9999, validRegistration())
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var count int64
	db.Model(&models.ProgramRegistration{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRegisterInvalidInputListsAllErrors(t *testing.T) {
	app, db := setupApp(t)
	program := createProgram(t, db)

	payload := map[string]interface{}{
		"email":        "broken",
		"mode":         "hybrid",
		"duration":     "8weeks",
		"participants": 0,
	}
	resp, raw := postRegistration(t, app, program.ID, payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var parsed struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	for _, field := range []string{"first_name", "last_name", "email", "phone", "mode", "duration", "participants"} {
		assert.Contains(t, parsed.Errors, field)
	}

	var count int64
	db.Model(&models.ProgramRegistration{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestListProgramsExcludesInactive(t *testing.T) {
	app, db := setupApp(t)
	createProgram(t, db)

	inactive := models.Program{Title: "Retired", IsActive: false}
	require.NoError(t, db.Create(&inactive).Error)

	req := httptest.NewRequest("GET", "/programs", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	var parsed struct {
		Data []models.Program `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	require.Len(t, parsed.Data, 1)
	assert.Equal(t, "Coding Bootcamp", parsed.Data[0].Title)
}

func TestRegistrationFormExcludesInactiveBranches(t *testing.T) {
	app, db := setupApp(t)
	program := createProgram(t, db)

	require.NoError(t, db.Create(&models.Branch{Name: "Ikeja", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Branch{Name: "Closed", IsActive: false}).Error)

	req := httptest.NewRequest("GET", fmt.Sprintf("/programs/%d/register", program.ID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed struct {
		Data struct {
			Branches []models.Branch `json:"branches"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	require.Len(t, parsed.Data.Branches, 1)
	assert.Equal(t, "Ikeja", parsed.Data.Branches[0].Name)
}

// --- payment verification ---

func stubGateway(t *testing.T, body string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/transaction/verify/"))
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	config.AppConfig.PaystackBaseURL = srv.URL
}

func verifyWithSession(t *testing.T, app *fiber.App, cookies []*http.Cookie, reference string) (string, []byte) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"reference": reference})
	req := httptest.NewRequest("POST", "/verify-payment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	var parsed struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return parsed.Status, raw
}

func initiateWithSession(t *testing.T, app *fiber.App, programID uint) (uint, []*http.Cookie) {
	t.Helper()
	resp, raw := postRegistration(t, app, programID, validRegistration())
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed initiateResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return parsed.RegistrationID, resp.Cookies()
}

func TestVerifyPaymentConfirmedSuccess(t *testing.T) {
	app, db := setupApp(t)
	program := createProgram(t, db)
	registrationID, cookies := initiateWithSession(t, app, program.ID)

	stubGateway(t, `{"status":true,"message":"Verification successful","data":{"status":"success","reference":"ref_123","amount":15000}}`)

	status, _ := verifyWithSession(t, app, cookies, "ref_123")
	assert.Equal(t, "success", status)

	var registration models.ProgramRegistration
	require.NoError(t, db.First(&registration, registrationID).Error)
	assert.Equal(t, models.PaymentStatusSuccess, registration.PaymentStatus)
	require.NotNil(t, registration.PaymentReference)
	assert.Equal(t, "ref_123", *registration.PaymentReference)
}

func TestVerifyPaymentDeclinedLeavesPending(t *testing.T) {
	app, db := setupApp(t)
	program := createProgram(t, db)
	registrationID, cookies := initiateWithSession(t, app, program.ID)

	stubGateway(t, `{"status":true,"message":"Verification successful","data":{"status":"failed","reference":"ref_123"}}`)

	status, _ := verifyWithSession(t, app, cookies, "ref_123")
	assert.Equal(t, "failed", status)

	var registration models.ProgramRegistration
	require.NoError(t, db.First(&registration, registrationID).Error)
	assert.Equal(t, models.PaymentStatusPending, registration.PaymentStatus)
	assert.Nil(t, registration.PaymentReference)
}

// A gateway body that does not match the expected shape is a failure,
// never a crash, and never a state change.
func TestVerifyPaymentMalformedGatewayBody(t *testing.T) {
	app, db := setupApp(t)
	program := createProgram(t, db)
	registrationID, cookies := initiateWithSession(t, app, program.ID)

	stubGateway(t, `{"status":"yes","data":"nope"}`)

	status, _ := verifyWithSession(t, app, cookies, "ref_123")
	assert.Equal(t, "failed", status)

	var registration models.ProgramRegistration
	require.NoError(t, db.First(&registration, registrationID).Error)
	assert.Equal(t, models.PaymentStatusPending, registration.PaymentStatus)
}

func TestVerifyPaymentWithoutSessionFails(t *testing.T) {
	app, db := setupApp(t)
	program := createProgram(t, db)
	registrationID, _ := initiateWithSession(t, app, program.ID)

	stubGateway(t, `{"status":true,"data":{"status":"success","reference":"ref_123"}}`)

	// No session cookie: there is nothing to correlate the payment with
	status, _ := verifyWithSession(t, app, nil, "ref_123")
	assert.Equal(t, "failed", status)

	var registration models.ProgramRegistration
	require.NoError(t, db.First(&registration, registrationID).Error)
	assert.Equal(t, models.PaymentStatusPending, registration.PaymentStatus)
}

func TestVerifyPaymentMissingReferenceIsError(t *testing.T) {
	app, db := setupApp(t)
	createProgram(t, db)

	body, _ := json.Marshal(map[string]string{})
	req := httptest.NewRequest("POST", "/verify-payment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var parsed struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "error", parsed.Status)

	var count int64
	db.Model(&models.ProgramRegistration{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
