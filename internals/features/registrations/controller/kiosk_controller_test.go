package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventModel "eventku_backend/internals/features/events/model"
	"eventku_backend/internals/features/registrations/repository"
)

func newKioskApp(t *testing.T) (*fiber.App, *repository.InMemoryRepository) {
	t.Helper()
	repo := repository.NewInMemoryRepository()
	repo.SeedEvent(eventModel.EventModel{
		EventID:      7,
		EventName:    "Tech Meetup",
		EventStartAt: time.Now(),
		EventEndAt:   time.Now().Add(8 * time.Hour),
	})

	ctrl := NewKioskController(repo)
	app := fiber.New()
	app.Post("/api/register", ctrl.Register)
	app.Post("/api/checkin", ctrl.Checkin)
	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	payload := map[string]interface{}{}
	rawResp, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(rawResp, &payload))
	return resp, payload
}

func TestRegisterThenCheckinFlow(t *testing.T) {
	app, _ := newKioskApp(t)

	// 1. pendaftaran
	resp, body := doJSON(t, app, http.MethodPost, "/api/register", fiber.Map{
		"name":                    "Asha Rao",
		"email":                   "asha@example.com",
		"phone":                   "08120001",
		"eventId":                 7,
		"interested_to_volunteer": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	regID := body["registrationId"].(float64)
	require.NotZero(t, regID)

	// 2. scan pertama: fresh, nama & event ditampilkan
	resp, body = doJSON(t, app, http.MethodPost, "/api/checkin", fiber.Map{
		"registrationId": regID,
		"eventId":        7,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Asha Rao", body["name"])
	assert.Equal(t, "Tech Meetup", body["eventName"])
	assert.Nil(t, body["alreadyCheckedIn"])

	// 3. scan ulang: tetap success, tapi ditandai alreadyCheckedIn
	resp, body = doJSON(t, app, http.MethodPost, "/api/checkin", fiber.Map{
		"registrationId": regID,
		"eventId":        7,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["alreadyCheckedIn"])
	assert.Equal(t, "Asha Rao", body["name"])
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newKioskApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/register", fiber.Map{
		"name":    "Asha Rao",
		"email":   "bukan-email",
		"eventId": 7,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestRegisterUnknownEvent(t *testing.T) {
	app, _ := newKioskApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/register", fiber.Map{
		"name":    "Asha Rao",
		"email":   "asha@example.com",
		"eventId": 99,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Event tidak ditemukan", body["error"])
}

func TestCheckinAcceptsRawQRText(t *testing.T) {
	app, _ := newKioskApp(t)

	_, body := doJSON(t, app, http.MethodPost, "/api/register", fiber.Map{
		"name":    "Asha Rao",
		"email":   "asha@example.com",
		"eventId": 7,
	})
	regID := uint(body["registrationId"].(float64))

	// scanner yang tidak mem-parse isi QR mengirim teks mentahnya
	qrText, err := json.Marshal(fiber.Map{"registrationId": regID, "name": "Asha Rao"})
	require.NoError(t, err)
	resp, body := doJSON(t, app, http.MethodPost, "/api/checkin", fiber.Map{
		"qr":      string(qrText),
		"eventId": 7,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Asha Rao", body["name"])

	// teks QR yang tidak dikenali
	resp, body = doJSON(t, app, http.MethodPost, "/api/checkin", fiber.Map{
		"qr": "bukan-qr-kami",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "QR tidak dikenali", body["error"])

	// tanpa registrationId maupun qr
	resp, body = doJSON(t, app, http.MethodPost, "/api/checkin", fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "registrationId wajib diisi", body["error"])
}

func TestCheckinWrongEventAndUnknownID(t *testing.T) {
	app, _ := newKioskApp(t)

	_, body := doJSON(t, app, http.MethodPost, "/api/register", fiber.Map{
		"name":    "Asha Rao",
		"email":   "asha@example.com",
		"eventId": 7,
	})
	regID := body["registrationId"].(float64)

	// kiosk memilih event lain → ditolak, dengan nama event QR yang benar
	resp, body := doJSON(t, app, http.MethodPost, "/api/checkin", fiber.Map{
		"registrationId": regID,
		"eventId":        8,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "QR tidak berlaku untuk event ini", body["error"])
	assert.Equal(t, "Tech Meetup", body["eventName"])

	// registrationId tidak dikenal
	resp, body = doJSON(t, app, http.MethodPost, "/api/checkin", fiber.Map{
		"registrationId": 424242,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Registrasi tidak ditemukan", body["error"])
}
