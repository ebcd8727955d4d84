package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventModel "eventku_backend/internals/features/events/model"
	registrationModel "eventku_backend/internals/features/registrations/model"
	"eventku_backend/internals/features/registrations/repository"
)

func TestDeleteEventKeepsRegistrations(t *testing.T) {
	repo := repository.NewInMemoryRepository()
	repo.SeedEvent(eventModel.EventModel{EventID: 7, EventName: "Tech Meetup"})

	evID := uint(7)
	evDate := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	reg := &registrationModel.RegistrationModel{
		RegistrationName:      "Asha Rao",
		RegistrationEmail:     "asha@example.com",
		RegistrationEventID:   &evID,
		RegistrationEventName: "Tech Meetup",
		RegistrationEventDate: &evDate,
	}
	require.NoError(t, repo.Insert(context.Background(), reg))

	ctrl := NewEventController(nil, repo)
	app := fiber.New()
	app.Delete("/api/events/:id", ctrl.DeleteEvent)

	req := httptest.NewRequest(http.MethodDelete, "/api/events/7", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// registrasi tidak ikut terhapus, hanya dilepas dari event-nya
	stored, err := repo.FindByID(context.Background(), reg.RegistrationID)
	require.NoError(t, err)
	assert.Nil(t, stored.RegistrationEventID)
	assert.Equal(t, "Tech Meetup", stored.RegistrationEventName)

	// hapus ulang → 404
	req = httptest.NewRequest(http.MethodDelete, "/api/events/7", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
