package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventku_backend/internals/features/registrations/model"
	"eventku_backend/internals/features/registrations/repository"
)

func seedReg(t *testing.T, repo *repository.InMemoryRepository, name string, eventID *uint, eventName string) *model.RegistrationModel {
	t.Helper()
	reg := &model.RegistrationModel{
		RegistrationName:      name,
		RegistrationEmail:     name + "@example.com",
		RegistrationEventID:   eventID,
		RegistrationEventName: eventName,
	}
	require.NoError(t, repo.Insert(context.Background(), reg))
	return reg
}

func TestCheckinFreshThenAlready(t *testing.T) {
	repo := repository.NewInMemoryRepository()
	gate := NewCheckinGate(repo)
	evID := uint(7)
	reg := seedReg(t, repo, "Asha Rao", &evID, "Tech Meetup")

	res, err := gate.Checkin(context.Background(), reg.RegistrationID, 7)
	require.NoError(t, err)
	assert.Equal(t, CheckinFresh, res.Status)
	assert.Equal(t, "Asha Rao", res.Name)
	assert.Equal(t, "Tech Meetup", res.EventName)

	// scan kedua: bukan error, statusnya already
	res, err = gate.Checkin(context.Background(), reg.RegistrationID, 7)
	require.NoError(t, err)
	assert.Equal(t, CheckinAlready, res.Status)
	assert.Equal(t, "Asha Rao", res.Name)
}

func TestCheckinWrongEventReportsTrueEventName(t *testing.T) {
	repo := repository.NewInMemoryRepository()
	gate := NewCheckinGate(repo)
	evID := uint(7)
	reg := seedReg(t, repo, "Asha Rao", &evID, "Tech Meetup")

	res, err := gate.Checkin(context.Background(), reg.RegistrationID, 8)
	require.NoError(t, err)
	assert.Equal(t, CheckinWrongEvent, res.Status)
	assert.Equal(t, "Tech Meetup", res.EventName, "petugas harus tahu event asli QR ini")

	// mismatch tidak boleh menandai check-in
	stored, err := repo.FindByID(context.Background(), reg.RegistrationID)
	require.NoError(t, err)
	assert.False(t, stored.RegistrationCheckedIn)
}

func TestCheckinOrphanedRegistrationIsMismatch(t *testing.T) {
	repo := repository.NewInMemoryRepository()
	gate := NewCheckinGate(repo)
	// event sudah dihapus: referensi nil, snapshot nama tetap ada
	reg := seedReg(t, repo, "Asha Rao", nil, "Deleted Expo")

	res, err := gate.Checkin(context.Background(), reg.RegistrationID, 7)
	require.NoError(t, err)
	assert.Equal(t, CheckinWrongEvent, res.Status)
	assert.Equal(t, "Deleted Expo", res.EventName)

	// kiosk tanpa filter event tetap menerima
	res, err = gate.Checkin(context.Background(), reg.RegistrationID, 0)
	require.NoError(t, err)
	assert.Equal(t, CheckinFresh, res.Status)
}

func TestCheckinUnknownRegistration(t *testing.T) {
	repo := repository.NewInMemoryRepository()
	gate := NewCheckinGate(repo)

	res, err := gate.Checkin(context.Background(), 999, 0)
	require.NoError(t, err)
	assert.Equal(t, CheckinNotFound, res.Status)
}
