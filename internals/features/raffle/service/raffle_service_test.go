package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventku_backend/internals/features/registrations/model"
	"eventku_backend/internals/features/registrations/repository"
)

func seedCheckedInReg(t *testing.T, repo *repository.InMemoryRepository, name string, eventID uint) *model.RegistrationModel {
	t.Helper()
	id := eventID
	reg := &model.RegistrationModel{
		RegistrationName:      name,
		RegistrationPhone:     "0812000",
		RegistrationEmail:     name + "@example.com",
		RegistrationEventID:   &id,
		RegistrationEventName: "Tech Meetup",
	}
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, reg))
	fresh, err := repo.UpdateCheckin(ctx, reg.RegistrationID, time.Now())
	require.NoError(t, err)
	require.True(t, fresh)
	return reg
}

func TestRecordWinnerExcludesFromNextRound(t *testing.T) {
	repo := repository.NewInMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	a := seedCheckedInReg(t, repo, "asha", 1)
	b := seedCheckedInReg(t, repo, "budi", 1)

	eligible, err := svc.EligibleToday(ctx, 1)
	require.NoError(t, err)
	require.Len(t, eligible, 2)

	winner, err := svc.RecordWinner(ctx, a.RegistrationID)
	require.NoError(t, err)
	assert.Equal(t, a.RegistrationID, winner.RaffleWinnerRegistrationID)
	assert.Equal(t, "asha", winner.RaffleWinnerName)
	assert.Equal(t, "Tech Meetup", winner.RaffleWinnerEventName)
	assert.Equal(t, time.Now().Format("2006-01-02"), winner.RaffleWinnerWinDate)

	// ronde berikutnya: pemenang langsung keluar dari kandidat
	eligible, err = svc.EligibleToday(ctx, 1)
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, b.RegistrationID, eligible[0].RegistrationID)

	// registrasi pemenang TIDAK diubah
	stored, err := repo.FindByID(ctx, a.RegistrationID)
	require.NoError(t, err)
	assert.True(t, stored.RegistrationCheckedIn)
}

func TestRecordWinnerUnknownRegistration(t *testing.T) {
	repo := repository.NewInMemoryRepository()
	svc := NewService(repo)

	_, err := svc.RecordWinner(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrRegistrationNotFound)
}

func TestWinnersNewestFirstAndDuplicatesAllowed(t *testing.T) {
	repo := repository.NewInMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	a := seedCheckedInReg(t, repo, "asha", 1)

	// pencatatan ganda diperbolehkan di store (append-only); dedup ada di
	// eligibility view, bukan constraint
	_, err := svc.RecordWinner(ctx, a.RegistrationID)
	require.NoError(t, err)
	_, err = svc.RecordWinner(ctx, a.RegistrationID)
	require.NoError(t, err)

	winners, err := svc.Winners(ctx)
	require.NoError(t, err)
	assert.Len(t, winners, 2)
}
