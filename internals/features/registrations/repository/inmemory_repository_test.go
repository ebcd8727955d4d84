package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventModel "eventku_backend/internals/features/events/model"
	raffleModel "eventku_backend/internals/features/raffle/model"
	"eventku_backend/internals/features/registrations/model"
)

func seedRegistration(t *testing.T, repo *InMemoryRepository, name string, eventID uint) *model.RegistrationModel {
	t.Helper()
	id := eventID
	reg := &model.RegistrationModel{
		RegistrationName:      name,
		RegistrationEmail:     name + "@example.com",
		RegistrationEventID:   &id,
		RegistrationEventName: "Tech Meetup",
	}
	require.NoError(t, repo.Insert(context.Background(), reg))
	return reg
}

func TestUpdateCheckinConcurrentScansSingleTransition(t *testing.T) {
	repo := NewInMemoryRepository()
	reg := seedRegistration(t, repo, "asha", 1)

	const scans = 50
	var wg sync.WaitGroup
	results := make(chan bool, scans)

	for i := 0; i < scans; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fresh, err := repo.UpdateCheckin(context.Background(), reg.RegistrationID, time.Now())
			assert.NoError(t, err)
			results <- fresh
		}()
	}
	wg.Wait()
	close(results)

	freshCount := 0
	for fresh := range results {
		if fresh {
			freshCount++
		}
	}
	assert.Equal(t, 1, freshCount, "tepat satu scan boleh mendapat transisi fresh")

	stored, err := repo.FindByID(context.Background(), reg.RegistrationID)
	require.NoError(t, err)
	assert.True(t, stored.RegistrationCheckedIn)
	assert.NotNil(t, stored.RegistrationCheckedInAt)
}

func TestUpdateCheckinUnknownID(t *testing.T) {
	repo := NewInMemoryRepository()
	fresh, err := repo.UpdateCheckin(context.Background(), 999, time.Now())
	assert.NoError(t, err)
	assert.False(t, fresh)
}

func TestResetCheckins(t *testing.T) {
	repo := NewInMemoryRepository()
	a := seedRegistration(t, repo, "a", 1)
	b := seedRegistration(t, repo, "b", 1)
	seedRegistration(t, repo, "c", 1) // belum check-in

	ctx := context.Background()
	for _, reg := range []*model.RegistrationModel{a, b} {
		fresh, err := repo.UpdateCheckin(ctx, reg.RegistrationID, time.Now())
		require.NoError(t, err)
		require.True(t, fresh)
	}

	n, err := repo.ResetCheckins(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// setelah reset, scan berikutnya fresh lagi
	fresh, err := repo.UpdateCheckin(ctx, a.RegistrationID, time.Now())
	require.NoError(t, err)
	assert.True(t, fresh)
}

func TestListEligibleFiltersWinnersDayAndEvent(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()
	now := time.Now()

	checkedToday := seedRegistration(t, repo, "today", 1)
	wonAlready := seedRegistration(t, repo, "winner", 1)
	otherEvent := seedRegistration(t, repo, "other-event", 2)
	seedRegistration(t, repo, "not-checked-in", 1)

	for _, reg := range []*model.RegistrationModel{checkedToday, wonAlready, otherEvent} {
		fresh, err := repo.UpdateCheckin(ctx, reg.RegistrationID, now)
		require.NoError(t, err)
		require.True(t, fresh)
	}

	// check-in kemarin tidak ikut
	yesterday := seedRegistration(t, repo, "yesterday", 1)
	fresh, err := repo.UpdateCheckin(ctx, yesterday.RegistrationID, now.AddDate(0, 0, -1))
	require.NoError(t, err)
	require.True(t, fresh)

	require.NoError(t, repo.RecordWinner(ctx, &raffleModel.RaffleWinnerModel{
		RaffleWinnerRegistrationID: wonAlready.RegistrationID,
		RaffleWinnerName:           wonAlready.RegistrationName,
	}))

	// tanpa filter event: semua yang check-in hari ini kecuali pemenang
	eligible, err := repo.ListEligible(ctx, 0, now)
	require.NoError(t, err)
	ids := []uint{}
	for _, r := range eligible {
		ids = append(ids, r.RegistrationID)
	}
	assert.ElementsMatch(t, []uint{checkedToday.RegistrationID, otherEvent.RegistrationID}, ids)

	// filter event 1
	eligible, err = repo.ListEligible(ctx, 1, now)
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, checkedToday.RegistrationID, eligible[0].RegistrationID)
}

func TestFindEventByIDNotFound(t *testing.T) {
	repo := NewInMemoryRepository()
	_, err := repo.FindEventByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrEventNotFound)

	repo.SeedEvent(eventModel.EventModel{EventID: 42, EventName: "Tech Meetup"})
	ev, err := repo.FindEventByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Tech Meetup", ev.EventName)
}

func TestDeleteEventReleasesRegistrations(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()
	repo.SeedEvent(eventModel.EventModel{EventID: 7, EventName: "Tech Meetup"})

	evID := uint(7)
	evDate := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	reg := &model.RegistrationModel{
		RegistrationName:      "Asha Rao",
		RegistrationEmail:     "asha@example.com",
		RegistrationEventID:   &evID,
		RegistrationEventName: "Tech Meetup",
		RegistrationEventDate: &evDate,
	}
	require.NoError(t, repo.Insert(ctx, reg))

	require.NoError(t, repo.DeleteEvent(ctx, 7))
	_, err := repo.FindEventByID(ctx, 7)
	assert.ErrorIs(t, err, ErrEventNotFound)

	// registrasi selamat: referensi event NULL, snapshot tetap utuh
	stored, err := repo.FindByID(ctx, reg.RegistrationID)
	require.NoError(t, err)
	assert.Nil(t, stored.RegistrationEventID)
	assert.Equal(t, "Tech Meetup", stored.RegistrationEventName)
	require.NotNil(t, stored.RegistrationEventDate)
	assert.Equal(t, evDate, *stored.RegistrationEventDate)
}

func TestDeleteEventUnknownID(t *testing.T) {
	repo := NewInMemoryRepository()
	err := repo.DeleteEvent(context.Background(), 42)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestListWinnersNewestFirst(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.RecordWinner(ctx, &raffleModel.RaffleWinnerModel{
			RaffleWinnerRegistrationID: 1,
			RaffleWinnerName:           name,
		}))
	}

	winners, err := repo.ListWinners(ctx)
	require.NoError(t, err)
	require.Len(t, winners, 3)
	assert.Equal(t, "third", winners[0].RaffleWinnerName)
	assert.Equal(t, "first", winners[2].RaffleWinnerName)
}
