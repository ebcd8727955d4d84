package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRequestValidation(t *testing.T) {
	validate := validator.New()
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	valid := EventRequest{
		EventName:    "Tech Meetup",
		EventStartAt: start,
		EventEndAt:   start.Add(8 * time.Hour),
	}
	assert.NoError(t, validate.Struct(valid))

	// end sebelum start harus ditolak
	backwards := valid
	backwards.EventEndAt = start.Add(-time.Hour)
	assert.Error(t, validate.Struct(backwards))

	// nama terlalu pendek
	shortName := valid
	shortName.EventName = "ab"
	assert.Error(t, validate.Struct(shortName))
}

func TestEventUpdateRequestValidateWindow(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)

	// update parsial yang menggeser end sebelum start tersimpan harus ditolak
	badEnd := start.Add(-time.Hour)
	req := EventUpdateRequest{EventEndAt: &badEnd}
	assert.Error(t, req.ValidateWindow(start, end))

	// begitu juga start yang melompati end tersimpan
	badStart := end.Add(time.Hour)
	req = EventUpdateRequest{EventStartAt: &badStart}
	assert.Error(t, req.ValidateWindow(start, end))

	// geser keduanya sekaligus ke rentang baru yang valid
	newStart := start.AddDate(0, 0, 7)
	newEnd := newStart.Add(4 * time.Hour)
	req = EventUpdateRequest{EventStartAt: &newStart, EventEndAt: &newEnd}
	assert.NoError(t, req.ValidateWindow(start, end))

	// tanpa field waktu: rentang tersimpan tetap valid
	req = EventUpdateRequest{}
	assert.NoError(t, req.ValidateWindow(start, end))
}

func TestEventRequestToModelSnapshotsFields(t *testing.T) {
	prize := "Sepeda"
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	req := EventRequest{
		EventName:        "Tech Meetup",
		EventStartAt:     start,
		EventEndAt:       start.Add(8 * time.Hour),
		EventLocation:    "Aula Utama",
		EventRafflePrize: &prize,
	}

	m := req.ToModel(nil)
	require.NotNil(t, m)
	assert.Equal(t, "Tech Meetup", m.EventName)
	assert.Equal(t, start, m.EventStartAt)
	require.NotNil(t, m.EventRafflePrize)
	assert.Equal(t, "Sepeda", *m.EventRafflePrize)
	assert.Nil(t, m.EventCreatedBy)
}
