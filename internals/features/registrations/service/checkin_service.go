package service

import (
	"context"
	"errors"
	"time"

	"eventku_backend/internals/features/registrations/repository"
)

// Status hasil gate check-in.
type CheckinStatus int

const (
	CheckinFresh      CheckinStatus = iota // transisi baru: belum check-in → check-in
	CheckinAlready                         // sudah check-in sebelumnya (bukan error — "welcome back")
	CheckinWrongEvent                      // QR valid tapi bukan untuk event kiosk ini
	CheckinNotFound                        // registrationId tidak dikenal
)

type CheckinResult struct {
	Status    CheckinStatus
	Name      string
	EventName string // nama event registrasi; untuk WrongEvent ini event yang BENAR
}

// CheckinGate mentransisikan tepat satu registrasi dari "belum check-in" ke
// "check-in", atau melaporkan alasannya.
type CheckinGate struct {
	repo repository.Repository
}

func NewCheckinGate(repo repository.Repository) *CheckinGate {
	return &CheckinGate{repo: repo}
}

// Checkin memproses satu scan. eventID = 0 berarti kiosk tidak membatasi
// event (scan diterima untuk event apa pun).
//
// Atomisitas: transisi dilakukan lewat satu conditional update pada flag, jadi
// dua scan bersamaan untuk id yang sama menghasilkan tepat satu CheckinFresh;
// pemanggil kedua melihat CheckinAlready.
func (g *CheckinGate) Checkin(ctx context.Context, registrationID, eventID uint) (CheckinResult, error) {
	reg, err := g.repo.FindByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return CheckinResult{Status: CheckinNotFound}, nil
		}
		return CheckinResult{}, err
	}

	// QR harus cocok dengan event yang dipilih kiosk. Registrasi yang
	// event-nya sudah dihapus (referensi nil) juga dianggap mismatch —
	// nama event diambil dari snapshot supaya petugas tahu QR ini punya siapa.
	if eventID != 0 && (reg.RegistrationEventID == nil || *reg.RegistrationEventID != eventID) {
		return CheckinResult{
			Status:    CheckinWrongEvent,
			Name:      reg.RegistrationName,
			EventName: reg.RegistrationEventName,
		}, nil
	}

	fresh, err := g.repo.UpdateCheckin(ctx, registrationID, time.Now())
	if err != nil {
		return CheckinResult{}, err
	}

	if !fresh {
		return CheckinResult{
			Status: CheckinAlready,
			Name:   reg.RegistrationName,
		}, nil
	}

	return CheckinResult{
		Status:    CheckinFresh,
		Name:      reg.RegistrationName,
		EventName: reg.RegistrationEventName,
	}, nil
}
