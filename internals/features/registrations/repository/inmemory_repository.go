package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	eventModel "eventku_backend/internals/features/events/model"
	raffleModel "eventku_backend/internals/features/raffle/model"
	"eventku_backend/internals/features/registrations/model"
)

// InMemoryRepository dipakai di test. Semantiknya mengikuti implementasi
// GORM: UpdateCheckin atomik lewat mutex, ListEligible selalu menghitung
// ulang dari state terkini.
type InMemoryRepository struct {
	mu            sync.Mutex
	events        map[uint]eventModel.EventModel
	registrations map[uint]*model.RegistrationModel
	winners       []raffleModel.RaffleWinnerModel
	nextRegID     uint
	nextWinnerID  uint
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		events:        map[uint]eventModel.EventModel{},
		registrations: map[uint]*model.RegistrationModel{},
		nextRegID:     1,
		nextWinnerID:  1,
	}
}

// SeedEvent menambahkan event dengan ID eksplisit (setup test).
func (r *InMemoryRepository) SeedEvent(ev eventModel.EventModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[ev.EventID] = ev
}

func (r *InMemoryRepository) FindEventByID(_ context.Context, id uint) (*eventModel.EventModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	out := ev
	return &out, nil
}

func (r *InMemoryRepository) DeleteEvent(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return ErrEventNotFound
	}
	delete(r.events, id)
	// SET NULL: registrasi tetap hidup, hanya referensi event yang dilepas
	for _, reg := range r.registrations {
		if reg.RegistrationEventID != nil && *reg.RegistrationEventID == id {
			reg.RegistrationEventID = nil
		}
	}
	return nil
}

func (r *InMemoryRepository) Insert(_ context.Context, reg *model.RegistrationModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg.RegistrationID = r.nextRegID
	r.nextRegID++
	if reg.RegistrationCreatedAt.IsZero() {
		reg.RegistrationCreatedAt = time.Now()
	}
	cp := *reg
	r.registrations[reg.RegistrationID] = &cp
	return nil
}

func (r *InMemoryRepository) FindByID(_ context.Context, id uint) (*model.RegistrationModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.registrations[id]
	if !ok {
		return nil, ErrRegistrationNotFound
	}
	out := *reg
	return &out, nil
}

func (r *InMemoryRepository) UpdateCheckin(_ context.Context, id uint, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.registrations[id]
	if !ok {
		return false, nil
	}
	if reg.RegistrationCheckedIn {
		return false, nil
	}
	reg.RegistrationCheckedIn = true
	t := at
	reg.RegistrationCheckedInAt = &t
	return true, nil
}

func (r *InMemoryRepository) ResetCheckins(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, reg := range r.registrations {
		if reg.RegistrationCheckedIn {
			reg.RegistrationCheckedIn = false
			reg.RegistrationCheckedInAt = nil
			n++
		}
	}
	return n, nil
}

func (r *InMemoryRepository) ListEligible(_ context.Context, eventID uint, day time.Time) ([]model.RegistrationModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	won := map[uint]struct{}{}
	for _, w := range r.winners {
		won[w.RaffleWinnerRegistrationID] = struct{}{}
	}

	target := day.Format("2006-01-02")
	var out []model.RegistrationModel
	for _, reg := range r.registrations {
		if !reg.RegistrationCheckedIn || reg.RegistrationCheckedInAt == nil {
			continue
		}
		if reg.RegistrationCheckedInAt.Format("2006-01-02") != target {
			continue
		}
		if _, ok := won[reg.RegistrationID]; ok {
			continue
		}
		if eventID != 0 && (reg.RegistrationEventID == nil || *reg.RegistrationEventID != eventID) {
			continue
		}
		out = append(out, *reg)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RegistrationID < out[j].RegistrationID
	})
	return out, nil
}

func (r *InMemoryRepository) RecordWinner(_ context.Context, w *raffleModel.RaffleWinnerModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w.RaffleWinnerID = r.nextWinnerID
	r.nextWinnerID++
	if w.RaffleWinnerCreatedAt.IsZero() {
		w.RaffleWinnerCreatedAt = time.Now()
	}
	r.winners = append(r.winners, *w)
	return nil
}

func (r *InMemoryRepository) ListWinners(_ context.Context) ([]raffleModel.RaffleWinnerModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]raffleModel.RaffleWinnerModel, len(r.winners))
	copy(out, r.winners)
	// terbaru dulu, meniru ORDER BY raffle_winner_id DESC
	sort.Slice(out, func(i, j int) bool {
		return out[i].RaffleWinnerID > out[j].RaffleWinnerID
	})
	return out, nil
}
