package memstore

import (
	"context"
	"sort"
	"sync"

	"teacher-booking-api/internal/booking"
	"teacher-booking-api/internal/model"
)

type slotKey struct {
	teacher string
	slot    string
}

type entry struct {
	apt model.Appointment
	seq uint64
}

// Ledger is a mutex-guarded appointment set. Every mutation holds the write
// lock across its check and its write.
type Ledger struct {
	mu     sync.RWMutex
	byID   map[string]entry
	bySlot map[slotKey]string
	seq    uint64
}

func NewLedger() *Ledger {
	return &Ledger{
		byID:   make(map[string]entry),
		bySlot: make(map[slotKey]string),
	}
}

func (l *Ledger) Insert(_ context.Context, a *model.Appointment) error {
	k := slotKey{a.TeacherName, a.Slot}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, taken := l.bySlot[k]; taken {
		return booking.ErrSlotTaken
	}
	l.seq++
	l.byID[a.ID] = entry{apt: *a, seq: l.seq}
	l.bySlot[k] = a.ID
	return nil
}

func (l *Ledger) Release(_ context.Context, id, teacherName string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.byID[id]
	if !ok {
		return booking.ErrNotFound
	}
	if e.apt.TeacherName != teacherName {
		return booking.ErrForbidden
	}
	delete(l.byID, id)
	delete(l.bySlot, slotKey{e.apt.TeacherName, e.apt.Slot})
	return nil
}

func (l *Ledger) BookedSlots(_ context.Context, teacherName string) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []string
	for k := range l.bySlot {
		if k.teacher == teacherName {
			out = append(out, k.slot)
		}
	}
	return out, nil
}

// List returns appointments ordered by slot label, oldest first on ties.
func (l *Ledger) List(_ context.Context) ([]model.Appointment, error) {
	l.mu.RLock()
	entries := make([]entry, 0, len(l.byID))
	for _, e := range l.byID {
		entries = append(entries, e)
	}
	l.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].apt.Slot != entries[j].apt.Slot {
			return entries[i].apt.Slot < entries[j].apt.Slot
		}
		return entries[i].seq < entries[j].seq
	})
	out := make([]model.Appointment, len(entries))
	for i, e := range entries {
		out[i] = e.apt
	}
	return out, nil
}
