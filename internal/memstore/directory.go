// Package memstore keeps teachers, accounts and appointments in process
// memory. It is the default backend when no DATABASE_URL is configured.
package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"teacher-booking-api/internal/booking"
	"teacher-booking-api/internal/model"
)

type Directory struct {
	mu       sync.RWMutex
	teachers []model.Teacher
	byName   map[string]int
	accounts map[string]model.Account
}

func NewDirectory() *Directory {
	return &Directory{
		byName:   make(map[string]int),
		accounts: make(map[string]model.Account),
	}
}

// PutTeacher adds a teacher, keeping an existing record with the same name.
func (d *Directory) PutTeacher(_ context.Context, t *model.Teacher) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.byName[t.Name]; ok {
		return nil
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	cp := *t
	cp.AvailableTimes = model.ParseSlots(model.JoinSlots(t.AvailableTimes))
	d.byName[t.Name] = len(d.teachers)
	d.teachers = append(d.teachers, cp)
	return nil
}

func (d *Directory) FindTeacher(_ context.Context, name string) (*model.Teacher, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	i, ok := d.byName[name]
	if !ok {
		return nil, booking.ErrNotFound
	}
	t := copyTeacher(d.teachers[i])
	return &t, nil
}

func (d *Directory) ListTeachers(_ context.Context) ([]model.Teacher, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.Teacher, len(d.teachers))
	for i, t := range d.teachers {
		out[i] = copyTeacher(t)
	}
	return out, nil
}

func copyTeacher(t model.Teacher) model.Teacher {
	t.AvailableTimes = append([]string(nil), t.AvailableTimes...)
	return t
}

func (d *Directory) CreateAccount(_ context.Context, a *model.Account) error {
	if !a.LinkValid() {
		return fmt.Errorf("%w: role %q with teacher %q", booking.ErrInvalidArgument, a.Role, a.TeacherName)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.accounts[a.Username]; ok {
		return booking.ErrAccountExists
	}
	if a.Role == model.RoleTeacher {
		if _, ok := d.byName[a.TeacherName]; !ok {
			return fmt.Errorf("%w: teacher %q", booking.ErrNotFound, a.TeacherName)
		}
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	d.accounts[a.Username] = *a
	return nil
}

func (d *Directory) FindAccount(_ context.Context, username string) (*model.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	a, ok := d.accounts[username]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return &a, nil
}
