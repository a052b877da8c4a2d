package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"teacher-booking-api/internal/booking"
	"teacher-booking-api/internal/model"
)

// PutTeacher inserts a teacher; an existing row with the same name is kept.
func (s *Store) PutTeacher(ctx context.Context, t *model.Teacher) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO teachers (id, name, subject, available_times) VALUES ($1,$2,$3,$4)
		 ON CONFLICT (name) DO NOTHING`,
		t.ID, t.Name, t.Subject, model.JoinSlots(t.AvailableTimes),
	)
	if err != nil {
		return fmt.Errorf("put teacher: %w", err)
	}
	return nil
}

func (s *Store) FindTeacher(ctx context.Context, name string) (*model.Teacher, error) {
	var (
		t     model.Teacher
		times string
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, subject, available_times FROM teachers WHERE name = $1`, name,
	).Scan(&t.ID, &t.Name, &t.Subject, &times)
	if isNoRows(err) {
		return nil, booking.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find teacher: %w", err)
	}
	t.AvailableTimes = model.ParseSlots(times)
	return &t, nil
}

func (s *Store) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, subject, available_times FROM teachers ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	defer rows.Close()

	var out []model.Teacher
	for rows.Next() {
		var (
			t     model.Teacher
			times string
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.Subject, &times); err != nil {
			return nil, fmt.Errorf("scan teacher: %w", err)
		}
		t.AvailableTimes = model.ParseSlots(times)
		out = append(out, t)
	}
	return out, rows.Err()
}
