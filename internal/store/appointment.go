package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"teacher-booking-api/internal/booking"
	"teacher-booking-api/internal/model"
)

const slotConstraint = "appointments_teacher_slot_key"

// Insert relies on the (teacher_name, slot_label) unique constraint, so the
// availability check and the write are a single statement.
func (s *Store) Insert(ctx context.Context, a *model.Appointment) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO appointments (id, student_name, teacher_name, slot_label)
		 VALUES ($1,$2,$3,$4) RETURNING created_at`,
		a.ID, a.StudentName, a.TeacherName, a.Slot,
	).Scan(&a.CreatedAt)
	if isUnique(err, slotConstraint) {
		return booking.ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (s *Store) Release(ctx context.Context, id, teacherName string) error {
	if _, err := uuid.Parse(id); err != nil {
		return booking.ErrNotFound
	}

	tag, err := s.pool.Exec(ctx,
		`DELETE FROM appointments WHERE id = $1 AND teacher_name = $2`, id, teacherName)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// nothing deleted: either gone already or someone else's
	var exists bool
	err = s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM appointments WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check appointment: %w", err)
	}
	if exists {
		return booking.ErrForbidden
	}
	return booking.ErrNotFound
}

func (s *Store) BookedSlots(ctx context.Context, teacherName string) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT slot_label FROM appointments WHERE teacher_name = $1`, teacherName)
	if err != nil {
		return nil, fmt.Errorf("booked slots: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		out = append(out, slot)
	}
	return out, rows.Err()
}

func (s *Store) List(ctx context.Context) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, student_name, teacher_name, slot_label, created_at
		 FROM appointments
		 ORDER BY slot_label COLLATE "C", created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.StudentName, &a.TeacherName, &a.Slot, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
