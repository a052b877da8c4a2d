package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"teacher-booking-api/internal/booking"
	"teacher-booking-api/internal/model"
)

func (s *Store) CreateAccount(ctx context.Context, a *model.Account) error {
	if !a.LinkValid() {
		return fmt.Errorf("%w: role %q with teacher %q", booking.ErrInvalidArgument, a.Role, a.TeacherName)
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	var teacher *string
	if a.TeacherName != "" {
		teacher = &a.TeacherName
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO accounts (id, username, password_hash, role, teacher_name)
		 VALUES ($1,$2,$3,$4,$5) RETURNING created_at`,
		a.ID, a.Username, a.PasswordHash, string(a.Role), teacher,
	).Scan(&a.CreatedAt)
	if isUnique(err, "") {
		return booking.ErrAccountExists
	}
	switch code, _ := pgCode(err); code {
	case foreignKeyViolation:
		return fmt.Errorf("%w: teacher %q", booking.ErrNotFound, a.TeacherName)
	case checkViolation:
		return fmt.Errorf("%w: account violates %v", booking.ErrInvalidArgument, err)
	}
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (s *Store) FindAccount(ctx context.Context, username string) (*model.Account, error) {
	var (
		a       model.Account
		role    string
		teacher *string
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, role, teacher_name, created_at
		 FROM accounts WHERE username = $1`, username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &role, &teacher, &a.CreatedAt)
	if isNoRows(err) {
		return nil, booking.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	a.Role = model.Role(role)
	if teacher != nil {
		a.TeacherName = *teacher
	}
	return &a, nil
}
