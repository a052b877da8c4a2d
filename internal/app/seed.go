package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"teacher-booking-api/internal/auth"
	"teacher-booking-api/internal/booking"
	"teacher-booking-api/internal/model"
)

// Seeder is satisfied by both the memory and the PostgreSQL directory.
type Seeder interface {
	PutTeacher(ctx context.Context, t *model.Teacher) error
	CreateAccount(ctx context.Context, a *model.Account) error
}

type demoTeacher struct {
	username string
	teacher  model.Teacher
}

var demoTeachers = []demoTeacher{
	{"sirali", model.Teacher{Name: "Sir Ali", Subject: "Web Development", AvailableTimes: []string{"10:00", "11:00", "12:00"}}},
	{"misssana", model.Teacher{Name: "Miss Sana", Subject: "Database", AvailableTimes: []string{"13:00", "14:00", "15:00"}}},
	{"mrahmed", model.Teacher{Name: "Mr. Ahmed", Subject: "Data Structures", AvailableTimes: []string{"9:00", "10:00", "11:00"}}},
	{"missfatima", model.Teacher{Name: "Miss Fatima", Subject: "Operating Systems", AvailableTimes: []string{"14:00", "15:00", "16:00"}}},
	{"mrbilal", model.Teacher{Name: "Mr. Bilal", Subject: "Computer Networks", AvailableTimes: []string{"11:00", "12:00", "13:00"}}},
}

const (
	demoTeacherPassword = "1234"
	demoStudent         = "student1"
	demoStudentPassword = "student123"
)

// SeedDemo loads the demo teachers, one teacher account each and a sample
// student. Records that already exist are left alone.
func SeedDemo(ctx context.Context, s Seeder, hasher auth.Hasher, logger *zap.Logger) error {
	teacherHash, err := hasher.Hash(demoTeacherPassword)
	if err != nil {
		return fmt.Errorf("hash: %w", err)
	}
	studentHash, err := hasher.Hash(demoStudentPassword)
	if err != nil {
		return fmt.Errorf("hash: %w", err)
	}

	accounts := []*model.Account{{Username: demoStudent, PasswordHash: studentHash, Role: model.RoleStudent}}
	for _, d := range demoTeachers {
		t := d.teacher
		if err := s.PutTeacher(ctx, &t); err != nil {
			return fmt.Errorf("seed teacher %s: %w", t.Name, err)
		}
		accounts = append(accounts, &model.Account{
			Username:     d.username,
			PasswordHash: teacherHash,
			Role:         model.RoleTeacher,
			TeacherName:  t.Name,
		})
	}

	created := 0
	for _, a := range accounts {
		err := s.CreateAccount(ctx, a)
		if errors.Is(err, booking.ErrAccountExists) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed account %s: %w", a.Username, err)
		}
		created++
	}

	logger.Info("demo data seeded",
		zap.Int("teachers", len(demoTeachers)),
		zap.Int("accounts_created", created))
	return nil
}
