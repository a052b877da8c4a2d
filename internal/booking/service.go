package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"teacher-booking-api/internal/model"
)

// Directory resolves teachers. FindTeacher returns ErrNotFound for unknown names.
type Directory interface {
	FindTeacher(ctx context.Context, name string) (*model.Teacher, error)
	ListTeachers(ctx context.Context) ([]model.Teacher, error)
}

// Ledger holds live appointments.
//
// Insert must fail with ErrSlotTaken when the (teacher, slot) pair is already
// live, and the check must be atomic with the write. Release deletes the
// appointment only if it belongs to teacherName, returning ErrNotFound or
// ErrForbidden otherwise, again as one atomic step.
type Ledger interface {
	Insert(ctx context.Context, a *model.Appointment) error
	Release(ctx context.Context, id, teacherName string) error
	BookedSlots(ctx context.Context, teacherName string) ([]string, error)
	List(ctx context.Context) ([]model.Appointment, error)
}

type Service struct {
	dir    Directory
	ledger Ledger
	logger *zap.Logger
}

func NewService(dir Directory, ledger Ledger, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{dir: dir, ledger: ledger, logger: logger}
}

func (s *Service) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	ts, err := s.dir.ListTeachers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return ts, nil
}

// FreeSlots returns the teacher's declared times that are not booked, in
// declared order.
func (s *Service) FreeSlots(ctx context.Context, teacherName string) ([]string, error) {
	teacherName = strings.TrimSpace(teacherName)
	if teacherName == "" {
		return nil, fmt.Errorf("%w: teacher name required", ErrInvalidArgument)
	}

	t, err := s.dir.FindTeacher(ctx, teacherName)
	if err != nil {
		return nil, fmt.Errorf("find teacher %q: %w", teacherName, err)
	}

	booked, err := s.ledger.BookedSlots(ctx, t.Name)
	if err != nil {
		return nil, fmt.Errorf("booked slots: %w", err)
	}
	return subtract(t.AvailableTimes, booked), nil
}

func subtract(available, booked []string) []string {
	taken := make(map[string]bool, len(booked))
	for _, b := range booked {
		taken[b] = true
	}
	out := []string{}
	for _, slot := range available {
		if taken[slot] {
			continue
		}
		// repeated declared labels count once
		taken[slot] = true
		out = append(out, slot)
	}
	return out
}

func (s *Service) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	apts, err := s.ledger.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return apts, nil
}

// Reserve books slot with teacherName for studentName. The student name is
// self-asserted.
func (s *Service) Reserve(ctx context.Context, studentName, teacherName, slot string) (*model.Appointment, error) {
	studentName = strings.TrimSpace(studentName)
	teacherName = strings.TrimSpace(teacherName)
	slot = strings.TrimSpace(slot)
	if studentName == "" || teacherName == "" || slot == "" {
		return nil, fmt.Errorf("%w: student name, teacher name and time are required", ErrInvalidArgument)
	}

	t, err := s.dir.FindTeacher(ctx, teacherName)
	if err != nil {
		return nil, fmt.Errorf("find teacher %q: %w", teacherName, err)
	}
	if !t.Offers(slot) {
		return nil, fmt.Errorf("%w: %s has no %s slot", ErrInvalidSlot, t.Name, slot)
	}

	apt := &model.Appointment{
		ID:          uuid.New().String(),
		StudentName: studentName,
		TeacherName: t.Name,
		Slot:        slot,
		CreatedAt:   time.Now(),
	}
	if err := s.ledger.Insert(ctx, apt); err != nil {
		return nil, fmt.Errorf("reserve %s/%s: %w", t.Name, slot, err)
	}

	s.logger.Info("appointment booked",
		zap.String("appointment_id", apt.ID),
		zap.String("student", apt.StudentName),
		zap.String("teacher", apt.TeacherName),
		zap.String("slot", apt.Slot))
	return apt, nil
}

// Cancel removes an appointment on behalf of caller. Only teachers may cancel
// and only appointments booked against their own name.
func (s *Service) Cancel(ctx context.Context, id string, caller model.Identity) error {
	if caller.Role != model.RoleTeacher {
		return fmt.Errorf("%w: only teachers can cancel appointments", ErrForbidden)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: appointment id required", ErrInvalidArgument)
	}

	if err := s.ledger.Release(ctx, id, caller.TeacherName); err != nil {
		return fmt.Errorf("cancel %s: %w", id, err)
	}

	s.logger.Info("appointment cancelled",
		zap.String("appointment_id", id),
		zap.String("by", caller.Username),
		zap.String("teacher", caller.TeacherName))
	return nil
}
