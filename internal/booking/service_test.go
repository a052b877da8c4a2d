package booking_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"testing"

	"teacher-booking-api/internal/booking"
	"teacher-booking-api/internal/memstore"
	"teacher-booking-api/internal/model"
)

func setup(t *testing.T) *booking.Service {
	t.Helper()
	ctx := context.Background()
	dir := memstore.NewDirectory()
	for _, tc := range []model.Teacher{
		{Name: "Sir Ali", Subject: "Web Development", AvailableTimes: []string{"10:00", "11:00", "12:00"}},
		{Name: "Miss Sana", Subject: "Database", AvailableTimes: []string{"13:00", "14:00", "15:00"}},
	} {
		tc := tc
		if err := dir.PutTeacher(ctx, &tc); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return booking.NewService(dir, memstore.NewLedger(), nil)
}

var (
	sirAli   = model.Identity{Username: "sirali", Role: model.RoleTeacher, TeacherName: "Sir Ali"}
	missSana = model.Identity{Username: "misssana", Role: model.RoleTeacher, TeacherName: "Miss Sana"}
	student  = model.Identity{Username: "student1", Role: model.RoleStudent}
)

func TestFreeSlotsNoBookings(t *testing.T) {
	s := setup(t)
	got, err := s.FreeSlots(context.Background(), "Sir Ali")
	if err != nil {
		t.Fatalf("free slots: %v", err)
	}
	want := []string{"10:00", "11:00", "12:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFreeSlotsUnknownTeacher(t *testing.T) {
	s := setup(t)
	if _, err := s.FreeSlots(context.Background(), "Nobody"); !errors.Is(err, booking.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.FreeSlots(context.Background(), "  "); !errors.Is(err, booking.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestFreeSlotsExcludesBooked(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	if _, err := s.Reserve(ctx, "Amy", "Sir Ali", "11:00"); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	got, _ := s.FreeSlots(ctx, "Sir Ali")
	if !reflect.DeepEqual(got, []string{"10:00", "12:00"}) {
		t.Errorf("got %v", got)
	}
	// other teachers unaffected
	got, _ = s.FreeSlots(ctx, "Miss Sana")
	if len(got) != 3 {
		t.Errorf("Miss Sana: got %v", got)
	}
}

func TestReserveThenSameSlot(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	a, err := s.Reserve(ctx, "Amy", "Sir Ali", "10:00")
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if a.ID == "" {
		t.Fatal("empty id")
	}
	if a.StudentName != "Amy" || a.TeacherName != "Sir Ali" || a.Slot != "10:00" {
		t.Errorf("unexpected appointment %+v", a)
	}

	_, err = s.Reserve(ctx, "Bob", "Sir Ali", "10:00")
	if !errors.Is(err, booking.ErrSlotTaken) {
		t.Errorf("expected ErrSlotTaken, got %v", err)
	}
}

func TestReserveValidation(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	tests := []struct {
		name                   string
		student, teacher, slot string
		want                   error
	}{
		{"empty student", "", "Sir Ali", "10:00", booking.ErrInvalidArgument},
		{"blank teacher", "Amy", "   ", "10:00", booking.ErrInvalidArgument},
		{"empty slot", "Amy", "Sir Ali", "", booking.ErrInvalidArgument},
		{"unknown teacher", "Amy", "Nobody", "10:00", booking.ErrNotFound},
		{"slot not offered", "Amy", "Sir Ali", "09:00", booking.ErrInvalidSlot},
		{"other teacher's slot", "Amy", "Sir Ali", "13:00", booking.ErrInvalidSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Reserve(ctx, tt.student, tt.teacher, tt.slot)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	apts, _ := s.ListAppointments(ctx)
	if len(apts) != 0 {
		t.Errorf("failed reservations left %d appointments", len(apts))
	}
}

func TestReserveTrimsInput(t *testing.T) {
	s := setup(t)
	a, err := s.Reserve(context.Background(), "  Amy ", " Sir Ali", "10:00 ")
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if a.StudentName != "Amy" || a.TeacherName != "Sir Ali" || a.Slot != "10:00" {
		t.Errorf("expected trimmed fields, got %+v", a)
	}
}

func TestCancelRoundTrip(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	a, _ := s.Reserve(ctx, "Amy", "Sir Ali", "10:00")
	apts, _ := s.ListAppointments(ctx)
	if n := count(apts, "Amy", "Sir Ali", "10:00"); n != 1 {
		t.Fatalf("expected 1 listed appointment, got %d", n)
	}

	if err := s.Cancel(ctx, a.ID, sirAli); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	apts, _ = s.ListAppointments(ctx)
	if n := count(apts, "Amy", "Sir Ali", "10:00"); n != 0 {
		t.Errorf("expected 0 after cancel, got %d", n)
	}
	free, _ := s.FreeSlots(ctx, "Sir Ali")
	if len(free) != 3 {
		t.Errorf("freed slot not visible: %v", free)
	}
}

func TestCancelOwnership(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	a, _ := s.Reserve(ctx, "Amy", "Sir Ali", "10:00")

	tests := []struct {
		name   string
		id     string
		caller model.Identity
		want   error
	}{
		{"other teacher", a.ID, missSana, booking.ErrForbidden},
		{"student", a.ID, student, booking.ErrForbidden},
		{"teacher without linked name", a.ID, model.Identity{Username: "x", Role: model.RoleTeacher}, booking.ErrForbidden},
		{"unknown id", "no-such-id", sirAli, booking.ErrNotFound},
		{"blank id", " ", sirAli, booking.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Cancel(ctx, tt.id, tt.caller); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	apts, _ := s.ListAppointments(ctx)
	if len(apts) != 1 {
		t.Errorf("appointment removed by unauthorized caller")
	}
}

func TestConcurrentReserveSingleSlot(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Reserve(ctx, fmt.Sprintf("student-%d", i), "Sir Ali", "12:00")
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	successes, taken := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, booking.ErrSlotTaken):
			taken++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Errorf("expected exactly 1 success, got %d", successes)
	}
	if taken != n-1 {
		t.Errorf("expected %d SlotTaken, got %d", n-1, taken)
	}
}

func TestConcurrentCancelSameID(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	a, _ := s.Reserve(ctx, "Amy", "Sir Ali", "10:00")

	const n = 20
	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.Cancel(ctx, a.ID, sirAli)
		}()
	}
	wg.Wait()
	close(results)

	successes, notFound := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, booking.ErrNotFound):
			notFound++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 || notFound != n-1 {
		t.Errorf("expected 1 success and %d NotFound, got %d and %d", n-1, successes, notFound)
	}
}

// Free slots plus booked slots must always cover the declared availability
// exactly, even while bookings and cancellations are in flight.
func TestFreeSlotsPartitionUnderLoad(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	declared := []string{"10:00", "11:00", "12:00"}

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; ; i++ {
				select {
				case <-stop:
					return
				default:
				}
				a, err := s.Reserve(ctx, fmt.Sprintf("w%d", w), "Sir Ali", declared[i%len(declared)])
				if err == nil {
					s.Cancel(ctx, a.ID, sirAli)
				}
			}
		}(w)
	}

	for i := 0; i < 200; i++ {
		free, err := s.FreeSlots(ctx, "Sir Ali")
		if err != nil {
			t.Fatalf("free slots: %v", err)
		}
		seen := map[string]bool{}
		for _, f := range free {
			if seen[f] {
				t.Fatalf("duplicate free slot %s", f)
			}
			seen[f] = true
		}
		for _, f := range free {
			found := false
			for _, d := range declared {
				found = found || d == f
			}
			if !found {
				t.Fatalf("free slot %s not declared", f)
			}
		}
	}
	close(stop)
	wg.Wait()

	apts, _ := s.ListAppointments(ctx)
	var booked []string
	for _, a := range apts {
		booked = append(booked, a.Slot)
	}
	free, _ := s.FreeSlots(ctx, "Sir Ali")
	union := append(append([]string{}, free...), booked...)
	sort.Strings(union)
	if !reflect.DeepEqual(union, declared) {
		t.Errorf("free ∪ booked = %v, want %v", union, declared)
	}
}

func TestListTeachers(t *testing.T) {
	s := setup(t)
	ts, err := s.ListTeachers(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ts) != 2 {
		t.Errorf("expected 2 teachers, got %d", len(ts))
	}
}

func count(apts []model.Appointment, student, teacher, slot string) int {
	n := 0
	for _, a := range apts {
		if a.StudentName == student && a.TeacherName == teacher && a.Slot == slot {
			n++
		}
	}
	return n
}
