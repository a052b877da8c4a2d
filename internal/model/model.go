package model

import (
	"strings"
	"time"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

type Teacher struct {
	ID             string
	Name           string
	Subject        string
	AvailableTimes []string
}

// Offers reports whether slot is one of the teacher's declared times.
func (t *Teacher) Offers(slot string) bool {
	for _, s := range t.AvailableTimes {
		if s == slot {
			return true
		}
	}
	return false
}

type Account struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	TeacherName  string // only set for teacher accounts
	CreatedAt    time.Time
}

// LinkValid reports whether the teacher link matches the role: teacher
// accounts name the teacher they own and student accounts name none.
func (a *Account) LinkValid() bool {
	return a.Role.Valid() && (a.Role == RoleTeacher) == (a.TeacherName != "")
}

type Appointment struct {
	ID          string
	StudentName string
	TeacherName string
	Slot        string
	CreatedAt   time.Time
}

// Identity is what a verified session token says about its bearer,
// frozen at issuance time.
type Identity struct {
	Username    string
	Role        Role
	TeacherName string
}

// ParseSlots splits the stored "10:00,11:00" form into an ordered set.
// Labels are trimmed, empties dropped and repeats collapsed.
func ParseSlots(raw string) []string {
	var out []string
	seen := map[string]bool{}
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func JoinSlots(slots []string) string {
	return strings.Join(ParseSlots(strings.Join(slots, ",")), ",")
}
