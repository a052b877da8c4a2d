package model_test

import (
	"reflect"
	"testing"

	"teacher-booking-api/internal/model"
)

func TestParseSlots(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"plain", "10:00,11:00,12:00", []string{"10:00", "11:00", "12:00"}},
		{"spaces", " 10:00 , 11:00", []string{"10:00", "11:00"}},
		{"duplicates collapse", "10:00,11:00,10:00", []string{"10:00", "11:00"}},
		{"empties dropped", "10:00,,  ,11:00,", []string{"10:00", "11:00"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.ParseSlots(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSlots(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestJoinSlots(t *testing.T) {
	got := model.JoinSlots([]string{"9:00", " 10:00", "9:00"})
	if got != "9:00,10:00" {
		t.Errorf("got %q", got)
	}
}

func TestTeacherOffers(t *testing.T) {
	tc := &model.Teacher{Name: "Sir Ali", AvailableTimes: []string{"10:00", "11:00"}}
	if !tc.Offers("10:00") {
		t.Error("expected 10:00 to be offered")
	}
	if tc.Offers("09:00") {
		t.Error("09:00 should not be offered")
	}
}

func TestRoleValid(t *testing.T) {
	if !model.RoleStudent.Valid() || !model.RoleTeacher.Valid() {
		t.Fatal("known roles must be valid")
	}
	if model.Role("admin").Valid() {
		t.Error("admin is not a role")
	}
}

func TestAccountLinkValid(t *testing.T) {
	tests := []struct {
		name string
		a    model.Account
		want bool
	}{
		{"teacher with link", model.Account{Role: model.RoleTeacher, TeacherName: "Sir Ali"}, true},
		{"student without link", model.Account{Role: model.RoleStudent}, true},
		{"teacher without link", model.Account{Role: model.RoleTeacher}, false},
		{"student with link", model.Account{Role: model.RoleStudent, TeacherName: "Sir Ali"}, false},
		{"unknown role", model.Account{Role: "admin"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.LinkValid(); got != tt.want {
				t.Errorf("LinkValid() = %v, want %v", got, tt.want)
			}
		})
	}
}
