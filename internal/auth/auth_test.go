package auth_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"teacher-booking-api/internal/auth"
	"teacher-booking-api/internal/booking"
	"teacher-booking-api/internal/model"
)

const secret = "test-secret"

var teacherAcct = &model.Account{ID: "acct-1", Username: "sirali", Role: model.RoleTeacher, TeacherName: "Sir Ali"}

func TestBcrypt(t *testing.T) {
	h := auth.Bcrypt{Cost: bcrypt.MinCost}
	hash, err := h.Hash("1234")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "1234" {
		t.Fatal("hash equals password")
	}
	if !h.Check(hash, "1234") {
		t.Error("correct password rejected")
	}
	if h.Check(hash, "4321") {
		t.Error("wrong password accepted")
	}
}

func TestIssueVerify(t *testing.T) {
	is := auth.NewIssuer(secret, time.Hour)
	tok, err := is.Issue(teacherAcct)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	c, err := is.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if c.Username != "sirali" || c.Role != model.RoleTeacher || c.TeacherName != "Sir Ali" {
		t.Errorf("claims: %+v", c)
	}
	if c.Subject != "acct-1" {
		t.Errorf("subject: %s", c.Subject)
	}
	if diff := time.Until(c.ExpiresAt.Time); diff < 59*time.Minute || diff > 61*time.Minute {
		t.Errorf("expected ~1h expiry, got %v", diff)
	}
}

func TestDefaultTTL(t *testing.T) {
	is := auth.NewIssuer(secret, 0)
	tok, _ := is.Issue(teacherAcct)
	c, err := is.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if diff := time.Until(c.ExpiresAt.Time); diff < 23*time.Hour || diff > 25*time.Hour {
		t.Errorf("expected ~24h expiry, got %v", diff)
	}
}

func TestExpiredToken(t *testing.T) {
	is := auth.NewIssuer(secret, time.Hour)
	start := time.Now()
	is.SetClock(func() time.Time { return start })
	tok, _ := is.Issue(teacherAcct)

	is.SetClock(func() time.Time { return start.Add(2 * time.Hour) })
	if _, err := is.Verify(tok); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAlgorithmConfusion(t *testing.T) {
	is := auth.NewIssuer(secret, time.Hour)
	tok, _ := is.Issue(teacherAcct)

	if _, err := auth.NewIssuer("wrong-secret", time.Hour).Verify(tok); err == nil {
		t.Fatal("expected error for wrong secret")
	}
	if _, err := is.Verify("not.a.token"); err == nil {
		t.Fatal("expected error for garbage token")
	}

	// unsigned token must be refused
	none := jwt.NewWithClaims(jwt.SigningMethodNone, auth.Claims{Username: "x", Role: model.RoleTeacher})
	raw, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := is.Verify(raw); err == nil {
		t.Fatal("alg=none accepted")
	}
}

func TestUnknownRoleRejected(t *testing.T) {
	is := auth.NewIssuer(secret, time.Hour)
	tok, _ := is.Issue(&model.Account{Username: "x", Role: "admin"})
	if _, err := is.Verify(tok); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestGateAuthenticate(t *testing.T) {
	is := auth.NewIssuer(secret, time.Hour)
	g := auth.NewGate(is)
	tok, _ := is.Issue(teacherAcct)

	for _, header := range []string{tok, "Bearer " + tok} {
		id, err := g.Authenticate(header)
		if err != nil {
			t.Fatalf("authenticate %q: %v", header[:10], err)
		}
		if id != (model.Identity{Username: "sirali", Role: model.RoleTeacher, TeacherName: "Sir Ali"}) {
			t.Errorf("identity: %+v", id)
		}
	}

	for _, header := range []string{"", "Bearer ", "Bearer " + strings.Repeat("x", 20)} {
		if _, err := g.Authenticate(header); !errors.Is(err, booking.ErrUnauthorized) {
			t.Errorf("header %q: expected ErrUnauthorized, got %v", header, err)
		}
	}
}
