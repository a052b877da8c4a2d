package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"teacher-booking-api/internal/booking"
	"teacher-booking-api/internal/model"
)

var ErrBadToken = errors.New("invalid token")

const DefaultTTL = 24 * time.Hour

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// Hasher hashes and checks passwords.
type Hasher interface {
	Hash(pw string) (string, error)
	Check(hash, pw string) bool
}

type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(pw string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	return string(h), err
}

func (Bcrypt) Check(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

type Claims struct {
	Username    string     `json:"username"`
	Role        model.Role `json:"role"`
	TeacherName string     `json:"teacherName,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() model.Identity {
	return model.Identity{Username: c.Username, Role: c.Role, TeacherName: c.TeacherName}
}

// Issuer signs and verifies HS256 session tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the account. The claims are fixed for the
// token's lifetime.
func (is *Issuer) Issue(a *model.Account) (string, error) {
	now := is.now()
	c := Claims{
		Username:    a.Username,
		Role:        a.Role,
		TeacherName: a.TeacherName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.ID,
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(is.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(is.secret)
}

func (is *Issuer) Verify(raw string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return is.secret, nil
	}, jwt.WithTimeFunc(is.now))
	if err != nil {
		return nil, err
	}
	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrBadToken
	}
	if !c.Role.Valid() {
		return nil, ErrBadToken
	}
	return c, nil
}

// Gate turns bearer tokens into caller identities.
type Gate struct {
	issuer *Issuer
}

func NewGate(is *Issuer) *Gate {
	return &Gate{issuer: is}
}

// Authenticate accepts either a raw token or an Authorization header value.
func (g *Gate) Authenticate(header string) (model.Identity, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(header), "Bearer "))
	if raw == "" {
		return model.Identity{}, fmt.Errorf("%w: no token provided", booking.ErrUnauthorized)
	}
	c, err := g.issuer.Verify(raw)
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: %v", booking.ErrUnauthorized, err)
	}
	return c.Identity(), nil
}
