package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "teacher-booking-api/api/booking/v1"
	"teacher-booking-api/internal/auth"
	"teacher-booking-api/internal/booking"
	"teacher-booking-api/internal/model"
)

// Accounts is the account half of the directory.
type Accounts interface {
	CreateAccount(ctx context.Context, a *model.Account) error
	FindAccount(ctx context.Context, username string) (*model.Account, error)
}

type Handler struct {
	pb.UnimplementedBookingServiceServer
	svc      *booking.Service
	accounts Accounts
	hasher   auth.Hasher
	issuer   *auth.Issuer
	logger   *zap.Logger
}

func New(svc *booking.Service, accounts Accounts, hasher auth.Hasher, issuer *auth.Issuer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, accounts: accounts, hasher: hasher, issuer: issuer, logger: logger}
}

// toStatus maps the booking taxonomy onto grpc codes. Unknown errors are
// logged and reported as opaque internal errors.
func (h *Handler) toStatus(op string, err error) error {
	var code codes.Code
	var msg string
	switch {
	case errors.Is(err, booking.ErrInvalidArgument):
		code, msg = codes.InvalidArgument, err.Error()
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		code, msg = codes.InvalidArgument, "password too long"
	case errors.Is(err, booking.ErrNotFound):
		code, msg = codes.NotFound, "not found"
	case errors.Is(err, booking.ErrInvalidSlot):
		code, msg = codes.FailedPrecondition, "invalid time slot, teacher is not available at this time"
	case errors.Is(err, booking.ErrSlotTaken):
		code, msg = codes.AlreadyExists, "this time slot is already booked"
	case errors.Is(err, booking.ErrUnauthorized):
		code, msg = codes.Unauthenticated, "invalid token"
	case errors.Is(err, booking.ErrForbidden):
		code, msg = codes.PermissionDenied, "not allowed to cancel this appointment"
	case errors.Is(err, booking.ErrAccountExists):
		code, msg = codes.AlreadyExists, "username already exists"
	default:
		h.logger.Error(op+" failed", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(code, msg)
}
