package handler

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "teacher-booking-api/api/booking/v1"
	"teacher-booking-api/internal/auth"
	"teacher-booking-api/internal/booking"
	"teacher-booking-api/internal/model"
)

// Signup registers a student. Teacher accounts are provisioned, never
// self-registered.
func (h *Handler) Signup(ctx context.Context, req *pb.SignupRequest) (*pb.SignupResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "username and password are required")
	}
	if len(req.Password) > auth.MaxPasswordBytes {
		return nil, status.Errorf(codes.InvalidArgument, "password must be at most %d bytes", auth.MaxPasswordBytes)
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		return nil, h.toStatus("hash password", err)
	}

	a := &model.Account{
		Username:     username,
		PasswordHash: hash,
		Role:         model.RoleStudent,
	}
	if err := h.accounts.CreateAccount(ctx, a); err != nil {
		return nil, h.toStatus("create account", err)
	}

	tok, err := h.issuer.Issue(a)
	if err != nil {
		return nil, h.toStatus("issue token", err)
	}
	return &pb.SignupResponse{Token: tok, Username: a.Username, Role: string(a.Role)}, nil
}

func (h *Handler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "username and password are required")
	}

	a, err := h.accounts.FindAccount(ctx, username)
	if errors.Is(err, booking.ErrNotFound) {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}
	if err != nil {
		return nil, h.toStatus("find account", err)
	}
	if !h.hasher.Check(a.PasswordHash, req.Password) {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	tok, err := h.issuer.Issue(a)
	if err != nil {
		return nil, h.toStatus("issue token", err)
	}
	return &pb.LoginResponse{
		Token:       tok,
		Username:    a.Username,
		Role:        string(a.Role),
		TeacherName: a.TeacherName,
	}, nil
}
