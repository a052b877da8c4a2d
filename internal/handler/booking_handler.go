package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "teacher-booking-api/api/booking/v1"
	"teacher-booking-api/internal/middleware"
	"teacher-booking-api/internal/model"
)

func (h *Handler) ListTeachers(ctx context.Context, _ *pb.ListTeachersRequest) (*pb.ListTeachersResponse, error) {
	ts, err := h.svc.ListTeachers(ctx)
	if err != nil {
		return nil, h.toStatus("list teachers", err)
	}
	out := make([]*pb.Teacher, len(ts))
	for i := range ts {
		out[i] = teacherProto(&ts[i])
	}
	return &pb.ListTeachersResponse{Teachers: out}, nil
}

func (h *Handler) FreeSlots(ctx context.Context, req *pb.FreeSlotsRequest) (*pb.FreeSlotsResponse, error) {
	slots, err := h.svc.FreeSlots(ctx, req.TeacherName)
	if err != nil {
		return nil, h.toStatus("free slots", err)
	}
	return &pb.FreeSlotsResponse{Slots: slots}, nil
}

func (h *Handler) ListAppointments(ctx context.Context, _ *pb.ListAppointmentsRequest) (*pb.ListAppointmentsResponse, error) {
	apts, err := h.svc.ListAppointments(ctx)
	if err != nil {
		return nil, h.toStatus("list appointments", err)
	}
	out := make([]*pb.Appointment, len(apts))
	for i := range apts {
		out[i] = appointmentProto(&apts[i])
	}
	return &pb.ListAppointmentsResponse{Appointments: out}, nil
}

func (h *Handler) BookAppointment(ctx context.Context, req *pb.BookAppointmentRequest) (*pb.BookAppointmentResponse, error) {
	apt, err := h.svc.Reserve(ctx, req.StudentName, req.TeacherName, req.Slot)
	if err != nil {
		return nil, h.toStatus("book appointment", err)
	}
	return &pb.BookAppointmentResponse{Appointment: appointmentProto(apt)}, nil
}

func (h *Handler) CancelAppointment(ctx context.Context, req *pb.CancelAppointmentRequest) (*pb.CancelAppointmentResponse, error) {
	caller, ok := middleware.IdentityFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no token provided")
	}
	if err := h.svc.Cancel(ctx, req.Id, caller); err != nil {
		return nil, h.toStatus("cancel appointment", err)
	}
	return &pb.CancelAppointmentResponse{}, nil
}

func teacherProto(t *model.Teacher) *pb.Teacher {
	return &pb.Teacher{
		Id:             t.ID,
		Name:           t.Name,
		Subject:        t.Subject,
		AvailableTimes: t.AvailableTimes,
	}
}

func appointmentProto(a *model.Appointment) *pb.Appointment {
	return &pb.Appointment{
		Id:          a.ID,
		StudentName: a.StudentName,
		TeacherName: a.TeacherName,
		Slot:        a.Slot,
	}
}
