package bookingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "booking.v1.BookingService"

const (
	BookingService_ListTeachers_FullMethodName      = "/" + ServiceName + "/ListTeachers"
	BookingService_FreeSlots_FullMethodName         = "/" + ServiceName + "/FreeSlots"
	BookingService_ListAppointments_FullMethodName  = "/" + ServiceName + "/ListAppointments"
	BookingService_BookAppointment_FullMethodName   = "/" + ServiceName + "/BookAppointment"
	BookingService_CancelAppointment_FullMethodName = "/" + ServiceName + "/CancelAppointment"
	BookingService_Signup_FullMethodName            = "/" + ServiceName + "/Signup"
	BookingService_Login_FullMethodName             = "/" + ServiceName + "/Login"
)

type BookingServiceServer interface {
	ListTeachers(context.Context, *ListTeachersRequest) (*ListTeachersResponse, error)
	FreeSlots(context.Context, *FreeSlotsRequest) (*FreeSlotsResponse, error)
	ListAppointments(context.Context, *ListAppointmentsRequest) (*ListAppointmentsResponse, error)
	BookAppointment(context.Context, *BookAppointmentRequest) (*BookAppointmentResponse, error)
	CancelAppointment(context.Context, *CancelAppointmentRequest) (*CancelAppointmentResponse, error)
	Signup(context.Context, *SignupRequest) (*SignupResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
}

type UnimplementedBookingServiceServer struct{}

func (UnimplementedBookingServiceServer) ListTeachers(context.Context, *ListTeachersRequest) (*ListTeachersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTeachers not implemented")
}
func (UnimplementedBookingServiceServer) FreeSlots(context.Context, *FreeSlotsRequest) (*FreeSlotsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FreeSlots not implemented")
}
func (UnimplementedBookingServiceServer) ListAppointments(context.Context, *ListAppointmentsRequest) (*ListAppointmentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAppointments not implemented")
}
func (UnimplementedBookingServiceServer) BookAppointment(context.Context, *BookAppointmentRequest) (*BookAppointmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method BookAppointment not implemented")
}
func (UnimplementedBookingServiceServer) CancelAppointment(context.Context, *CancelAppointmentRequest) (*CancelAppointmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelAppointment not implemented")
}
func (UnimplementedBookingServiceServer) Signup(context.Context, *SignupRequest) (*SignupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Signup not implemented")
}
func (UnimplementedBookingServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}

func RegisterBookingServiceServer(s grpc.ServiceRegistrar, srv BookingServiceServer) {
	s.RegisterService(&BookingService_ServiceDesc, srv)
}

// unary builds the method table entry for one RPC.
func unary[Req any, P interface {
	*Req
	Message
}](name string, call func(BookingServiceServer, context.Context, P) (any, error)) grpc.MethodDesc {
	full := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := P(new(Req))
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(BookingServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(srv.(BookingServiceServer), ctx, req.(P))
			})
		},
	}
}

var BookingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BookingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary[ListTeachersRequest]("ListTeachers", func(s BookingServiceServer, ctx context.Context, in *ListTeachersRequest) (any, error) {
			return s.ListTeachers(ctx, in)
		}),
		unary[FreeSlotsRequest]("FreeSlots", func(s BookingServiceServer, ctx context.Context, in *FreeSlotsRequest) (any, error) {
			return s.FreeSlots(ctx, in)
		}),
		unary[ListAppointmentsRequest]("ListAppointments", func(s BookingServiceServer, ctx context.Context, in *ListAppointmentsRequest) (any, error) {
			return s.ListAppointments(ctx, in)
		}),
		unary[BookAppointmentRequest]("BookAppointment", func(s BookingServiceServer, ctx context.Context, in *BookAppointmentRequest) (any, error) {
			return s.BookAppointment(ctx, in)
		}),
		unary[CancelAppointmentRequest]("CancelAppointment", func(s BookingServiceServer, ctx context.Context, in *CancelAppointmentRequest) (any, error) {
			return s.CancelAppointment(ctx, in)
		}),
		unary[SignupRequest]("Signup", func(s BookingServiceServer, ctx context.Context, in *SignupRequest) (any, error) {
			return s.Signup(ctx, in)
		}),
		unary[LoginRequest]("Login", func(s BookingServiceServer, ctx context.Context, in *LoginRequest) (any, error) {
			return s.Login(ctx, in)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "booking/v1/booking.proto",
}

type BookingServiceClient interface {
	ListTeachers(ctx context.Context, in *ListTeachersRequest, opts ...grpc.CallOption) (*ListTeachersResponse, error)
	FreeSlots(ctx context.Context, in *FreeSlotsRequest, opts ...grpc.CallOption) (*FreeSlotsResponse, error)
	ListAppointments(ctx context.Context, in *ListAppointmentsRequest, opts ...grpc.CallOption) (*ListAppointmentsResponse, error)
	BookAppointment(ctx context.Context, in *BookAppointmentRequest, opts ...grpc.CallOption) (*BookAppointmentResponse, error)
	CancelAppointment(ctx context.Context, in *CancelAppointmentRequest, opts ...grpc.CallOption) (*CancelAppointmentResponse, error)
	Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*SignupResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
}

type bookingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBookingServiceClient(cc grpc.ClientConnInterface) BookingServiceClient {
	return &bookingServiceClient{cc}
}

func invoke[T any](ctx context.Context, cc grpc.ClientConnInterface, method string, in Message, opts []grpc.CallOption) (*T, error) {
	out := new(T)
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bookingServiceClient) ListTeachers(ctx context.Context, in *ListTeachersRequest, opts ...grpc.CallOption) (*ListTeachersResponse, error) {
	return invoke[ListTeachersResponse](ctx, c.cc, BookingService_ListTeachers_FullMethodName, in, opts)
}

func (c *bookingServiceClient) FreeSlots(ctx context.Context, in *FreeSlotsRequest, opts ...grpc.CallOption) (*FreeSlotsResponse, error) {
	return invoke[FreeSlotsResponse](ctx, c.cc, BookingService_FreeSlots_FullMethodName, in, opts)
}

func (c *bookingServiceClient) ListAppointments(ctx context.Context, in *ListAppointmentsRequest, opts ...grpc.CallOption) (*ListAppointmentsResponse, error) {
	return invoke[ListAppointmentsResponse](ctx, c.cc, BookingService_ListAppointments_FullMethodName, in, opts)
}

func (c *bookingServiceClient) BookAppointment(ctx context.Context, in *BookAppointmentRequest, opts ...grpc.CallOption) (*BookAppointmentResponse, error) {
	return invoke[BookAppointmentResponse](ctx, c.cc, BookingService_BookAppointment_FullMethodName, in, opts)
}

func (c *bookingServiceClient) CancelAppointment(ctx context.Context, in *CancelAppointmentRequest, opts ...grpc.CallOption) (*CancelAppointmentResponse, error) {
	return invoke[CancelAppointmentResponse](ctx, c.cc, BookingService_CancelAppointment_FullMethodName, in, opts)
}

func (c *bookingServiceClient) Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*SignupResponse, error) {
	return invoke[SignupResponse](ctx, c.cc, BookingService_Signup_FullMethodName, in, opts)
}

func (c *bookingServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, BookingService_Login_FullMethodName, in, opts)
}
