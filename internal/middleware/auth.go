package middleware

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "teacher-booking-api/api/booking/v1"
	"teacher-booking-api/internal/auth"
	"teacher-booking-api/internal/model"
)

type ctxKey string

const identityKey ctxKey = "identity"

// only these need a token; everything else is an open read or a
// self-asserted booking
var protected = map[string]bool{
	pb.BookingService_CancelAppointment_FullMethodName: true,
}

func WithIdentity(ctx context.Context, id model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFrom(ctx context.Context) (model.Identity, bool) {
	id, ok := ctx.Value(identityKey).(model.Identity)
	return id, ok
}

func Auth(gate *auth.Gate) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if !protected[info.FullMethod] {
			return next(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		// token from Authorization: Bearer <jwt>
		raw := ""
		if vals := md.Get("authorization"); len(vals) > 0 {
			raw = vals[0]
		}
		if raw == "" {
			return nil, status.Error(codes.Unauthenticated, "no token provided")
		}

		id, err := gate.Authenticate(raw)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}
		return next(WithIdentity(ctx, id), req)
	}
}
