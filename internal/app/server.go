package app

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"

	pb "teacher-booking-api/api/booking/v1"
	"teacher-booking-api/internal/auth"
	"teacher-booking-api/internal/handler"
	"teacher-booking-api/internal/middleware"
)

// NewGRPCServer registers h behind the logging, rate limit and auth
// interceptors. rl may be nil to disable rate limiting.
func NewGRPCServer(h *handler.Handler, gate *auth.Gate, rl *middleware.RateLimiter, logger *zap.Logger) *grpc.Server {
	chain := []grpc.UnaryServerInterceptor{middleware.Logging(logger)}
	if rl != nil {
		chain = append(chain, middleware.RateLimit(rl))
	}
	chain = append(chain, middleware.Auth(gate))

	srv := grpc.NewServer(
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.ChainUnaryInterceptor(chain...),
	)
	pb.RegisterBookingServiceServer(srv, h)
	return srv
}
