package gofiGrpc

import (
	"context"
	"log"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Create a UnaryServerInterceptor that turns a panic in a handler into an Internal error.
func RecoverInterceptor(logger *log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Printf("Error: panic in %v: %v", info.FullMethod, r)
				err = status.Errorf(codes.Internal, "%v: %v", info.FullMethod, r)
			}
		}()
		return handler(ctx, req)
	}
}
