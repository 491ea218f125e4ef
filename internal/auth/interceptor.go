package auth

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/simdocs-io/report-reconciler/internal/common"
)

// UnaryInterceptor rejects unauthenticated callers before any handler runs.
// Health checks stay open.
func UnaryInterceptor(v *Verifier, logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if strings.HasPrefix(info.FullMethod, "/grpc.health") {
			return handler(ctx, req)
		}

		claims, err := claimsFromContext(ctx, v)
		if err != nil {
			logger.Warn("rejected unauthenticated call", "method", info.FullMethod)
			return nil, err
		}
		if !IsStaff(claims.Role) {
			logger.Warn("rejected call with insufficient role", "method", info.FullMethod, "role", claims.Role)
			return nil, common.PermissionDeniedError("staff or admin role required")
		}

		ctx = common.WithActor(ctx, claims.UserID, claims.Role)
		return handler(ctx, req)
	}
}

func claimsFromContext(ctx context.Context, v *Verifier) (*Claims, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing metadata")
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing authorization token")
	}
	token := strings.TrimPrefix(vals[0], "Bearer ")
	claims, err := v.Verify(token)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid authorization token")
	}
	return claims, nil
}
