package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/simdocs-io/report-reconciler/internal/common"
)

var testCfg = common.AuthConfig{JWTSecret: "test-secret", TokenLifespan: time.Hour}

func TestGenerateAndVerify(t *testing.T) {
	token, err := Generate(testCfg, "u-1", "staff")
	require.NoError(t, err)

	claims, err := NewVerifier(testCfg).Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "staff", claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := Generate(testCfg, "u-1", "admin")
	require.NoError(t, err)

	other := common.AuthConfig{JWTSecret: "other-secret", TokenLifespan: time.Hour}
	_, err = NewVerifier(other).Verify(token)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestIsStaff(t *testing.T) {
	assert.True(t, IsStaff("staff"))
	assert.True(t, IsStaff("admin"))
	assert.False(t, IsStaff("customer"))
	assert.False(t, IsStaff(""))
}

func TestUnaryInterceptor(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	v := NewVerifier(testCfg)
	intercept := UnaryInterceptor(v, logger)
	info := &grpc.UnaryServerInfo{FullMethod: "/reconciler.v1.ReconcilerService/ReconcileBatch"}
	handler := func(ctx context.Context, _ interface{}) (interface{}, error) {
		return common.ActorRoleFromContext(ctx), nil
	}

	t.Run("missing token", func(t *testing.T) {
		_, err := intercept(context.Background(), nil, info, handler)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("customer role denied", func(t *testing.T) {
		token, err := Generate(testCfg, "u-2", "customer")
		require.NoError(t, err)
		ctx := metadata.NewIncomingContext(context.Background(),
			metadata.Pairs("authorization", "Bearer "+token))
		_, err = intercept(ctx, nil, info, handler)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("staff passes and actor lands in context", func(t *testing.T) {
		token, err := Generate(testCfg, "u-3", "staff")
		require.NoError(t, err)
		ctx := metadata.NewIncomingContext(context.Background(),
			metadata.Pairs("authorization", "Bearer "+token))
		got, err := intercept(ctx, nil, info, handler)
		require.NoError(t, err)
		assert.Equal(t, "staff", got)
	})
}
