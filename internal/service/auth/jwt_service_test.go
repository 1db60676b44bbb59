package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskgrid/taskgrid-api/internal/config"
)

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "too-short"})
	assert.Error(t, err)

	svc, err := NewJWTService(
		config.AuthConfig{JWTSecret: "test-secret-that-is-long-enough-for-testing"},
	)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	// Setup
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	secret := "test-secret-that-is-long-enough-for-testing"
	userID := uuid.New()

	// Create service with fixed time function for predictable testing
	svc := NewTestJWTService(secret, func() time.Time {
		return fixedTime
	})

	t.Run("generates valid token", func(t *testing.T) {
		t.Parallel()
		// Generate token
		token, err := svc.GenerateToken(context.Background(), userID)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		// Validate token
		claims, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)

		// Verify claims
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, userID.String(), claims.Subject)
		// Compare Unix timestamps to avoid timezone issues
		assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("tokens carry no expiry", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken(context.Background(), userID)
		require.NoError(t, err)

		// Validate far in the future against a service with current time;
		// the token remains valid because no exp claim is set
		futureSvc := NewTestJWTService(secret, func() time.Time {
			return fixedTime.Add(10 * 365 * 24 * time.Hour)
		})
		claims, err := futureSvc.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	secret := "test-secret-that-is-long-enough-for-testing"
	wrongSecret := "wrong-secret-that-is-long-enough-for-testing"
	userID := uuid.New()

	tests := []struct {
		name      string
		setupFunc func() (JWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func() (JWTService, string) {
				svc := NewTestJWTService(secret, func() time.Time { return fixedTime })
				token, _ := svc.GenerateToken(context.Background(), userID)
				return svc, token
			},
			wantErr: nil,
		},
		{
			name: "wrong signing secret",
			setupFunc: func() (JWTService, string) {
				genSvc := NewTestJWTService(wrongSecret, func() time.Time { return fixedTime })
				token, _ := genSvc.GenerateToken(context.Background(), userID)
				svc := NewTestJWTService(secret, func() time.Time { return fixedTime })
				return svc, token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func() (JWTService, string) {
				svc := NewTestJWTService(secret, func() time.Time { return fixedTime })
				return svc, "not.a.jwt"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "tampered payload",
			setupFunc: func() (JWTService, string) {
				svc := NewTestJWTService(secret, func() time.Time { return fixedTime })
				token, _ := svc.GenerateToken(context.Background(), userID)
				parts := strings.Split(token, ".")
				parts[1] = parts[1][:len(parts[1])-2] + "xx"
				return svc, strings.Join(parts, ".")
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing identity claim",
			setupFunc: func() (JWTService, string) {
				svc := NewTestJWTService(secret, func() time.Time { return fixedTime })
				token, _ := svc.GenerateToken(context.Background(), uuid.Nil)
				return svc, token
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tt.setupFunc()

			claims, err := svc.ValidateToken(context.Background(), token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}
