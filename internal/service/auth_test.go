package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/recipe-builder/backend/internal/models"
	"github.com/pageza/recipe-builder/backend/internal/service"
	"github.com/pageza/recipe-builder/backend/internal/testhelpers"
)

const testJWTSecret = "test-secret"

func TestRegisterAndLogin(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := service.NewAuthService(db, testJWTSecret, time.Hour, zap.NewNop())
	ctx := context.Background()

	user, token, err := svc.Register(ctx, " Ada ", "Ada@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, models.SkillBeginner, user.SkillLevel)
	assert.NotEqual(t, "password123", user.PasswordHash)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)

	_, _, err = svc.Register(ctx, "Ada", "ada@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrUserExists)

	loggedIn, _, err := svc.Login(ctx, "ADA@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	_, _, err = svc.Login(ctx, "ada@example.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateTokenRejectsForeignAndExpiredTokens(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	user := testhelpers.CreateUser(t, db)

	other := service.NewAuthService(db, "another-secret", time.Hour, zap.NewNop())
	token, err := other.GenerateToken(user)
	require.NoError(t, err)

	svc := service.NewAuthService(db, testJWTSecret, time.Hour, zap.NewNop())
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	expired := service.NewAuthService(db, testJWTSecret, -time.Minute, zap.NewNop())
	token, err = expired.GenerateToken(user)
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
