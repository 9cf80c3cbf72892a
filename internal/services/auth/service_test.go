package auth

import (
	"testing"
	"time"

	"finance-tracker-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.RefreshToken{},
	))
	return NewService(db, "test-access-secret", "test-refresh-secret", time.Minute, time.Hour)
}

func TestRegisterCreatesOwnerWithCompany(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Register("owner@example.com", "password123", "Test Company LLC")
	require.NoError(t, err)

	assert.Equal(t, models.RoleOwner, result.User.Role)
	require.NotNil(t, result.Company)
	assert.Equal(t, "Test Company LLC", result.Company.Name)
	assert.Equal(t, result.User.ID, result.Company.OwnerID)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	claims, err := svc.VerifyAccess(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Equal(t, models.RoleOwner, claims.Role)

	_, err = svc.Register("owner@example.com", "password123", "Another LLC")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register("owner@example.com", "password123", "Test Company LLC")
	require.NoError(t, err)

	result, err := svc.Login("owner@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)

	_, err = svc.Login("owner@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Register("owner@example.com", "password123", "Test Company LLC")
	require.NoError(t, err)

	pair, err := svc.Refresh(result.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEqual(t, result.RefreshToken, pair.RefreshToken)

	// The presented token was consumed by the rotation.
	_, err = svc.Refresh(result.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Register("owner@example.com", "password123", "Test Company LLC")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(result.RefreshToken))

	_, err = svc.Refresh(result.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestVerifyAccessRejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.VerifyAccess("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidAccessToken)
}
