package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/deptsched/timetable-api/internal/dto"
	"github.com/deptsched/timetable-api/internal/models"
	appErrors "github.com/deptsched/timetable-api/pkg/errors"
)

type userRepoStub struct {
	user      *models.User
	lastLogin string
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, sql.ErrNoRows
	}
	return s.user, nil
}

func (s *userRepoStub) UpdateLastLogin(ctx context.Context, id string) error {
	s.lastLogin = id
	return nil
}

func newAuthFixture(t *testing.T) (*AuthService, *userRepoStub) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &userRepoStub{user: &models.User{
		ID:           "user-1",
		Email:        "incharge@dept.edu",
		PasswordHash: string(hash),
		FullName:     "Timetable Incharge",
		Role:         models.RoleIncharge,
		Active:       true,
	}}
	service := NewAuthService(repo, nil, nil, AuthConfig{
		Secret:     "test-secret",
		Expiration: time.Hour,
		Issuer:     "timetable-api",
	})
	return service, repo
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	service, repo := newAuthFixture(t)

	resp, err := service.Login(context.Background(), dto.LoginRequest{
		Email:    "incharge@dept.edu",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "incharge", resp.User.Role)
	assert.Equal(t, "user-1", repo.lastLogin)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	service, _ := newAuthFixture(t)

	_, err := service.Login(context.Background(), dto.LoginRequest{
		Email:    "incharge@dept.edu",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginUnknownUser(t *testing.T) {
	service, _ := newAuthFixture(t)

	_, err := service.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@dept.edu",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceTokenRoundTrip(t *testing.T) {
	service, _ := newAuthFixture(t)

	resp, err := service.Login(context.Background(), dto.LoginRequest{
		Email:    "incharge@dept.edu",
		Password: "secret123",
	})
	require.NoError(t, err)

	claims, err := service.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleIncharge, claims.Role)
	assert.Equal(t, "timetable-api", claims.Issuer)
}

func TestAuthServiceRejectsTamperedToken(t *testing.T) {
	service, _ := newAuthFixture(t)

	_, err := service.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
