package usecase

import (
	"testing"

	"authentix-backend/internal/model"
	"authentix-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	uc := NewUserUsecase(repository.NewUserRepository(f.db))

	require.NoError(t, uc.Register("Jamie", "jamie@example.com", "s3cret-pass"))

	token, user, err := uc.Login("jamie@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, model.RoleConsumer, user.Role)
	assert.NotEmpty(t, user.PublicID)

	// Wrong password is rejected
	_, _, err = uc.Login("jamie@example.com", "wrong")
	assert.Error(t, err)

	// Email is unique
	err = uc.Register("Jamie Again", "jamie@example.com", "another-pass")
	assert.Error(t, err)
}

func TestLoginSignsWithConfiguredSecret(t *testing.T) {
	f := newFixture(t)
	uc := NewUserUsecase(repository.NewUserRepository(f.db))

	// Set after package init, the way godotenv populates the environment in main
	t.Setenv("JWT_SECRET", "secret-from-dotenv")

	require.NoError(t, uc.Register("Sam", "sam@example.com", "pw-123456"))
	token, _, err := uc.Login("sam@example.com", "pw-123456")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("secret-from-dotenv"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	// The built-in fallback must not verify tokens once a secret is configured
	_, err = jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("authentix-dev-secret"), nil
	})
	assert.Error(t, err)
}

func TestUserRegisterValidation(t *testing.T) {
	f := newFixture(t)
	uc := NewUserUsecase(repository.NewUserRepository(f.db))

	assert.ErrorIs(t, uc.Register("No Email", "", "pass"), ErrValidation)
	assert.ErrorIs(t, uc.Register("No Password", "x@example.com", ""), ErrValidation)
}
