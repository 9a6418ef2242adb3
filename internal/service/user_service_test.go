package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimarket/marketplace-service/internal/domain"
	"github.com/minimarket/marketplace-service/internal/dto"
	"github.com/minimarket/marketplace-service/pkg/errs"
)

func TestRegister_NormalizesEmail(t *testing.T) {
	svc := CreateUserService(newFakeUserRepository())

	user, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "  Alice@Example.COM ",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, domain.DefaultUserName, user.Name)
	assert.Equal(t, domain.DefaultAvatarURL, user.AvatarURL)
	assert.NotEmpty(t, user.ExternalID)
	assert.NotEqual(t, "secret", user.HashedPassword)
}

func TestRegister_DuplicateEmailDifferentCase(t *testing.T) {
	svc := CreateUserService(newFakeUserRepository())

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), dto.RegisterRequest{Email: "ALICE@example.com", Password: "other"})
	assert.Equal(t, errs.ErrEmailAlreadyUsed, err)
}

func TestLogin(t *testing.T) {
	svc := CreateUserService(newFakeUserRepository())

	registered, err := svc.Register(context.Background(), dto.RegisterRequest{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)

	testCases := []struct {
		Name        string
		Request     dto.LoginRequest
		ExpectedErr error
	}{
		{
			Name:    "Correct password",
			Request: dto.LoginRequest{Email: "alice@example.com", Password: "secret"},
		},
		{
			Name:    "Email case does not matter",
			Request: dto.LoginRequest{Email: "Alice@Example.com", Password: "secret"},
		},
		{
			Name:        "Wrong password",
			Request:     dto.LoginRequest{Email: "alice@example.com", Password: "nope"},
			ExpectedErr: errs.ErrInvalidCredentials,
		},
		{
			Name:        "Unknown account fails with the same error",
			Request:     dto.LoginRequest{Email: "bob@example.com", Password: "secret"},
			ExpectedErr: errs.ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			user, err := svc.Login(context.Background(), tc.Request)
			if tc.ExpectedErr != nil {
				assert.Equal(t, tc.ExpectedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registered.ID, user.ID)
		})
	}
}

func TestUpdateProfile_OverwritesOnlyPresentFields(t *testing.T) {
	repo := newFakeUserRepository()
	svc := CreateUserService(repo)

	user, err := svc.Register(context.Background(), dto.RegisterRequest{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)

	name := "Alice"
	phone := "555-0101"
	err = svc.UpdateProfile(context.Background(), user.ID, dto.ProfileRequest{Name: &name, Phone: &phone})
	require.NoError(t, err)

	updated, err := svc.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "555-0101", updated.Phone)
	assert.Equal(t, domain.DefaultAvatarURL, updated.AvatarURL)
	assert.Equal(t, "alice@example.com", updated.Email)
}

func TestGetByID_Unknown(t *testing.T) {
	svc := CreateUserService(newFakeUserRepository())

	_, err := svc.GetByID(context.Background(), 99)
	assert.Equal(t, errs.ErrNotFound, err)
}
