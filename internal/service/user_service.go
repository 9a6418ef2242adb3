package service

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/minimarket/marketplace-service/internal/domain"
	"github.com/minimarket/marketplace-service/internal/dto"
	"github.com/minimarket/marketplace-service/internal/repository"
	"github.com/minimarket/marketplace-service/pkg/errs"
)

type UserServiceImpl struct {
	repo repository.UserRepository
}

func CreateUserService(repo repository.UserRepository) UserService {
	return &UserServiceImpl{repo: repo}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserServiceImpl) Register(ctx context.Context, payload dto.RegisterRequest) (user domain.User, err error) {
	email := normalizeEmail(payload.Email)

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return
	}

	if existing.ID != 0 {
		return user, errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
		return user, errs.ErrInternalServer
	}

	user = domain.User{
		ExternalID:     ulid.Make().String(),
		Email:          email,
		HashedPassword: string(hash),
		Name:           domain.DefaultUserName,
		AvatarURL:      domain.DefaultAvatarURL,
	}

	user.ID, err = s.repo.AddUser(ctx, user)
	if err != nil {
		return
	}

	return user, nil
}

// Login deliberately returns the same error for an unknown email and a wrong
// password so accounts cannot be enumerated.
func (s *UserServiceImpl) Login(ctx context.Context, payload dto.LoginRequest) (user domain.User, err error) {
	user, err = s.repo.GetUserByEmail(ctx, normalizeEmail(payload.Email))
	if err != nil {
		return
	}

	if user.ID == 0 {
		return user, errs.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		return user, errs.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (user domain.User, err error) {
	user, err = s.repo.GetUserByID(ctx, id)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return user, errs.ErrNotFound
	}

	return user, nil
}

// UpdateProfile overwrites only the fields present in the form; absent fields
// keep their stored values.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID int64, payload dto.ProfileRequest) (err error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return
	}

	if payload.Name != nil {
		user.Name = *payload.Name
	}
	if payload.Phone != nil {
		user.Phone = *payload.Phone
	}
	if payload.Address != nil {
		user.Address = *payload.Address
	}
	if payload.AvatarURL != nil {
		user.AvatarURL = *payload.AvatarURL
	}

	return s.repo.UpdateUser(ctx, user)
}
