package user

import (
	"context"
	"errors"

	"contentshop/internal/common"
	"contentshop/internal/dbmysql"
)

var ErrInvalidCredentials = errors.New("invalid handle or password")

type UserService interface {
	RegisterUser(ctx context.Context, handle, email, password string) (*dbmysql.User, string, error)
	LoginUser(ctx context.Context, handle, password string) (*dbmysql.User, string, error)
	GetProfile(ctx context.Context, userID uint64) (*dbmysql.User, error)
	UpdateProfile(ctx context.Context, userID uint64, email, displayName string) error
}

type userService struct {
	userRepo UserRepository
	tokens   *common.TokenManager
}

func NewUserService(userRepo UserRepository, tokens *common.TokenManager) UserService {
	return &userService{userRepo: userRepo, tokens: tokens}
}

func (s *userService) RegisterUser(ctx context.Context, handle, email, password string) (*dbmysql.User, string, error) {
	if err := common.ValidateHandle(handle); err != nil {
		return nil, "", err
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	exists, err := s.userRepo.CheckUserExists(ctx, handle)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", errors.New("handle already exists")
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &dbmysql.User{
		Handle:       handle,
		Email:        email,
		PasswordHash: hashed,
		Status:       "active",
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.UserID, user.Handle)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) LoginUser(ctx context.Context, handle, password string) (*dbmysql.User, string, error) {
	if handle == "" || password == "" {
		return nil, "", errors.New("handle and password required")
	}

	user, err := s.userRepo.GetUserByHandle(ctx, handle)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.UserID, user.Handle)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint64, email, displayName string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if email != "" {
		if err := common.ValidateEmail(email); err != nil {
			return err
		}
		user.Email = email
	}
	if displayName != "" {
		user.DisplayName = displayName
	}
	return s.userRepo.UpdateUser(ctx, user)
}
