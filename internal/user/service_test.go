package user

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"contentshop/internal/common"
	"contentshop/internal/config"
	"contentshop/internal/dbmysql"
)

func testTokens() *common.TokenManager {
	return common.NewTokenManager(&config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenHours: 1},
	})
}

func TestUserService_RegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockUserRepository(ctrl)
	svc := NewUserService(mockRepo, testTokens())
	ctx := context.Background()

	tests := []struct {
		name        string
		handle      string
		email       string
		password    string
		setup       func()
		wantErr     bool
		errContains string
	}{
		{
			name:     "success",
			handle:   "alice",
			email:    "alice@example.com",
			password: "Password123",
			setup: func() {
				mockRepo.EXPECT().CheckUserExists(ctx, "alice").Return(false, nil)
				mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, u *dbmysql.User) error {
						u.UserID = 1
						return nil
					})
			},
		},
		{
			name:     "duplicate handle",
			handle:   "bob",
			email:    "bob@example.com",
			password: "Password123",
			setup: func() {
				mockRepo.EXPECT().CheckUserExists(ctx, "bob").Return(true, nil)
			},
			wantErr:     true,
			errContains: "exists",
		},
		{
			name:        "invalid handle",
			handle:      "!",
			email:       "x@y.com",
			password:    "Password123",
			setup:       func() {},
			wantErr:     true,
			errContains: "handle",
		},
		{
			name:        "invalid email",
			handle:      "carol",
			email:       "bademail",
			password:    "Password123",
			setup:       func() {},
			wantErr:     true,
			errContains: "email",
		},
		{
			name:        "short password",
			handle:      "dave",
			email:       "dave@example.com",
			password:    "short",
			setup:       func() {},
			wantErr:     true,
			errContains: "password",
		},
		{
			name:     "repo failure on exist check",
			handle:   "erin",
			email:    "erin@example.com",
			password: "Password123",
			setup: func() {
				mockRepo.EXPECT().CheckUserExists(ctx, "erin").Return(false, errors.New("db down"))
			},
			wantErr:     true,
			errContains: "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			user, token, err := svc.RegisterUser(ctx, tt.handle, tt.email, tt.password)
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, user)
			require.NotEmpty(t, token)
		})
	}
}

func TestUserService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockUserRepository(ctrl)
	svc := NewUserService(mockRepo, testTokens())
	ctx := context.Background()

	hashed, err := common.HashPassword("Password123")
	require.NoError(t, err)
	stored := &dbmysql.User{UserID: 7, Handle: "alice", PasswordHash: hashed, Status: "active"}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByHandle(ctx, "alice").Return(stored, nil)

		user, token, err := svc.LoginUser(ctx, "alice", "Password123")
		require.NoError(t, err)
		require.Equal(t, uint64(7), user.UserID)
		require.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByHandle(ctx, "alice").Return(stored, nil)

		_, _, err := svc.LoginUser(ctx, "alice", "WrongPassword")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown handle", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByHandle(ctx, "ghost").Return(nil, errors.New("record not found"))

		_, _, err := svc.LoginUser(ctx, "ghost", "Password123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing input", func(t *testing.T) {
		_, _, err := svc.LoginUser(ctx, "", "")
		require.Error(t, err)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockUserRepository(ctrl)
	svc := NewUserService(mockRepo, testTokens())
	ctx := context.Background()

	stored := &dbmysql.User{UserID: 3, Handle: "carol", Status: "active"}

	mockRepo.EXPECT().GetUserByID(ctx, uint64(3)).Return(stored, nil)
	mockRepo.EXPECT().UpdateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u *dbmysql.User) error {
			require.Equal(t, "carol@example.com", u.Email)
			require.Equal(t, "Carol", u.DisplayName)
			return nil
		})

	require.NoError(t, svc.UpdateProfile(ctx, 3, "carol@example.com", "Carol"))
}
