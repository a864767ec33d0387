package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/user"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/jwt"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, params user.RegisterParams) (*user.User, error) {
	args := m.Called(ctx, params)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (*user.User, error) {
	args := m.Called(ctx, email, password)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *mockUserService) ValidatePassword(hashedPassword, plainPassword string) error {
	return m.Called(hashedPassword, plainPassword).Error(0)
}

type memorySessionStore struct {
	sessions  map[uint]map[string]interface{}
	blacklist map[string]time.Duration
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{
		sessions:  map[uint]map[string]interface{}{},
		blacklist: map[string]time.Duration{},
	}
}

func (s *memorySessionStore) SaveSession(_ context.Context, userID uint, data map[string]interface{}, _ time.Duration) error {
	s.sessions[userID] = data
	return nil
}

func (s *memorySessionStore) GetSession(_ context.Context, userID uint) (map[string]string, error) {
	if _, ok := s.sessions[userID]; !ok {
		return nil, apperrors.ErrUnauthorized
	}
	return map[string]string{}, nil
}

func (s *memorySessionStore) DeleteSession(_ context.Context, userID uint) error {
	delete(s.sessions, userID)
	return nil
}

func (s *memorySessionStore) AddToBlacklist(_ context.Context, token string, ttl time.Duration) error {
	s.blacklist[token] = ttl
	return nil
}

func testUser() *user.User {
	return &user.User{
		ID:        3,
		Email:     "bob@example.com",
		Password:  "hashed",
		FirstName: "Bob",
		Roles:     []user.Role{{ID: 1, Name: user.RoleUser}},
	}
}

func TestRegisterUseCase(t *testing.T) {
	ctx := context.Background()
	req := RegisterRequest{Email: "bob@example.com", Password: "secret123", FirstName: "Bob", LastName: "B", ShippingAddress: "addr"}

	t.Run("注册成功不返回密码", func(t *testing.T) {
		svc := new(mockUserService)
		svc.On("Register", ctx, user.RegisterParams{
			Email: req.Email, Password: req.Password, FirstName: "Bob", LastName: "B", ShippingAddress: "addr",
		}).Return(testUser(), nil)

		resp, err := NewRegisterUseCase(svc).Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, uint(3), resp.ID)
		assert.Equal(t, []string{"ROLE_USER"}, resp.Roles)
		svc.AssertExpectations(t)
	})

	t.Run("邮箱已存在", func(t *testing.T) {
		svc := new(mockUserService)
		svc.On("Register", ctx, mock.Anything).Return(nil, user.ErrRegistration)

		_, err := NewRegisterUseCase(svc).Execute(ctx, req)
		assert.ErrorIs(t, err, user.ErrRegistration)
	})
}

func TestLoginLogoutRefresh(t *testing.T) {
	ctx := context.Background()
	jwtManager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)
	store := newMemorySessionStore()

	svc := new(mockUserService)
	svc.On("Login", ctx, "bob@example.com", "secret123").Return(testUser(), nil)
	svc.On("Login", ctx, "bob@example.com", "wrong").Return(nil, apperrors.ErrInvalidPassword)

	login := NewLoginUseCase(svc, jwtManager, store)

	t.Run("密码错误", func(t *testing.T) {
		_, err := login.Execute(ctx, LoginRequest{Email: "bob@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	resp, err := login.Execute(ctx, LoginRequest{Email: "bob@example.com", Password: "secret123", ClientIP: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "10.0.0.1", store.sessions[3]["ip"])

	claims, err := jwtManager.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.True(t, claims.HasRole("ROLE_USER"))

	refresh := NewRefreshUseCase(jwtManager, store)

	t.Run("刷新Token", func(t *testing.T) {
		r, err := refresh.Execute(ctx, resp.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, r.AccessToken)

		_, err = refresh.Execute(ctx, resp.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken, "Access Token不能用于刷新")
	})

	t.Run("登出后拉黑Token且无法刷新", func(t *testing.T) {
		require.NoError(t, NewLogoutUseCase(jwtManager, store).Execute(ctx, 3, resp.AccessToken))

		ttl, ok := store.blacklist[resp.AccessToken]
		require.True(t, ok)
		assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)

		_, err := refresh.Execute(ctx, resp.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
