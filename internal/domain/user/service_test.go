package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = 1
	}
	return args.Error(0)
}

func (m *mockRepo) FindByID(ctx context.Context, id uint) (*User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*User)
	return u, args.Error(1)
}

func (m *mockRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*User)
	return u, args.Error(1)
}

func (m *mockRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, u *User) error {
	return m.Called(ctx, u).Error(0)
}

type stubRoleRepo struct{}

func (stubRoleRepo) FindByName(_ context.Context, name RoleName) (*Role, error) {
	return &Role{ID: 1, Name: name}, nil
}

func newTestService(repo Repository) *service {
	return &service{repo: repo, roleRepo: stubRoleRepo{}, cost: bcrypt.MinCost}
}

func validParams() RegisterParams {
	return RegisterParams{
		Email:           "Alice@Example.com",
		Password:        "secret123",
		FirstName:       "Alice",
		LastName:        "Liddell",
		ShippingAddress: "Wonderland 1",
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("注册成功", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("ExistsByEmail", ctx, "alice@example.com").Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*user.User")).Return(nil)

		u, err := newTestService(repo).Register(ctx, validParams())
		require.NoError(t, err)

		assert.Equal(t, uint(1), u.ID)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.NotEqual(t, "secret123", u.Password, "不能保存明文密码")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")))
		assert.Equal(t, []string{"ROLE_USER"}, u.RoleNames())
		assert.Equal(t, "Wonderland 1", u.ShippingAddress)
		repo.AssertExpectations(t)
	})

	t.Run("邮箱已存在", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("ExistsByEmail", ctx, "alice@example.com").Return(true, nil)

		_, err := newTestService(repo).Register(ctx, validParams())
		assert.ErrorIs(t, err, ErrRegistration)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("并发注册唯一索引冲突", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("ExistsByEmail", ctx, "alice@example.com").Return(false, nil)
		repo.On("Create", ctx, mock.Anything).Return(ErrEmailDuplicate)

		_, err := newTestService(repo).Register(ctx, validParams())
		assert.ErrorIs(t, err, ErrRegistration)
	})

	t.Run("弱密码", func(t *testing.T) {
		params := validParams()
		params.Password = "abcdefgh"
		_, err := newTestService(new(mockRepo)).Register(ctx, params)
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
	})

	t.Run("邮箱格式错误", func(t *testing.T) {
		params := validParams()
		params.Email = "not-an-email"
		_, err := newTestService(new(mockRepo)).Register(ctx, params)
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &User{ID: 9, Email: "bob@example.com", Password: string(hash), Roles: []Role{{Name: RoleAdmin}}}

	t.Run("登录成功", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("FindByEmail", ctx, "bob@example.com").Return(stored, nil)

		u, err := newTestService(repo).Login(ctx, " BOB@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, uint(9), u.ID)
		assert.True(t, u.HasRole(RoleAdmin))
	})

	t.Run("密码错误", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("FindByEmail", ctx, "bob@example.com").Return(stored, nil)

		_, err := newTestService(repo).Login(ctx, "bob@example.com", "wrong-pass1")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("邮箱不存在", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, ErrUserNotFound)

		_, err := newTestService(repo).Login(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("数据库错误透传", func(t *testing.T) {
		dbErr := apperrors.Wrap(errors.New("connection refused"), "查询用户失败")
		repo := new(mockRepo)
		repo.On("FindByEmail", ctx, "bob@example.com").Return(nil, dbErr)

		_, err := newTestService(repo).Login(ctx, "bob@example.com", "secret123")
		assert.ErrorIs(t, err, dbErr)
	})
}
