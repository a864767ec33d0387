package user

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/user"
	"github.com/xiebiao/bookshop/pkg/logger"
)

// RegisterUseCase 用户注册用例
// 邮箱已存在时返回ErrRegistration，新用户默认分配ROLE_USER
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
	}
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*UserResponseDto, error) {
	u, err := uc.userService.Register(ctx, user.RegisterParams{
		Email:           req.Email,
		Password:        req.Password,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().Uint("user_id", u.ID).Msg("用户注册成功")

	resp := toUserResponse(u)
	return &resp, nil
}
