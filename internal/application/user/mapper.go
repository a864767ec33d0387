package user

import (
	"github.com/xiebiao/bookshop/internal/domain/user"
)

func toUserResponse(u *user.User) UserResponseDto {
	return UserResponseDto{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ShippingAddress: u.ShippingAddress,
		Roles:           u.RoleNames(),
	}
}
