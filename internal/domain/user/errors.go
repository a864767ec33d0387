package user

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "用户不存在")

	// ErrEmailDuplicate 邮箱唯一索引冲突
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "邮箱已被注册")

	// ErrRegistration 注册失败(邮箱已存在)
	ErrRegistration = apperrors.New(apperrors.ErrCodeRegistration, "无法完成注册：该邮箱已存在")

	// ErrRoleNotFound 角色未初始化
	ErrRoleNotFound = apperrors.New(apperrors.ErrCodeRoleNotFound, "角色不存在")

	// ErrInvalidEmail 邮箱格式不正确
	ErrInvalidEmail = apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
)
