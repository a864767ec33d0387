package dto

// CategoryRequest 新增/修改分类请求
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"编程"`
	Description string `json:"description" binding:"max=500" example:"程序设计与软件工程"`
}
