package dto

// RegisterRequest HTTP层注册请求
// repeat_password必须与password一致，密码强度由领域服务校验
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password        string `json:"password" binding:"required,min=8,max=20" example:"secret123"`
	RepeatPassword  string `json:"repeat_password" binding:"required,eqfield=Password" example:"secret123"`
	FirstName       string `json:"first_name" binding:"required,max=50" example:"Alice"`
	LastName        string `json:"last_name" binding:"required,max=50" example:"Liddell"`
	ShippingAddress string `json:"shipping_address" binding:"max=255" example:"上海市浦东新区世纪大道1号"`
}

// LoginRequest HTTP层登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// RefreshRequest 刷新Token请求
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
