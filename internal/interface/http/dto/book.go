package dto

// CreateBookRequest HTTP新增图书请求
// price使用字符串传输，由decimal规则校验(正数、最多两位小数)
type CreateBookRequest struct {
	ISBN        string `json:"isbn" binding:"required,isbn" example:"9787115428028"`
	Title       string `json:"title" binding:"required,max=255" example:"Go语言实战"`
	Author      string `json:"author" binding:"required,max=255" example:"William Kennedy"`
	Price       string `json:"price" binding:"required,decimal" example:"59.00"`
	Description string `json:"description" binding:"max=5000" example:"这是一本关于Go语言的实战书籍"`
	CoverImage  string `json:"cover_image" binding:"omitempty,url,max=500" example:"https://example.com/cover.jpg"`
	CategoryIDs []uint `json:"category_ids" binding:"omitempty,dive,min=1" example:"1,2"`
}

// UpdateBookRequest HTTP修改图书请求，省略的字段保持不变
type UpdateBookRequest struct {
	ISBN        string  `json:"isbn" binding:"omitempty,isbn"`
	Title       string  `json:"title" binding:"omitempty,max=255"`
	Author      string  `json:"author" binding:"omitempty,max=255"`
	Price       *string `json:"price" binding:"omitempty,decimal"`
	Description string  `json:"description" binding:"omitempty,max=5000"`
	CoverImage  string  `json:"cover_image" binding:"omitempty,url,max=500"`
	CategoryIDs []uint  `json:"category_ids" binding:"omitempty,dive,min=1"`
}

// ListBooksRequest HTTP图书列表请求
type ListBooksRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=price_asc price_desc title_asc created_at_desc" example:"created_at_desc"`
}
