package book

// BookDto 图书DTO
// price以两位小数字符串返回，如"59.00"
type BookDto struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	Price       string `json:"price"`
	Description string `json:"description"`
	CoverImage  string `json:"cover_image"`
	CategoryIDs []uint `json:"category_ids"`
}

// BookDtoWithoutCategoryIds 按分类查询图书时返回，不含分类ID
type BookDtoWithoutCategoryIds struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	Price       string `json:"price"`
	Description string `json:"description"`
	CoverImage  string `json:"cover_image"`
}

// ListBooksResponse 分页查询响应
type ListBooksResponse struct {
	List     []BookDto
	Total    int64
	Page     int
	PageSize int
}
