package category

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/category"
	"github.com/xiebiao/bookshop/pkg/logger"
)

// CategoryDto 分类DTO
type CategoryDto struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryRequest 新增/修改分类请求
type CategoryRequest struct {
	Name        string
	Description string
}

func toCategoryDto(c *category.Category) CategoryDto {
	return CategoryDto{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

// Service 分类应用服务，增删改仅管理员可用(由路由控制)
type Service struct {
	repo category.Repository
}

// NewService 创建分类应用服务
func NewService(repo category.Repository) *Service {
	return &Service{repo: repo}
}

// Create 新增分类
func (s *Service) Create(ctx context.Context, req CategoryRequest) (*CategoryDto, error) {
	c, err := category.NewCategory(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().Uint("category_id", c.ID).Str("name", c.Name).Msg("分类已创建")

	dto := toCategoryDto(c)
	return &dto, nil
}

// GetByID 分类详情
func (s *Service) GetByID(ctx context.Context, id uint) (*CategoryDto, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toCategoryDto(c)
	return &dto, nil
}

// List 全部分类
func (s *Service) List(ctx context.Context) ([]CategoryDto, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]CategoryDto, len(categories))
	for i, c := range categories {
		dtos[i] = toCategoryDto(c)
	}
	return dtos, nil
}

// Update 修改分类
func (s *Service) Update(ctx context.Context, id uint, req CategoryRequest) (*CategoryDto, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.Update(req.Name, req.Description); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	dto := toCategoryDto(c)
	return &dto, nil
}

// Delete 软删除分类
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
