package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql/specification"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// bookCategoryModel 图书-分类关联表
type bookCategoryModel struct {
	BookID     uint `gorm:"primaryKey"`
	CategoryID uint `gorm:"primaryKey"`
}

func (bookCategoryModel) TableName() string { return "book_categories" }

// bookRepository 图书仓储实现(MySQL)
// 1. 负责domain实体与GORM模型之间的转换
// 2. 分类关联表由仓储直接维护，避免GORM关联保存时回写categories表
// 3. 搜索条件由specification.Builder生成
type bookRepository struct {
	db      *gorm.DB
	builder *specification.Builder
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB, builder *specification.Builder) book.Repository {
	return &bookRepository{db: db, builder: builder}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	err := dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Create(model).Error; err != nil {
			return err
		}
		return replaceBookCategories(tx, model.ID, b.CategoryIDs)
	})
	if err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := dbFromContext(ctx, r.db).Preload("Categories").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := dbFromContext(ctx, r.db).Preload("Categories").Where("isbn = ?", isbn).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// Update 更新图书信息，分类整体替换
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	err := dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&BookModel{ID: b.ID}).Updates(map[string]interface{}{
			"isbn":        model.ISBN,
			"title":       model.Title,
			"author":      model.Author,
			"price":       model.Price,
			"description": model.Description,
			"cover_image": model.CoverImage,
			"updated_at":  b.UpdatedAt,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return book.ErrBookNotFound
		}
		return replaceBookCategories(tx, b.ID, b.CategoryIDs)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, book.ErrBookNotFound):
		return err
	case isDuplicateError(err):
		return book.ErrISBNDuplicate
	default:
		return apperrors.Wrap(err, "更新图书失败")
	}
}

// Delete 删除图书(软删除)，分类关联一并删除
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	err := dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&BookModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return book.ErrBookNotFound
		}
		return tx.Where("book_id = ?", id).Delete(&bookCategoryModel{}).Error
	})
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			return err
		}
		return apperrors.Wrap(err, "删除图书失败")
	}
	return nil
}

// List 分页查询图书列表
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	return r.page(ctx, nil, params.SortBy, params.Page, params.PageSize)
}

// Search 按过滤条件分页查询
func (r *bookRepository) Search(ctx context.Context, params book.SearchParams) ([]*book.Book, int64, error) {
	spec, err := r.builder.Build(params.Filters)
	if err != nil {
		return nil, 0, err
	}
	return r.page(ctx, spec, "", params.Page, params.PageSize)
}

// ListByCategoryID 查询分类下的全部图书
func (r *bookRepository) ListByCategoryID(ctx context.Context, categoryID uint) ([]*book.Book, error) {
	var models []BookModel
	err := dbFromContext(ctx, r.db).
		Joins("JOIN book_categories ON book_categories.book_id = books.id").
		Where("book_categories.category_id = ?", categoryID).
		Order("books.id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询分类图书失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

func (r *bookRepository) page(ctx context.Context, spec specification.Specification, sortBy string, page, pageSize int) ([]*book.Book, int64, error) {
	query := func() *gorm.DB {
		q := dbFromContext(ctx, r.db).Model(&BookModel{})
		if spec != nil {
			q = spec(q)
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	var models []BookModel
	err := query().
		Preload("Categories").
		Order(orderClause(sortBy)).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, total, nil
}

func orderClause(sortBy string) string {
	switch sortBy {
	case "price_asc":
		return "books.price ASC, books.id ASC"
	case "price_desc":
		return "books.price DESC, books.id ASC"
	case "title_asc":
		return "books.title ASC, books.id ASC"
	case "created_at_desc":
		return "books.created_at DESC, books.id DESC"
	default:
		return "books.id ASC"
	}
}

func replaceBookCategories(tx *gorm.DB, bookID uint, categoryIDs []uint) error {
	if err := tx.Where("book_id = ?", bookID).Delete(&bookCategoryModel{}).Error; err != nil {
		return err
	}
	if len(categoryIDs) == 0 {
		return nil
	}
	rows := make([]bookCategoryModel, len(categoryIDs))
	for i, id := range categoryIDs {
		rows[i] = bookCategoryModel{BookID: bookID, CategoryID: id}
	}
	return tx.Create(&rows).Error
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:          b.ID,
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Price:       b.Price,
		Description: b.Description,
		CoverImage:  b.CoverImage,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBookEntity(model *BookModel) *book.Book {
	var categoryIDs []uint
	if len(model.Categories) > 0 {
		categoryIDs = make([]uint, len(model.Categories))
		for i, c := range model.Categories {
			categoryIDs[i] = c.ID
		}
	}
	return &book.Book{
		ID:          model.ID,
		ISBN:        model.ISBN,
		Title:       model.Title,
		Author:      model.Author,
		Price:       model.Price,
		Description: model.Description,
		CoverImage:  model.CoverImage,
		CategoryIDs: categoryIDs,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
