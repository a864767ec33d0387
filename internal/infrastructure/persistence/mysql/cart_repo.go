package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/cart"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// cartRepository 购物车仓储实现
// 查询时预加载图书(包括已下架的图书)以带出书名与当前价格
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

func preloadBook(db *gorm.DB) *gorm.DB {
	return db.Preload("Book", func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() })
}

func (r *cartRepository) FindByUserID(ctx context.Context, userID uint) ([]*cart.CartItem, error) {
	var models []CartItemModel
	err := preloadBook(dbFromContext(ctx, r.db)).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	items := make([]*cart.CartItem, len(models))
	for i := range models {
		items[i] = toCartItemEntity(&models[i])
	}
	return items, nil
}

func (r *cartRepository) FindByID(ctx context.Context, id uint) (*cart.CartItem, error) {
	var model CartItemModel
	if err := preloadBook(dbFromContext(ctx, r.db)).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车条目失败")
	}
	return toCartItemEntity(&model), nil
}

func (r *cartRepository) FindByUserAndBook(ctx context.Context, userID, bookID uint) (*cart.CartItem, error) {
	var model CartItemModel
	err := preloadBook(dbFromContext(ctx, r.db)).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车条目失败")
	}
	return toCartItemEntity(&model), nil
}

func (r *cartRepository) Create(ctx context.Context, item *cart.CartItem) error {
	model := &CartItemModel{
		UserID:   item.UserID,
		BookID:   item.BookID,
		Quantity: item.Quantity,
	}
	if err := dbFromContext(ctx, r.db).Omit("Book").Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.New(apperrors.ErrCodeDuplicateEntry, "图书已在购物车中").WithErr(err)
		}
		return apperrors.Wrap(err, "加入购物车失败")
	}
	item.ID = model.ID
	item.CreatedAt = model.CreatedAt
	item.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, item *cart.CartItem) error {
	result := dbFromContext(ctx, r.db).Model(&CartItemModel{ID: item.ID}).Updates(map[string]interface{}{
		"quantity":   item.Quantity,
		"updated_at": item.UpdatedAt,
	})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新购物车失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrCartItemNotFound
	}
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, id uint) error {
	result := dbFromContext(ctx, r.db).Delete(&CartItemModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除购物车条目失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrCartItemNotFound
	}
	return nil
}

func (r *cartRepository) DeleteByIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := dbFromContext(ctx, r.db).Where("id IN ?", ids).Delete(&CartItemModel{}).Error; err != nil {
		return apperrors.Wrap(err, "清理购物车失败")
	}
	return nil
}

func toCartItemEntity(model *CartItemModel) *cart.CartItem {
	return &cart.CartItem{
		ID:        model.ID,
		UserID:    model.UserID,
		BookID:    model.BookID,
		Quantity:  model.Quantity,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		BookTitle: model.Book.Title,
		BookPrice: model.Book.Price,
	}
}
