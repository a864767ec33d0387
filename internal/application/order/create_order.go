package order

import (
	"context"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/cart"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

const tracerName = "bookshop/application/order"

// Transactor 事务执行器，*mysql.TxManager实现了该接口
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CompleteOrderUseCase 购物车结算下单用例
// 1. 读取用户购物车，空购物车返回ErrCartEmpty
// 2. 购物车条目转换为订单明细，单价取图书当前价格
// 3. 订单、明细的写入与购物车条目的删除在同一事务中
// 4. 事务提交后发布order.completed事件，发布失败只记录日志
type CompleteOrderUseCase struct {
	orderRepo order.Repository
	cartRepo  cart.Repository
	txManager Transactor
	publisher order.EventPublisher
}

// NewCompleteOrderUseCase 创建下单用例
func NewCompleteOrderUseCase(
	orderRepo order.Repository,
	cartRepo cart.Repository,
	txManager Transactor,
	publisher order.EventPublisher,
) *CompleteOrderUseCase {
	return &CompleteOrderUseCase{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		txManager: txManager,
		publisher: publisher,
	}
}

// Execute 执行下单
func (uc *CompleteOrderUseCase) Execute(ctx context.Context, req CompleteOrderRequest) (*OrderDto, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "CompleteOrder")
	defer span.End()

	start := time.Now()
	var created *order.Order

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		cartItems, err := uc.cartRepo.FindByUserID(txCtx, req.UserID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return cart.ErrCartEmpty
		}

		items := make([]order.OrderItem, len(cartItems))
		ids := make([]uint, len(cartItems))
		for i, ci := range cartItems {
			items[i] = order.OrderItem{
				BookID:   ci.BookID,
				Quantity: ci.Quantity,
				Price:    ci.BookPrice,
			}
			ids[i] = ci.ID
		}

		o, err := order.NewOrder(order.GenerateOrderNo(), req.UserID, req.ShippingAddress, items)
		if err != nil {
			return err
		}
		if err := uc.orderRepo.Create(txCtx, o); err != nil {
			return err
		}

		// 已结算的条目随订单一起提交，失败则整体回滚
		if err := uc.cartRepo.DeleteByIDs(txCtx, ids); err != nil {
			return err
		}

		created = o
		return nil
	})
	if err != nil {
		metrics.ObserveOrderFailed(time.Since(start).Seconds())
		tracing.RecordError(span, err)
		return nil, err
	}

	total, _ := created.Total.Float64()
	metrics.ObserveOrderCompleted(total, time.Since(start).Seconds())

	log := logger.FromContext(ctx)
	log.Info().
		Uint("order_id", created.ID).
		Str("order_no", created.OrderNo).
		Uint("user_id", created.UserID).
		Str("total", created.Total.StringFixed(2)).
		Msg("订单创建成功")

	if err := uc.publisher.Publish(ctx, order.NewCompletedEvent(created)); err != nil {
		log.Error().Err(err).Uint("order_id", created.ID).Msg("发布订单完成事件失败")
	}

	dto := toOrderDto(created)
	return &dto, nil
}
