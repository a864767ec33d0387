package order

import (
	"context"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

// UpdateOrderStatusUseCase 管理员更新订单状态
// 状态之间没有流转限制，任意合法状态都可以直接设置
type UpdateOrderStatusUseCase struct {
	orderRepo order.Repository
	publisher order.EventPublisher
}

func NewUpdateOrderStatusUseCase(orderRepo order.Repository, publisher order.EventPublisher) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{orderRepo: orderRepo, publisher: publisher}
}

// Execute 校验状态字符串并持久化，返回新状态
func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, orderID uint, status string) (*UpdateStatusResponse, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "UpdateOrderStatus")
	defer span.End()

	newStatus, err := order.ParseStatus(status)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	from := o.Status
	if err := o.UpdateStatus(newStatus); err != nil {
		return nil, err
	}
	if err := uc.orderRepo.UpdateStatus(ctx, o.ID, o.Status); err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	metrics.IncOrderStatusUpdate(o.Status.String())

	event := order.StatusChangedEvent{
		OrderID:    o.ID,
		UserID:     o.UserID,
		From:       from,
		To:         o.Status,
		OccurredAt: time.Now(),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Error().Err(err).Uint("order_id", o.ID).Msg("发布订单状态变更事件失败")
	}

	return &UpdateStatusResponse{OrderID: o.ID, Status: o.Status.String()}, nil
}
