package order

import (
	"context"
	"time"
)

// routing key
const (
	RoutingKeyCompleted     = "order.completed"
	RoutingKeyStatusChanged = "order.status_changed"
)

// Event 订单领域事件
type Event interface {
	RoutingKey() string
}

// EventPublisher 事件发布接口，由infrastructure/messaging实现
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// CompletedEvent 购物车结算生成订单
type CompletedEvent struct {
	OrderID    uint      `json:"order_id"`
	OrderNo    string    `json:"order_no"`
	UserID     uint      `json:"user_id"`
	Total      string    `json:"total"`
	ItemCount  int       `json:"item_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (CompletedEvent) RoutingKey() string { return RoutingKeyCompleted }

// NewCompletedEvent 从订单构造事件
func NewCompletedEvent(o *Order) CompletedEvent {
	return CompletedEvent{
		OrderID:    o.ID,
		OrderNo:    o.OrderNo,
		UserID:     o.UserID,
		Total:      o.Total.StringFixed(2),
		ItemCount:  len(o.Items),
		OccurredAt: time.Now(),
	}
}

// StatusChangedEvent 订单状态变更
type StatusChangedEvent struct {
	OrderID    uint      `json:"order_id"`
	UserID     uint      `json:"user_id"`
	From       Status    `json:"from"`
	To         Status    `json:"to"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (StatusChangedEvent) RoutingKey() string { return RoutingKeyStatusChanged }
