// Package consumer 订单事件消费者
package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/mq"
)

// RoutingKeys 通知服务订阅的事件
var RoutingKeys = []string{"order.*"}

// Notifier 将订单事件转换为用户通知
// 目前只记录日志，后续接入邮件服务时替换send
type Notifier struct {
	send func(ctx context.Context, userID uint, text string) error
}

// NewNotifier 创建通知消费者
func NewNotifier() *Notifier {
	return &Notifier{send: logNotification}
}

// Handle 处理一条订单事件，未知routing key直接确认
func (n *Notifier) Handle(ctx context.Context, d mq.Delivery) error {
	log := logger.FromContext(ctx).With().
		Str("routing_key", d.RoutingKey).
		Str("message_id", d.MessageID).
		Logger()

	switch d.RoutingKey {
	case order.RoutingKeyCompleted:
		var ev order.CompletedEvent
		if err := json.Unmarshal(d.Body, &ev); err != nil {
			return fmt.Errorf("解析订单事件失败: %w", err)
		}
		text := fmt.Sprintf("订单%s已创建，共%d件商品，合计%s", ev.OrderNo, ev.ItemCount, ev.Total)
		return n.send(ctx, ev.UserID, text)

	case order.RoutingKeyStatusChanged:
		var ev order.StatusChangedEvent
		if err := json.Unmarshal(d.Body, &ev); err != nil {
			return fmt.Errorf("解析订单事件失败: %w", err)
		}
		text := fmt.Sprintf("订单%d状态由%s变更为%s", ev.OrderID, ev.From, ev.To)
		return n.send(ctx, ev.UserID, text)

	default:
		log.Warn().Msg("忽略未知事件")
		return nil
	}
}

func logNotification(ctx context.Context, userID uint, text string) error {
	logger.FromContext(ctx).Info().Uint("user_id", userID).Msg(text)
	return nil
}
