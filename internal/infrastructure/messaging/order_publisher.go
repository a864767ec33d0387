package messaging

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/pkg/circuitbreaker"
	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// Publisher 底层消息发布能力，*mq.Publisher实现了该接口
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// OrderEventPublisher 订单事件发布者
// Broker不可用时由熔断器快速失败，避免每次下单都等待连接超时
type OrderEventPublisher struct {
	publisher Publisher
	breaker   *circuitbreaker.CircuitBreaker
}

// NewOrderEventPublisher 创建订单事件发布者
func NewOrderEventPublisher(publisher Publisher, cfg config.CircuitBreakerConfig) *OrderEventPublisher {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	breaker := circuitbreaker.NewCircuitBreaker("order-events", circuitbreaker.Config{
		MaxRequests: 1,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(c circuitbreaker.Counts) bool {
			return c.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, float64(to))
			logger.Get().Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("熔断器状态变化")
		},
	})
	metrics.SetCircuitBreakerState(breaker.Name(), float64(circuitbreaker.StateClosed))

	return &OrderEventPublisher{publisher: publisher, breaker: breaker}
}

// Publish 发布订单事件，routing key由事件类型决定
func (p *OrderEventPublisher) Publish(ctx context.Context, event order.Event) error {
	return p.breaker.ExecuteContext(ctx, func(ctx context.Context) error {
		return p.publisher.Publish(ctx, event.RoutingKey(), event)
	})
}

// State 当前熔断器状态
func (p *OrderEventPublisher) State() circuitbreaker.State {
	return p.breaker.State()
}

// NoopPublisher 未启用消息队列时使用
type NoopPublisher struct{}

// Publish 丢弃事件
func (NoopPublisher) Publish(ctx context.Context, event order.Event) error {
	logger.FromContext(ctx).Debug().Str("routing_key", event.RoutingKey()).Msg("消息队列未启用，跳过事件发布")
	return nil
}
