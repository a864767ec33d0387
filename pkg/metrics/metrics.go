// Package metrics 基于Prometheus的指标收集
//
// 指标在包初始化时创建，调用Register注册到Registry后才会出现在/metrics中。
// 未注册时记录指标不会panic，业务代码和单元测试可直接调用。
//
// 命名规范：
//   - Counter以_total结尾：orders_completed_total
//   - Histogram以单位结尾：http_request_duration_seconds
//   - 避免高基数标签（不要用user_id、order_id作为标签）
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bookshop"

var (
	// HTTP请求指标

	// HTTPRequestsTotal HTTP请求总数，标签：method、path、status
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP请求耗时（秒）",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_progress",
			Help:      "正在处理的HTTP请求数",
		},
	)

	// 订单业务指标

	// OrdersCompletedTotal 购物车结算生成的订单总数
	OrdersCompletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_completed_total",
			Help:      "结算生成的订单总数",
		},
	)

	// OrdersFailedTotal 结算失败总数
	OrdersFailedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_failed_total",
			Help:      "结算失败总数",
		},
	)

	// OrderCompletionDuration 结算耗时
	OrderCompletionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_completion_duration_seconds",
			Help:      "结算耗时（秒）",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	// OrderTotalAmount 订单金额分布
	OrderTotalAmount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_total_amount",
			Help:      "订单金额分布",
			Buckets:   []float64{10, 50, 100, 200, 500, 1000},
		},
	)

	// OrderStatusUpdatesTotal 订单状态变更次数，标签：status（目标状态）
	OrderStatusUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_updates_total",
			Help:      "订单状态变更次数",
		},
		[]string{"status"},
	)

	// 熔断器指标

	// CircuitBreakerState 熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）
	CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)

	// 消息队列指标

	// MessagesPublishedTotal 消息发布总数，标签：routing_key、result（success/failure/rejected）
	MessagesPublishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_published_total",
			Help:      "消息发布总数",
		},
		[]string{"routing_key", "result"},
	)

	// MessagesConsumedTotal 消息消费总数，标签：queue、result（success/failure）
	MessagesConsumedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_consumed_total",
			Help:      "消息消费总数",
		},
		[]string{"queue", "result"},
	)
)

var registerOnce sync.Once

// Register 注册所有指标，重复调用只生效一次
func Register(reg prometheus.Registerer) (err error) {
	registerOnce.Do(func() {
		for _, c := range collectors() {
			if err = reg.Register(c); err != nil {
				return
			}
		}
	})
	return err
}

func collectors() []prometheus.Collector {
	return []prometheus.Collector{
		HTTPRequestsTotal,
		HTTPRequestDuration,
		HTTPRequestsInProgress,
		OrdersCompletedTotal,
		OrdersFailedTotal,
		OrderCompletionDuration,
		OrderTotalAmount,
		OrderStatusUpdatesTotal,
		CircuitBreakerState,
		MessagesPublishedTotal,
		MessagesConsumedTotal,
	}
}

// ObserveHTTPRequest 记录一次HTTP请求
func ObserveHTTPRequest(method, path, status string, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// ObserveOrderCompleted 记录一次成功结算
func ObserveOrderCompleted(total float64, seconds float64) {
	OrdersCompletedTotal.Inc()
	OrderTotalAmount.Observe(total)
	OrderCompletionDuration.Observe(seconds)
}

// ObserveOrderFailed 记录一次失败结算
func ObserveOrderFailed(seconds float64) {
	OrdersFailedTotal.Inc()
	OrderCompletionDuration.Observe(seconds)
}

// IncOrderStatusUpdate 记录订单状态变更
func IncOrderStatusUpdate(status string) {
	OrderStatusUpdatesTotal.WithLabelValues(status).Inc()
}

// SetCircuitBreakerState 更新熔断器状态
func SetCircuitBreakerState(name string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
}

// IncMessagePublished 记录消息发布结果
func IncMessagePublished(routingKey, result string) {
	MessagesPublishedTotal.WithLabelValues(routingKey, result).Inc()
}

// IncMessageConsumed 记录消息消费结果
func IncMessageConsumed(queue, result string) {
	MessagesConsumedTotal.WithLabelValues(queue, result).Inc()
}
