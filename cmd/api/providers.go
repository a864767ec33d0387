package main

import (
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/messaging"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/mq"
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideEventPublisher 订单事件发布者
// 未启用MQ时事件直接丢弃，下单流程不受影响
func provideEventPublisher(cfg *config.Config) (order.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		logger.Get().Info().Msg("消息队列未启用，订单事件不会发布")
		return messaging.NoopPublisher{}, func() {}, nil
	}

	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := publisher.Close(); err != nil {
			logger.Get().Warn().Err(err).Msg("关闭消息发布者失败")
		}
	}
	return messaging.NewOrderEventPublisher(publisher, cfg.MQ.Breaker), cleanup, nil
}
