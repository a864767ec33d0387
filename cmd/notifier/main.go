// notifier 订阅订单事件并通知用户
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/interface/consumer"
	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/mq"
)

// metricsAddr 通知服务的指标端口
const metricsAddr = ":9102"

func main() {
	if err := run(); err != nil {
		logger.Get().Fatal().Err(err).Msg("通知服务异常退出")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	closer, err := logger.Init(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	if !cfg.MQ.Enabled {
		return errors.New("通知服务需要启用mq.enabled")
	}
	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return err
	}

	c, err := mq.NewConsumer(mq.ConsumerConfig{
		URL:          cfg.MQ.URL,
		Exchange:     cfg.MQ.Exchange,
		ExchangeType: cfg.MQ.ExchangeType,
		Queue:        cfg.MQ.NotifierQueue,
		RoutingKeys:  consumer.RoutingKeys,
		Prefetch:     10,
	})
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx, logger.Get().With().Str("component", "notifier").Logger())

	notifier := consumer.NewNotifier()
	srv := &http.Server{Addr: metricsAddr, Handler: promhttp.Handler()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.Consume(gctx, notifier.Handle)
	})
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return srv.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Get().Info().Msg("通知服务已停止")
	return nil
}
