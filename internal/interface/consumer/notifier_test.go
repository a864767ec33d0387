package consumer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/pkg/mq"
)

type sent struct {
	userID uint
	text   string
}

func newRecordingNotifier(out *[]sent) *Notifier {
	return &Notifier{send: func(_ context.Context, userID uint, text string) error {
		*out = append(*out, sent{userID: userID, text: text})
		return nil
	}}
}

func delivery(t *testing.T, key string, ev interface{}) mq.Delivery {
	t.Helper()
	body, err := json.Marshal(ev)
	require.NoError(t, err)
	return mq.Delivery{MessageID: "m-1", RoutingKey: key, Body: body, Timestamp: time.Now()}
}

func TestNotifier_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("下单事件", func(t *testing.T) {
		var out []sent
		n := newRecordingNotifier(&out)

		ev := order.CompletedEvent{OrderID: 3, OrderNo: "BS20260101", UserID: 7, Total: "59.98", ItemCount: 2}
		require.NoError(t, n.Handle(ctx, delivery(t, order.RoutingKeyCompleted, ev)))

		require.Len(t, out, 1)
		assert.Equal(t, uint(7), out[0].userID)
		assert.Contains(t, out[0].text, "BS20260101")
		assert.Contains(t, out[0].text, "59.98")
	})

	t.Run("状态变更事件", func(t *testing.T) {
		var out []sent
		n := newRecordingNotifier(&out)

		ev := order.StatusChangedEvent{OrderID: 3, UserID: 7, From: order.StatusPending, To: order.StatusShipped}
		require.NoError(t, n.Handle(ctx, delivery(t, order.RoutingKeyStatusChanged, ev)))

		require.Len(t, out, 1)
		assert.Contains(t, out[0].text, string(order.StatusShipped))
	})

	t.Run("消息体非法", func(t *testing.T) {
		var out []sent
		n := newRecordingNotifier(&out)

		err := n.Handle(ctx, mq.Delivery{RoutingKey: order.RoutingKeyCompleted, Body: []byte("{")})
		assert.Error(t, err)
		assert.Empty(t, out)
	})

	t.Run("未知事件直接确认", func(t *testing.T) {
		var out []sent
		n := newRecordingNotifier(&out)

		assert.NoError(t, n.Handle(ctx, mq.Delivery{RoutingKey: "order.unknown", Body: []byte("{}")}))
		assert.Empty(t, out)
	})

	t.Run("默认通知方式", func(t *testing.T) {
		ev := order.CompletedEvent{OrderID: 1, OrderNo: "BS1", UserID: 1, Total: "1.00", ItemCount: 1}
		assert.NoError(t, NewNotifier().Handle(ctx, delivery(t, order.RoutingKeyCompleted, ev)))
	})
}
