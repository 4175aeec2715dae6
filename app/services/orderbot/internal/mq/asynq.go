package mq

import (
	"context"
	"encoding/json"

	"CluckAI/app/services/orderbot/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

// EnqueueOrderPrepare schedules the kitchen prep task for a confirmed order.
// No-op when asynq is not configured.
func EnqueueOrderPrepare(sc *svc.ServiceContext, orderNo int64, sessionId string) error {
	if sc.AsynqClient == nil {
		return nil
	}
	payload, err := json.Marshal(PrepareTaskPayload{OrderNo: orderNo, SessionId: sessionId})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TaskPrepareOrder, payload)
	_, err = sc.AsynqClient.Enqueue(task, asynq.MaxRetry(3), asynq.Queue("default"))
	return err
}

func NewAsynqMux(sc *svc.ServiceContext) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskPrepareOrder, newPrepareOrderHandler(sc))
	return mux
}

// newPrepareOrderHandler notifies the kitchen line. The actual display
// integration lives downstream of Kafka; this worker only acknowledges the
// ticket so retries surface stuck orders in the logs.
func newPrepareOrderHandler(sc *svc.ServiceContext) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p PrepareTaskPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}
		logx.WithContext(ctx).Infof("kitchen ticket accepted: order_no=%d session=%s", p.OrderNo, p.SessionId)
		return nil
	}
}
