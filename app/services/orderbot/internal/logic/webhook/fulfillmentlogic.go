// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"strings"
	"time"

	"CluckAI/app/common/consts/errno"
	"CluckAI/app/services/orderbot/internal/dialogue"
	"CluckAI/app/services/orderbot/internal/mq"
	"CluckAI/app/services/orderbot/internal/session"
	"CluckAI/app/services/orderbot/internal/svc"
	"CluckAI/app/services/orderbot/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

const apologyText = "Sorry, something went wrong on our side. Could you say that again?"

type FulfillmentLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewFulfillmentLogic(ctx context.Context, svcCtx *svc.ServiceContext) *FulfillmentLogic {
	return &FulfillmentLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Fulfillment runs one conversation turn. The session record is mutated
// under the store's per-session lock so concurrent webhooks for the same
// customer serialize instead of losing updates.
func (l *FulfillmentLogic) Fulfillment(req *types.WebhookRequest) (resp *types.WebhookResponse, err error) {
	// a payload without a session or intent is rejected whole; no session
	// record is created and no state is touched
	sessionId := shortSessionId(req.Session)
	if sessionId == "" || req.QueryResult.Intent.DisplayName == "" {
		return &types.WebhookResponse{FulfillmentText: "Sorry, I couldn't process that request."}, nil
	}

	in := dialogue.Input{
		Intent: req.QueryResult.Intent.DisplayName,
		Query:  req.QueryResult.QueryText,
		Params: req.QueryResult.Parameters,
	}

	var reply dialogue.Reply
	err = l.svcCtx.Sessions.Update(sessionId, func(sess *session.Session) error {
		reply = l.dispatch(sess, in)
		return nil
	})
	if err != nil {
		l.Logger.Error("logic: session update failed: ", err)
		return nil, errors.New(int(errno.InternalError), "session update failed")
	}

	if reply.Order != nil {
		l.publishPlacedOrder(reply.Order)
	}

	resp = &types.WebhookResponse{FulfillmentText: reply.Text}
	if len(reply.Rows) > 0 {
		payload := &types.OrderPayload{
			OrderSummary: make([]types.OrderRow, 0, len(reply.Rows)),
			TotalPrice:   centsToDollars(reply.TotalCents),
		}
		for _, row := range reply.Rows {
			payload.OrderSummary = append(payload.OrderSummary, types.OrderRow{
				FoodItem:  row.Name,
				Quantity:  row.Quantity,
				UnitPrice: centsToDollars(row.UnitCents),
				LinePrice: centsToDollars(row.LineCents),
			})
		}
		if reply.Order != nil {
			payload.OrderNo = reply.Order.OrderNo
		}
		resp.Payload = payload
	}
	return resp, nil
}

// dispatch isolates a state-machine panic to this turn: the customer gets
// an apology and the server keeps serving.
func (l *FulfillmentLogic) dispatch(sess *session.Session, in dialogue.Input) (reply dialogue.Reply) {
	defer func() {
		if r := recover(); r != nil {
			l.Logger.Errorf("logic: dispatch panic: intent=%s err=%v", in.Intent, r)
			reply = dialogue.Reply{Text: apologyText}
		}
	}()
	return l.svcCtx.Dispatcher.Dispatch(sess, in)
}

// publishPlacedOrder fans the confirmed order out to Kafka and the kitchen
// worker. Both legs are best effort; a broker outage must not fail the
// customer-facing turn.
func (l *FulfillmentLogic) publishPlacedOrder(placed *dialogue.PlacedOrder) {
	evt := mq.OrderPlacedEvent{
		OrderNo:    placed.OrderNo,
		SessionId:  placed.SessionID,
		TotalCents: placed.TotalCents,
		PlacedAt:   time.Now().Unix(),
	}
	for _, row := range placed.Rows {
		evt.Items = append(evt.Items, mq.OrderEventItem{
			Name:      row.Name,
			Quantity:  row.Quantity,
			UnitCents: row.UnitCents,
		})
	}
	if err := mq.PublishOrderPlaced(l.svcCtx, evt); err != nil {
		l.Logger.Errorf("logic: publish order placed failed: order_no=%d err=%v", placed.OrderNo, err)
	}
	if err := mq.EnqueueOrderPrepare(l.svcCtx, placed.OrderNo, placed.SessionID); err != nil {
		l.Logger.Errorf("logic: enqueue prepare task failed: order_no=%d err=%v", placed.OrderNo, err)
	}
}

// shortSessionId keeps the last path segment of the platform session name,
// e.g. "projects/p/agent/sessions/abc" becomes "abc".
func shortSessionId(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func centsToDollars(cents int64) float64 {
	return float64(cents) / 100
}
