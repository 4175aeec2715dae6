// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"CluckAI/app/common/consts/errno"
	"CluckAI/app/services/orderbot/internal/svc"
	"CluckAI/app/services/orderbot/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetOrderLogic {
	return &GetOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetOrderLogic) GetOrder(req *types.GetOrderRequest) (resp *types.GetOrderResponse, err error) {
	sess, ok, err := l.svcCtx.Sessions.Get(req.SessionId)
	if err != nil {
		l.Logger.Error("logic: get session failed: ", err)
		return nil, errors.New(int(errno.InternalError), "session lookup failed")
	}
	if !ok {
		return nil, errors.New(int(errno.SessionNotFound), "no such session")
	}

	rows := sess.Cart.Summary(l.svcCtx.Catalog)
	resp = &types.GetOrderResponse{
		SessionId:    sess.ID,
		OrderSummary: make([]types.OrderRow, 0, len(rows)),
		TotalPrice:   float64(sess.Cart.TotalCents(l.svcCtx.Catalog)) / 100,
	}
	for _, row := range rows {
		resp.OrderSummary = append(resp.OrderSummary, types.OrderRow{
			FoodItem:  row.Name,
			Quantity:  row.Quantity,
			UnitPrice: float64(row.UnitCents) / 100,
			LinePrice: float64(row.LineCents) / 100,
		})
	}
	return resp, nil
}
