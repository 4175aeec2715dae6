// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"CluckAI/app/services/orderbot/internal/svc"
	"CluckAI/app/services/orderbot/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetMenuLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetMenuLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetMenuLogic {
	return &GetMenuLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetMenuLogic) GetMenu() (resp *types.GetMenuResponse, err error) {
	items := l.svcCtx.Catalog.Items()
	resp = &types.GetMenuResponse{Items: make([]types.MenuItem, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, types.MenuItem{
			Name:        item.Name,
			Price:       float64(item.PriceCents) / 100,
			Ingredients: item.Ingredients,
			Modifiable:  item.Modifiable,
		})
	}
	return resp, nil
}
