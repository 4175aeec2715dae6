// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	logic "CluckAI/app/services/orderbot/internal/logic/webhook"
	"CluckAI/app/services/orderbot/internal/svc"
	"CluckAI/app/services/orderbot/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func FulfillmentHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.WebhookRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewFulfillmentLogic(r.Context(), svcCtx)
		resp, err := l.Fulfillment(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
