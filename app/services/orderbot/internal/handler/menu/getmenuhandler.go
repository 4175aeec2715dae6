// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"CluckAI/app/common/consts/errno"
	"CluckAI/app/common/response"
	logic "CluckAI/app/services/orderbot/internal/logic/menu"
	"CluckAI/app/services/orderbot/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func GetMenuHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewGetMenuLogic(r.Context(), svcCtx)
		resp, err := l.GetMenu()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, response.NewResponseWithData(errno.StatusOK, "success", resp))
		}
	}
}
