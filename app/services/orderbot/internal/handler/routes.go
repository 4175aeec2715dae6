// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	menu "CluckAI/app/services/orderbot/internal/handler/menu"
	order "CluckAI/app/services/orderbot/internal/handler/order"
	webhook "CluckAI/app/services/orderbot/internal/handler/webhook"
	"CluckAI/app/services/orderbot/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.WebhookAuth},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/webhook",
					Handler: webhook.FulfillmentHandler(serverCtx),
				},
			}...,
		),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/menu",
				Handler: menu.GetMenuHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/order/:sessionId",
				Handler: order.GetOrderHandler(serverCtx),
			},
		},
	)
}
