// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package main

import (
	"flag"
	"fmt"

	boot "CluckAI/app/services/orderbot/internal/bootstrap"
	"CluckAI/app/services/orderbot/internal/config"
	"CluckAI/app/services/orderbot/internal/handler"
	"CluckAI/app/services/orderbot/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/zero-contrib/zrpc/registry/consul"
)

var configFile = flag.String("f", "etc/orderbot-api.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	if stop := boot.StartAsynq(ctx); stop != nil {
		defer stop()
	}
	if ctx.KafkaWriter != nil {
		defer ctx.KafkaWriter.Close()
	}

	if c.Consul.Host != "" {
		listenOn := fmt.Sprintf("%s:%d", c.Host, c.Port)
		if err := consul.RegisterService(listenOn, c.Consul); err != nil {
			logx.Errorw("register service error", logx.Field("err", err))
			panic(err)
		}
	}

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
