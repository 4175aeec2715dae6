package bootstrap

import (
	"github.com/hibiken/asynq"

	"CluckAI/app/services/orderbot/internal/mq"
	"CluckAI/app/services/orderbot/internal/svc"
)

// StartAsynq runs the kitchen task worker; returns a stop func. Disabled
// deployments get a no-op stop.
func StartAsynq(sc *svc.ServiceContext) func() {
	if !sc.Config.AsynqServerConf.Enabled {
		return func() {}
	}
	addr := sc.Config.AsynqConf.Addr
	if addr == "" {
		addr = sc.Config.RedisConf.Host
	}
	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: addr}, asynq.Config{
		Concurrency: sc.Config.AsynqServerConf.Concurrency,
		Queues:      sc.Config.AsynqServerConf.Queues,
	})
	mux := mq.NewAsynqMux(sc)
	go func() {
		if err := srv.Run(mux); err != nil {
			panic(err)
		}
	}()
	return func() {
		srv.Shutdown()
	}
}
