package svc

import (
	"time"

	"CluckAI/app/common/middleware"
	"CluckAI/app/services/orderbot/internal/config"
	"CluckAI/app/services/orderbot/internal/dialogue"
	"CluckAI/app/services/orderbot/internal/menu"
	"CluckAI/app/services/orderbot/internal/session"

	"github.com/hibiken/asynq"
	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config config.Config

	Catalog    *menu.Catalog
	Resolver   *menu.Resolver
	Dispatcher *dialogue.Dispatcher
	Sessions   session.Store

	AsynqClient *asynq.Client
	KafkaWriter *kafka.Writer

	WebhookAuth rest.Middleware

	SessionTTL time.Duration
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	catalog := menu.NewCatalog()
	resolver := menu.NewResolver(catalog)

	ttl := time.Duration(c.SessionTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	var sessions session.Store
	if c.SessionStore == "redis" {
		sessions = session.NewRedisStore(redis.MustNewRedis(c.RedisConf), ttl)
	} else {
		sessions = session.NewMemoryStore(ttl)
	}

	var asynqClient *asynq.Client
	if c.AsynqConf.Addr != "" {
		asynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: c.AsynqConf.Addr})
	}

	// Reusable Kafka writer to reduce per-send overhead and latency
	var kw *kafka.Writer
	if len(c.KafkaConf.Broker) > 0 && c.KafkaConf.OrderPlacedTopic != "" {
		kw = &kafka.Writer{
			Addr:                   kafka.TCP(c.KafkaConf.Broker...),
			Topic:                  c.KafkaConf.OrderPlacedTopic,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           5 * time.Millisecond,
		}
	}

	return &ServiceContext{
		Config:      c,
		Catalog:     catalog,
		Resolver:    resolver,
		Dispatcher:  dialogue.NewDispatcher(catalog, resolver),
		Sessions:    sessions,
		AsynqClient: asynqClient,
		KafkaWriter: kw,
		WebhookAuth: middleware.NewWebhookAuthMiddleware(c.WebhookSecret).Handle,
		SessionTTL:  ttl,
	}
}
