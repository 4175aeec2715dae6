package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/zero-contrib/zrpc/registry/consul"
)

type Config struct {
	rest.RestConf

	Consul consul.Conf

	LogConf logx.LogConf

	// Session storage: "memory" (default) or "redis".
	SessionStore      string
	SessionTTLMinutes int
	RedisConf         redis.RedisConf

	// Shared secret for webhook auth. Empty disables verification, which is
	// the local development default.
	WebhookSecret string

	// Lightweight config structs to avoid mapstructure errors on func fields
	AsynqConf       AsynqRedisConf
	AsynqServerConf AsynqServerConf

	KafkaConf KafkaConf
}

// Minimal redis client config for Asynq
type AsynqRedisConf struct {
	Addr string
}

// Minimal asynq server config
type AsynqServerConf struct {
	Enabled     bool
	Concurrency int
	Queues      map[string]int
}

type KafkaConf struct {
	Broker           []string
	Group            string
	OrderPlacedTopic string
}
