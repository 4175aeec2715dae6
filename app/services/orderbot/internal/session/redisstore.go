package session

import (
	"encoding/json"
	"hash/fnv"
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	redisKeyPrefix = "orderbot:session:"
	lockShards     = 64
)

// RedisStore keeps sessions in redis with a rolling TTL, for deployments
// with more than one replica behind the NLU platform. Read-modify-write
// cycles are serialized through a fixed set of sharded mutexes keyed by
// session id hash, which holds as long as one replica owns a given session
// (the webhook platform pins sessions to the agent that created them). A
// hash collision over-serializes two sessions, it never under-serializes
// one.
type RedisStore struct {
	rds   *redis.Redis
	ttl   time.Duration
	locks [lockShards]sync.Mutex
}

func NewRedisStore(rds *redis.Redis, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisStore{
		rds: rds,
		ttl: ttl,
	}
}

func (s *RedisStore) Get(id string) (Session, bool, error) {
	raw, err := s.rds.Get(redisKeyPrefix + id)
	if err != nil {
		return Session{}, false, err
	}
	if raw == "" {
		return Session{}, false, nil
	}
	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return Session{}, false, err
	}
	return sess, true, nil
}

func (s *RedisStore) Update(id string, fn func(*Session) error) error {
	lock := s.keyLock(id)
	lock.Lock()
	defer lock.Unlock()

	sess, found, err := s.Get(id)
	if err != nil {
		return err
	}
	if !found {
		sess = *New(id)
	}

	if err := fn(&sess); err != nil {
		return err
	}
	sess.UpdatedAt = time.Now()

	body, err := json.Marshal(&sess)
	if err != nil {
		return err
	}
	return s.rds.Setex(redisKeyPrefix+id, string(body), int(s.ttl.Seconds()))
}

func (s *RedisStore) Delete(id string) error {
	_, err := s.rds.Del(redisKeyPrefix + id)
	return err
}

func (s *RedisStore) keyLock(id string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(id))
	return &s.locks[h.Sum32()%lockShards]
}
