package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRedisStoreKeyLockIsShardedAndStable(t *testing.T) {
	s := NewRedisStore(nil, time.Minute)

	// same session id always lands on the same mutex
	assert.Same(t, s.keyLock("abc-123"), s.keyLock("abc-123"))

	seen := make(map[*sync.Mutex]struct{})
	for i := 0; i < lockShards*10; i++ {
		seen[s.keyLock(fmt.Sprintf("session-%d", i))] = struct{}{}
	}
	assert.LessOrEqual(t, len(seen), lockShards,
		"lock memory stays bounded no matter how many sessions pass through")
}
