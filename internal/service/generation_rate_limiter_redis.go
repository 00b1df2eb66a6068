package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// GenerationRateLimiter limita cuantas generaciones asistidas puede pedir un
// cliente en una ventana de tiempo. Un limiter nil significa sin limite.
type GenerationRateLimiter interface {
	Allow(key string) bool
}

const redisGenerationAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisGenerationRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// NewRedisGenerationRateLimiter crea un limiter con contador INCR+EXPIRE.
func NewRedisGenerationRateLimiter(client *redis.Client, window time.Duration, max int) GenerationRateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisGenerationRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "rolegen:rl:",
	}
}

func (l *redisGenerationRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	redisKey := l.prefix + normalizedKey
	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}

	res, err := l.client.Eval(ctx, redisGenerationAllowScript, []string{redisKey}, seconds).Result()
	if err != nil {
		// Ante un redis degradado preferimos dejar pasar la solicitud.
		return true
	}
	count, ok := res.(int64)
	if !ok {
		return true
	}
	return count <= int64(l.max)
}
