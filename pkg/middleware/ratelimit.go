package middleware

import (
	"context"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"hotel-reservation/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter decides whether one more request for key fits in the budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, remaining int, retryAfter time.Duration, err error)
}

var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local interval_ms = tonumber(ARGV[3])
local ttl_seconds = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])
if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

local elapsed = math.max(0, now_ms - last_refill)
local intervals = math.floor(elapsed / interval_ms)
if intervals > 0 then
	tokens = math.min(capacity, tokens + intervals)
	last_refill = last_refill + (intervals * interval_ms)
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)
return { allowed, tokens, retry_after_ms }
`)

// RedisLimiter is a token bucket shared by every gateway replica.
type RedisLimiter struct {
	rdb *redis.Client
	cfg utils.RateLimitConfig
}

func NewRedisLimiter(rdb *redis.Client, cfg utils.RateLimitConfig) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, cfg: cfg}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, int, time.Duration, error) {
	vals, err := tokenBucketScript.Run(ctx, l.rdb, []string{key},
		time.Now().UnixMilli(),
		l.cfg.Capacity,
		l.cfg.RefillInterval.Milliseconds(),
		int64(l.cfg.TTL/time.Second),
	).Int64Slice()
	if err != nil {
		return false, 0, 0, fmt.Errorf("run token bucket script: %w", err)
	}
	if len(vals) != 3 {
		return false, 0, 0, fmt.Errorf("unexpected token bucket result %v", vals)
	}
	return vals[0] == 1, int(vals[1]), time.Duration(vals[2]) * time.Millisecond, nil
}

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalLimiter keeps one in-process token bucket per key. Buckets idle for
// longer than the configured TTL are swept on access.
type LocalLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*localBucket
	every     time.Duration
	burst     int
	ttl       time.Duration
	lastSweep time.Time
}

func NewLocalLimiter(cfg utils.RateLimitConfig) *LocalLimiter {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &LocalLimiter{
		buckets:   make(map[string]*localBucket),
		every:     cfg.RefillInterval,
		burst:     cfg.Capacity,
		ttl:       ttl,
		lastSweep: time.Now(),
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, int, time.Duration, error) {
	now := time.Now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= l.ttl {
		l.sweep(now)
	}
	b, ok := l.buckets[key]
	if !ok {
		b = &localBucket{limiter: rate.NewLimiter(rate.Every(l.every), l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	l.mu.Unlock()

	if !b.limiter.Allow() {
		return false, 0, l.every, nil
	}
	return true, int(math.Max(0, b.limiter.Tokens())), 0, nil
}

// sweep drops idle buckets. Callers hold mu.
func (l *LocalLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.ttl {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// fallbackLimiter asks primary first and secondary when primary errors.
type fallbackLimiter struct {
	primary   Limiter
	secondary Limiter
	log       *zap.Logger
}

func (l *fallbackLimiter) Allow(ctx context.Context, key string) (bool, int, time.Duration, error) {
	allowed, remaining, retry, err := l.primary.Allow(ctx, key)
	if err == nil {
		return allowed, remaining, retry, nil
	}
	l.log.Warn("Distributed rate limiter unavailable, using local bucket", zap.Error(err))
	return l.secondary.Allow(ctx, key)
}

// NewLimiter returns a Redis backed limiter that degrades to a local one, or
// only the local one when rdb is nil.
func NewLimiter(rdb *redis.Client, cfg utils.RateLimitConfig, log *zap.Logger) Limiter {
	local := NewLocalLimiter(cfg)
	if rdb == nil {
		return local
	}
	return &fallbackLimiter{primary: NewRedisLimiter(rdb, cfg), secondary: local, log: log}
}

// RateLimit rejects callers that exhausted their budget with 429.
func RateLimit(limiter Limiter, cfg utils.RateLimitConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !cfg.Enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := cfg.Prefix + ":ip:" + clientIP(r)

			allowed, remaining, retryAfter, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Warn("Rate limiter failed, letting request through", zap.Error(err), zap.String("key", key))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if !allowed {
				secs := int(math.Ceil(retryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				logger.Info("Rate limit exceeded", zap.String("key", key), zap.Int("retry_after", secs))
				utils.ResponseTooManyRequests(w, "Rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
