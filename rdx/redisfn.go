// Package rdx wraps the optional Redis connection. It backs the revoked
// token set; when Redis is absent the set degrades to process memory.
package rdx

import (
	"sync"
	"time"

	"bigtreat/config"
	"bigtreat/globals"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Conn *redis.Client

var (
	mu      sync.RWMutex
	revoked = map[string]time.Time{}
)

const revokeTTL = 24 * time.Hour

func Init(cfg *config.Config) {
	if cfg.RedisAddr == "" {
		log.Debug().Msg("no REDIS_ADDR set, token revocation kept in memory")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := client.Ping(globals.Ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, token revocation kept in memory")
		return
	}

	Conn = client
	log.Info().Str("addr", cfg.RedisAddr).Msg("connected to Redis")
}

// RevokeToken blacklists a token until its natural expiry window passes.
func RevokeToken(token string) {
	if Conn != nil {
		if err := Conn.Set(globals.Ctx, "revoked:"+token, "1", revokeTTL).Err(); err == nil {
			return
		} else {
			log.Warn().Err(err).Msg("redis revoke failed, using memory set")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	revoked[token] = time.Now().Add(revokeTTL)
}

func TokenRevoked(token string) bool {
	if Conn != nil {
		n, err := Conn.Exists(globals.Ctx, "revoked:"+token).Result()
		if err == nil {
			return n > 0
		}
		log.Warn().Err(err).Msg("redis lookup failed, using memory set")
	}

	mu.RLock()
	until, ok := revoked[token]
	mu.RUnlock()
	if !ok {
		return false
	}
	if time.Now().After(until) {
		mu.Lock()
		delete(revoked, token)
		mu.Unlock()
		return false
	}
	return true
}
