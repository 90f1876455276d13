package rdx

import (
	"context"
	"log"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Conn is nil when Redis is not configured; callers degrade to uncached behaviour.
var Conn *redis.Client

// Init connects to Redis at addr, either host:port or a redis:// URL.
// An empty addr leaves Conn nil.
func Init(ctx context.Context, addr, password string) {
	if addr == "" {
		log.Println("REDIS_URL not set; caching and token revocation disabled")
		return
	}
	opts := &redis.Options{Addr: addr, Password: password, DB: 0}
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			log.Printf("Invalid REDIS_URL (%v); caching and token revocation disabled", err)
			return
		}
		if parsed.Password == "" {
			parsed.Password = password
		}
		opts = parsed
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis ping failed (%v); caching and token revocation disabled", err)
		_ = client.Close()
		return
	}
	Conn = client
}

func Close() {
	if Conn != nil {
		_ = Conn.Close()
	}
}
